// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestOperandFields(t *testing.T) {
	in, err := instructions.Decode(0xd12f)
	test.ExpectSuccess(t, err)
	test.Equate(t, int(in.Operator), int(instructions.Draw))
	test.Equate(t, in.X, 0x1)
	test.Equate(t, in.Y, 0x2)
	test.Equate(t, in.N, 0xf)
	test.Equate(t, in.NN, 0x2f)
	test.Equate(t, in.NNN, 0x12f)
	test.Equate(t, in.Opcode, 0xd12f)
}

func TestExactTupleMatching(t *testing.T) {
	// 5XY0 is legal but the other 5XYN patterns are not. exact tuple
	// matching must not alias them
	_, err := instructions.Decode(0x5120)
	test.ExpectSuccess(t, err)

	for n := uint16(0x1); n <= 0xf; n++ {
		_, err = instructions.Decode(0x5120 | n)
		test.ExpectSuccess(t, curated.Is(err, instructions.IllegalOpcode))
	}

	// likewise 9XY0
	_, err = instructions.Decode(0x9120)
	test.ExpectSuccess(t, err)
	_, err = instructions.Decode(0x9121)
	test.ExpectSuccess(t, curated.Is(err, instructions.IllegalOpcode))

	// the 8XYN group has gaps at 8 to D and F
	for _, n := range []uint16{0x8, 0x9, 0xa, 0xb, 0xc, 0xd, 0xf} {
		_, err = instructions.Decode(0x8120 | n)
		test.ExpectSuccess(t, curated.Is(err, instructions.IllegalOpcode))
	}
}

func TestMachineCodeRoutinesAreIllegal(t *testing.T) {
	// 0NNN called a machine code routine on the original COSMAC VIP.
	// it is not supported, excepting the three special cases
	_, err := instructions.Decode(0x0123)
	test.ExpectSuccess(t, curated.Is(err, instructions.IllegalOpcode))

	for _, op := range []uint16{0x0000, 0x00e0, 0x00ee} {
		_, err = instructions.Decode(op)
		test.ExpectSuccess(t, err)
	}
}

func TestMnemonics(t *testing.T) {
	for _, c := range []struct {
		opcode   uint16
		mnemonic string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x1abc, "JP $abc"},
		{0x2abc, "CALL $abc"},
		{0x8124, "ADD V1, V2"},
		{0xa09e, "LD I, $09e"},
		{0xd01f, "DRW V0, V1, $f"},
		{0xf31e, "ADD I, V3"},
		{0xf655, "LD [I], V6"},
	} {
		in, err := instructions.Decode(c.opcode)
		test.ExpectSuccess(t, err)
		test.Equate(t, in.String(), c.mnemonic)
	}
}
