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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestFontBootstrap(t *testing.T) {
	ram := memory.NewRAM()

	// first byte of the sprite for digit 0
	d, err := ram.Read(memory.CharAddress(0x0))
	test.ExpectSuccess(t, err)
	test.Equate(t, d, 0xf0)

	// the sprite for F begins at 15*5
	test.Equate(t, memory.CharAddress(0xf), 75)
	d, err = ram.Read(memory.CharAddress(0xf))
	test.ExpectSuccess(t, err)
	test.Equate(t, d, 0xf0)

	// writing over the font table and resetting restores it
	test.ExpectSuccess(t, ram.Write(0x0000, 0xff))
	ram.Reset()
	d, _ = ram.Read(0x0000)
	test.Equate(t, d, 0xf0)
}

func TestLoad(t *testing.T) {
	ram := memory.NewRAM()

	test.ExpectSuccess(t, ram.Load([]byte{0x60, 0xff}))
	d, _ := ram.Read(memory.OriginROM)
	test.Equate(t, d, 0x60)
	d, _ = ram.Read(memory.OriginROM + 1)
	test.Equate(t, d, 0xff)

	// largest possible ROM
	test.ExpectSuccess(t, ram.Load(make([]byte, memory.Size-memory.OriginROM)))

	// one byte too many
	err := ram.Load(make([]byte, memory.Size-memory.OriginROM+1))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.ROMTooLarge))
}

func TestBusError(t *testing.T) {
	ram := memory.NewRAM()

	_, err := ram.Read(memory.Size)
	test.ExpectSuccess(t, curated.Is(err, memory.BusError))

	err = ram.Write(memory.Size, 0x00)
	test.ExpectSuccess(t, curated.Is(err, memory.BusError))

	// opcode read requires two bytes. reading at the very last address
	// must fail
	_, err = ram.ReadOpcode(memory.Size - 1)
	test.ExpectSuccess(t, curated.Is(err, memory.BusError))

	_, err = ram.ReadOpcode(memory.Size - 2)
	test.ExpectSuccess(t, err)

	// the address+1 arithmetic must not wrap at the top of the uint16
	// range and sneak past the bounds check
	_, err = ram.ReadOpcode(0xffff)
	test.ExpectSuccess(t, curated.Is(err, memory.BusError))
}

func TestReadOpcode(t *testing.T) {
	ram := memory.NewRAM()
	test.ExpectSuccess(t, ram.Load([]byte{0x12, 0x34}))

	op, err := ram.ReadOpcode(memory.OriginROM)
	test.ExpectSuccess(t, err)
	test.Equate(t, op, 0x1234)
}
