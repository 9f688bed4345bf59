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

package instructions

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal error returned by Decode().
const IllegalOpcode = "instructions: illegal opcode (%#04x)"

// Decode a 16 bit opcode into an Instruction. Opcode patterns that do not
// match any legal instruction return a curated error with the IllegalOpcode
// pattern.
//
// Matching is against the exact nibble tuple, not a prefix. For example,
// 5XY1 is not a legal opcode even though 5XY0 is. Decoding is the only place
// where legality is decided; execution can assume a legal instruction.
func Decode(opcode uint16) (Instruction, error) {
	in := Instruction{
		Opcode: opcode,
		X:      uint8(opcode >> 8 & 0x0f),
		Y:      uint8(opcode >> 4 & 0x0f),
		NNN:    opcode & 0x0fff,
		NN:     uint8(opcode & 0x00ff),
		N:      uint8(opcode & 0x000f),
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x0000:
			in.Operator = Nop
		case 0x00e0:
			in.Operator = Clear
		case 0x00ee:
			in.Operator = Return
		default:
			// 0NNN (machine code routine on the original COSMAC VIP) is
			// not supported
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}

	case 0x1:
		in.Operator = Jump
	case 0x2:
		in.Operator = Call
	case 0x3:
		in.Operator = SkipEqual
	case 0x4:
		in.Operator = SkipNotEqual

	case 0x5:
		if in.N != 0x0 {
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}
		in.Operator = SkipEqualRegister

	case 0x6:
		in.Operator = Load
	case 0x7:
		in.Operator = Add

	case 0x8:
		switch in.N {
		case 0x0:
			in.Operator = LoadRegister
		case 0x1:
			in.Operator = Or
		case 0x2:
			in.Operator = And
		case 0x3:
			in.Operator = Xor
		case 0x4:
			in.Operator = AddRegister
		case 0x5:
			in.Operator = SubRegister
		case 0x6:
			in.Operator = ShiftRight
		case 0x7:
			in.Operator = SubRegisterReverse
		case 0xe:
			in.Operator = ShiftLeft
		default:
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}

	case 0x9:
		if in.N != 0x0 {
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}
		in.Operator = SkipNotEqualRegister

	case 0xa:
		in.Operator = LoadIndex
	case 0xb:
		in.Operator = JumpV0
	case 0xc:
		in.Operator = Random
	case 0xd:
		in.Operator = Draw

	case 0xe:
		switch in.NN {
		case 0x9e:
			in.Operator = SkipKeyPressed
		case 0xa1:
			in.Operator = SkipKeyNotPressed
		default:
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}

	case 0xf:
		switch in.NN {
		case 0x07:
			in.Operator = LoadFromDelay
		case 0x0a:
			in.Operator = WaitKey
		case 0x15:
			in.Operator = LoadDelay
		case 0x18:
			in.Operator = LoadSound
		case 0x1e:
			in.Operator = AddIndex
		case 0x29:
			in.Operator = LoadFontAddress
		case 0x33:
			in.Operator = BCD
		case 0x55:
			in.Operator = StoreRegisters
		case 0x65:
			in.Operator = ReadRegisters
		default:
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}
	}

	return in, nil
}
