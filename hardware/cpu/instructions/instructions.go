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

// Operator identifies the effect of an instruction. There is exactly one
// operator per legal opcode pattern.
type Operator int

// List of defined operators.
const (
	Nop Operator = iota

	// 00E0 and 00EE
	Clear
	Return

	// 1NNN, 2NNN and BNNN
	Jump
	Call
	JumpV0

	// 3XNN, 4XNN, 5XY0 and 9XY0
	SkipEqual
	SkipNotEqual
	SkipEqualRegister
	SkipNotEqualRegister

	// 6XNN and 7XNN
	Load
	Add

	// the 8XYN group
	LoadRegister
	Or
	And
	Xor
	AddRegister
	SubRegister
	ShiftRight
	SubRegisterReverse
	ShiftLeft

	// ANNN and FX1E
	LoadIndex
	AddIndex

	// CXNN
	Random

	// DXYN
	Draw

	// EX9E and EXA1
	SkipKeyPressed
	SkipKeyNotPressed

	// the FXNN group (except FX1E, above)
	LoadFromDelay
	WaitKey
	LoadDelay
	LoadSound
	LoadFontAddress
	BCD
	StoreRegisters
	ReadRegisters
)

// Instruction is the result of decoding a 16 bit opcode. The operand fields
// are all decoded unconditionally; which of them are meaningful depends on
// the operator.
type Instruction struct {
	Operator Operator

	// the undecoded opcode
	Opcode uint16

	// register indices from the second and third nibbles
	X uint8
	Y uint8

	// the 12 bit address operand
	NNN uint16

	// the 8 bit immediate operand
	NN uint8

	// the low nibble (sprite height for the Draw operator)
	N uint8
}
