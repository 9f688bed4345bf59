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

import "fmt"

// String returns the instruction in the mnemonic style of the Cowgod
// reference document.
func (in Instruction) String() string {
	switch in.Operator {
	case Nop:
		return "NOP"
	case Clear:
		return "CLS"
	case Return:
		return "RET"
	case Jump:
		return fmt.Sprintf("JP $%03x", in.NNN)
	case Call:
		return fmt.Sprintf("CALL $%03x", in.NNN)
	case JumpV0:
		return fmt.Sprintf("JP V0, $%03x", in.NNN)
	case SkipEqual:
		return fmt.Sprintf("SE V%X, $%02x", in.X, in.NN)
	case SkipNotEqual:
		return fmt.Sprintf("SNE V%X, $%02x", in.X, in.NN)
	case SkipEqualRegister:
		return fmt.Sprintf("SE V%X, V%X", in.X, in.Y)
	case SkipNotEqualRegister:
		return fmt.Sprintf("SNE V%X, V%X", in.X, in.Y)
	case Load:
		return fmt.Sprintf("LD V%X, $%02x", in.X, in.NN)
	case Add:
		return fmt.Sprintf("ADD V%X, $%02x", in.X, in.NN)
	case LoadRegister:
		return fmt.Sprintf("LD V%X, V%X", in.X, in.Y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", in.X, in.Y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", in.X, in.Y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", in.X, in.Y)
	case AddRegister:
		return fmt.Sprintf("ADD V%X, V%X", in.X, in.Y)
	case SubRegister:
		return fmt.Sprintf("SUB V%X, V%X", in.X, in.Y)
	case ShiftRight:
		return fmt.Sprintf("SHR V%X", in.X)
	case SubRegisterReverse:
		return fmt.Sprintf("SUBN V%X, V%X", in.X, in.Y)
	case ShiftLeft:
		return fmt.Sprintf("SHL V%X", in.X)
	case LoadIndex:
		return fmt.Sprintf("LD I, $%03x", in.NNN)
	case AddIndex:
		return fmt.Sprintf("ADD I, V%X", in.X)
	case Random:
		return fmt.Sprintf("RND V%X, $%02x", in.X, in.NN)
	case Draw:
		return fmt.Sprintf("DRW V%X, V%X, $%x", in.X, in.Y, in.N)
	case SkipKeyPressed:
		return fmt.Sprintf("SKP V%X", in.X)
	case SkipKeyNotPressed:
		return fmt.Sprintf("SKNP V%X", in.X)
	case LoadFromDelay:
		return fmt.Sprintf("LD V%X, DT", in.X)
	case WaitKey:
		return fmt.Sprintf("LD V%X, K", in.X)
	case LoadDelay:
		return fmt.Sprintf("LD DT, V%X", in.X)
	case LoadSound:
		return fmt.Sprintf("LD ST, V%X", in.X)
	case LoadFontAddress:
		return fmt.Sprintf("LD F, V%X", in.X)
	case BCD:
		return fmt.Sprintf("LD B, V%X", in.X)
	case StoreRegisters:
		return fmt.Sprintf("LD [I], V%X", in.X)
	case ReadRegisters:
		return fmt.Sprintf("LD V%X, [I]", in.X)
	}

	return fmt.Sprintf("??? ($%04x)", in.Opcode)
}
