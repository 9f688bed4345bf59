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

// Package instructions defines the CHIP-8 instruction set and the decoder
// that turns a 16 bit opcode into a tagged Instruction value.
//
// Decoding is separate from execution so that the legality of an opcode is
// decided in exactly one place and so that other packages (the disassembler
// in particular) can decode without executing.
package instructions
