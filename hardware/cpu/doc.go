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

// Package cpu implements the instruction cycle of the CHIP-8 machine: the
// sixteen V registers, the index register, the program counter and the
// return address stack, and the Step() function that advances the machine
// by exactly one instruction.
//
// The CPU performs no clocking of its own. The host chooses the instruction
// rate by choosing how often to call Step(); the key-wait instruction
// cooperates with this by rewinding the program counter rather than
// blocking.
//
// Arithmetic follows the original COSMAC VIP interpreter: additions and
// subtractions wrap at 8 bits, with the VF register recording carry, borrow
// and collision outcomes where the instruction defines them. The shift
// instructions operate on VX in place, ignoring the Y field; no quirk
// variants are implemented.
package cpu
