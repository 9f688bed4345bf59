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

// Package memory implements the 4096 bytes of addressable memory in the
// CHIP-8 machine. The font table for the sixteen hexadecimal digits occupies
// the bottom of memory; ROM data is loaded at OriginROM (0x200), which is
// also where the program counter starts.
//
// All access is bounds checked. Out of range access returns a curated error
// with the BusError pattern rather than panicking - the reference
// interpreter crashes in this situation but a ROM fault should be reported
// to the host, not bring the process down.
package memory
