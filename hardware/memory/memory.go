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

package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Size is the number of addressable bytes in the machine.
const Size = 4096

// OriginROM is the address at which ROM data is loaded. Addresses below the
// origin are reserved for the interpreter (in this machine, the font table).
const OriginROM = 0x0200

// Sentinal errors returned by the RAM type.
const (
	BusError    = "memory: access beyond addressable memory (%#04x)"
	ROMTooLarge = "memory: ROM size of %d bytes will not fit in %d bytes of memory"
)

// RAM is the fixed 4096 byte addressable store for the machine. The font
// table occupies the lowest addresses; ROM data is loaded at OriginROM.
type RAM struct {
	data [Size]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	ram := &RAM{}
	ram.Reset()
	return ram
}

// Reset the contents of RAM, rewriting the font table into the reserved
// area at the bottom of memory.
func (ram *RAM) Reset() {
	for i := range ram.data {
		ram.data[i] = 0
	}
	copy(ram.data[:], fontTable[:])
}

// Load ROM data into RAM starting at OriginROM. Data loaded by a previous
// call is overwritten.
func (ram *RAM) Load(data []byte) error {
	if len(data) > Size-OriginROM {
		return curated.Errorf(ROMTooLarge, len(data), Size-OriginROM)
	}
	copy(ram.data[OriginROM:], data)
	return nil
}

// Read a single byte of memory.
func (ram *RAM) Read(address uint16) (uint8, error) {
	if address >= Size {
		return 0, curated.Errorf(BusError, address)
	}
	return ram.data[address], nil
}

// Write a single byte of memory.
func (ram *RAM) Write(address uint16, data uint8) error {
	if address >= Size {
		return curated.Errorf(BusError, address)
	}
	ram.data[address] = data
	return nil
}

// ReadOpcode reads the two bytes at address and address+1, combining them
// big-endian into a 16 bit opcode.
func (ram *RAM) ReadOpcode(address uint16) (uint16, error) {
	// written to avoid uint16 overflow at the top of the address space
	if address >= Size-1 {
		return 0, curated.Errorf(BusError, address)
	}
	return uint16(ram.data[address])<<8 | uint16(ram.data[address+1]), nil
}
