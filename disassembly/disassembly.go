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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
)

// Entry is one 16 bit word of the ROM. If the word did not decode to a
// legal instruction then IsData is true - sprite data and legal code are
// indistinguishable in a CHIP-8 ROM so this is only a best guess.
type Entry struct {
	Address     uint16
	Opcode      uint16
	Instruction instructions.Instruction
	IsData      bool
}

func (e Entry) String() string {
	if e.IsData {
		return fmt.Sprintf("$%03x  %04x  dw $%04x", e.Address, e.Opcode, e.Opcode)
	}
	return fmt.Sprintf("$%03x  %04x  %s", e.Address, e.Opcode, e.Instruction.String())
}

// Disassembly of an entire ROM.
type Disassembly struct {
	Entries []Entry
}

// FromLoader disassembles the ROM specified by the loader. The listing is
// static: every word in the ROM is decoded in sequence, with no attempt to
// follow the flow of control.
func FromLoader(loader romloader.Loader) (*Disassembly, error) {
	if err := loader.Load(); err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	dsm := &Disassembly{
		Entries: make([]Entry, 0, (len(loader.Data)+1)/2),
	}

	for i := 0; i < len(loader.Data); i += 2 {
		e := Entry{
			Address: memory.OriginROM + uint16(i),
			Opcode:  uint16(loader.Data[i]) << 8,
		}

		// a trailing odd byte is padded, as it would be in memory
		if i+1 < len(loader.Data) {
			e.Opcode |= uint16(loader.Data[i+1])
		}

		in, err := instructions.Decode(e.Opcode)
		if err != nil {
			if !curated.Is(err, instructions.IllegalOpcode) {
				return nil, curated.Errorf("disassembly: %v", err)
			}
			e.IsData = true
		} else {
			e.Instruction = in
		}

		dsm.Entries = append(dsm.Entries, e)
	}

	return dsm, nil
}

// Write the disassembly to io.Writer, one entry per line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := fmt.Fprintln(output, e.String()); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}
