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

package disassembly_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func TestDisassembly(t *testing.T) {
	rom := []byte{
		0x00, 0xe0, // CLS
		0x61, 0x23, // LD V1, $23
		0xa2, 0x08, // LD I, $208
		0x12, 0x00, // JP $200
		0xf0, 0x90, // sprite data, not code
	}

	fn := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(fn, rom, 0o644); err != nil {
		t.Fatal(err)
	}

	dsm, err := disassembly.FromLoader(romloader.NewLoader(fn))
	test.ExpectSuccess(t, err)
	test.Equate(t, len(dsm.Entries), 5)

	test.Equate(t, dsm.Entries[0].String(), "$200  00e0  CLS")
	test.Equate(t, dsm.Entries[1].String(), "$202  6123  LD V1, $23")
	test.Equate(t, dsm.Entries[2].String(), "$204  a208  LD I, $208")
	test.Equate(t, dsm.Entries[3].String(), "$206  1200  JP $200")

	// 0xf090 does not decode. it appears in the listing as data
	test.ExpectSuccess(t, dsm.Entries[4].IsData)
	test.Equate(t, dsm.Entries[4].String(), "$208  f090  dw $f090")

	b := &strings.Builder{}
	test.ExpectSuccess(t, dsm.Write(b))
	test.Equate(t, len(strings.Split(strings.TrimSpace(b.String()), "\n")), 5)
}

func TestDisassemblyOddLength(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "odd.ch8")
	if err := os.WriteFile(fn, []byte{0x00, 0xe0, 0x80}, 0o644); err != nil {
		t.Fatal(err)
	}

	dsm, err := disassembly.FromLoader(romloader.NewLoader(fn))
	test.ExpectSuccess(t, err)
	test.Equate(t, len(dsm.Entries), 2)

	// the trailing byte is padded with zero, as it would be in memory
	test.Equate(t, dsm.Entries[1].Opcode, 0x8000)
}
