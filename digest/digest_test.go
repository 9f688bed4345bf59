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

package digest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// a program that draws the font sprites for 0 and 1 and then spins
var testROM = []byte{
	0x60, 0x00, // LD V0, $00
	0xf0, 0x29, // LD F, V0
	0xd0, 0x05, // DRW V0, V0, $5
	0x61, 0x01, // LD V1, $01
	0xf1, 0x29, // LD F, V1
	0x62, 0x08, // LD V2, $08
	0xd2, 0x05, // DRW V2, V0, $5
	0x12, 0x0e, // JP $20e
}

// run the test ROM for a number of frames, fingerprinting the display after
// each one
func romDigest(t *testing.T, frames int) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(fn, testROM, 0o644); err != nil {
		t.Fatal(err)
	}

	ch8 := hardware.NewChip8()
	ch8.Rand.ZeroSeed = true
	if err := ch8.AttachROM(romloader.NewLoader(fn)); err != nil {
		t.Fatal(err)
	}

	dig := digest.NewVideo()
	for i := 0; i < frames; i++ {
		for j := 0; j < 10; j++ {
			if err := ch8.Step(); err != nil {
				t.Fatal(err)
			}
		}
		ch8.TickTimers()
		dig.Frame(ch8.Display())
	}

	return dig.Hash()
}

func TestDeterministicRuns(t *testing.T) {
	a := romDigest(t, 30)
	b := romDigest(t, 30)
	test.Equate(t, a, b)
}

func TestChainedFingerprint(t *testing.T) {
	// more frames of the same image still changes the fingerprint
	a := romDigest(t, 30)
	b := romDigest(t, 31)
	if a == b {
		t.Errorf("fingerprint did not chain across frames")
	}
}

func TestResetDigest(t *testing.T) {
	dig := digest.NewVideo()
	display := make([]bool, 64*32)

	dig.Frame(display)
	a := dig.Hash()

	dig.ResetDigest()
	dig.Frame(display)
	test.Equate(t, dig.Hash(), a)
}
