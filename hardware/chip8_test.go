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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// a short program that sets V0, draws the font sprite for 0 at (0, 0) and
// then jumps back to the start.
var testROM = []byte{
	0x60, 0x00, // LD V0, $00
	0xf0, 0x29, // LD F, V0
	0xd0, 0x05, // DRW V0, V0, $5
	0x12, 0x00, // JP $200
}

func attachTestROM(t *testing.T, ch8 *hardware.Chip8) {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(fn, testROM, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ch8.AttachROM(romloader.NewLoader(fn)); err != nil {
		t.Fatal(err)
	}
}

func TestAttachAndRun(t *testing.T) {
	ch8 := hardware.NewChip8()
	attachTestROM(t, ch8)
	test.Equate(t, ch8.CPU.PC, memory.OriginROM)

	// run one pass of the program
	ct := 0
	err := ch8.Run(func() (bool, error) {
		ct++
		return ct < 4, nil
	})
	test.ExpectSuccess(t, err)

	// the jump has returned the program counter to the origin and the
	// draw has set the top-left pixel
	test.Equate(t, ch8.CPU.PC, memory.OriginROM)
	test.ExpectSuccess(t, ch8.Display()[0])
}

func TestResetReloadsROM(t *testing.T) {
	ch8 := hardware.NewChip8()
	attachTestROM(t, ch8)

	// mangle machine state
	for i := 0; i < 4; i++ {
		test.ExpectSuccess(t, ch8.Step())
	}
	ch8.Timers.SetDelay(100)
	test.ExpectSuccess(t, ch8.SetKey(0x3, true))

	test.ExpectSuccess(t, ch8.Reset())
	test.Equate(t, ch8.CPU.PC, memory.OriginROM)
	test.Equate(t, ch8.Timers.Delay(), 0)
	test.ExpectFailure(t, ch8.Display()[0])

	// the ROM is still attached after the reset
	d, err := ch8.Mem.Read(memory.OriginROM)
	test.ExpectSuccess(t, err)
	test.Equate(t, d, 0x60)

	// keypad was released by the reset
	p, err := ch8.Keypad.IsPressed(0x3)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, p)
}

func TestDisplayDimensions(t *testing.T) {
	ch8 := hardware.NewChip8()
	test.Equate(t, len(ch8.Display()), 64*32)
}
