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

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/random"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/romloader"
)

// Chip8 is the main container for the emulated components of the machine.
// Each instance owns its components exclusively; nothing is shared between
// instances.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.RAM
	Video  *video.Video
	Keypad *keypad.Keypad
	Timers *timers.Timers
	Rand   *random.Random

	// the loader for the currently attached ROM
	loader romloader.Loader
}

// NewChip8 creates a new machine with everything in its reset state: font
// table in place, program counter at the ROM origin, all else zeroed.
func NewChip8() *Chip8 {
	ch8 := &Chip8{
		Mem:    memory.NewRAM(),
		Video:  video.NewVideo(),
		Keypad: keypad.NewKeypad(),
		Timers: timers.NewTimers(),
		Rand:   random.NewRandom(),
	}
	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Video, ch8.Keypad, ch8.Timers, ch8.Rand)
	return ch8
}

// Reset the machine to its initial state and reload the attached ROM, if
// there is one. It is the equivalent of switching the machine off and on.
func (ch8 *Chip8) Reset() error {
	ch8.Mem.Reset()
	ch8.Video.Reset()
	ch8.Keypad.Reset()
	ch8.Timers.Reset()
	ch8.CPU.Reset()

	if ch8.loader.HasLoaded() {
		if err := ch8.Mem.Load(ch8.loader.Data); err != nil {
			return curated.Errorf("chip8: %v", err)
		}
	}

	return nil
}

// AttachROM loads the ROM specified by the loader and installs it in the
// machine, resetting everything else.
func (ch8 *Chip8) AttachROM(loader romloader.Loader) error {
	if err := loader.Load(); err != nil {
		return curated.Errorf("chip8: %v", err)
	}
	ch8.loader = loader
	return ch8.Reset()
}

// Step the machine by exactly one instruction. An error is a fault as
// described in the cpu package; the machine should be Reset() before any
// further stepping.
func (ch8 *Chip8) Step() error {
	return ch8.CPU.Step()
}

// TickTimers decrements the two countdown timers. It should be called at a
// fixed rate - conventionally 60Hz - entirely independent of the rate of
// Step() calls.
func (ch8 *Chip8) TickTimers() {
	ch8.Timers.Tick()
}

// SetKey updates the state of a key in the input latch. Key values outside
// of [0, 16) are an error.
func (ch8 *Chip8) SetKey(key int, pressed bool) error {
	return ch8.Keypad.Set(key, pressed)
}

// Display returns a copy of the current framebuffer, addressed as
// x + video.Width*y.
func (ch8 *Chip8) Display() []bool {
	return ch8.Video.Snapshot()
}
