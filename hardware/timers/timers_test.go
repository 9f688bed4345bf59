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

package timers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

// mock mixer recording tone transitions.
type mixer struct {
	on          bool
	transitions int
}

func (m *mixer) SetTone(on bool) {
	m.on = on
	m.transitions++
}

func TestCountdownFloor(t *testing.T) {
	tmr := timers.NewTimers()

	tmr.SetDelay(2)
	tmr.Tick()
	test.Equate(t, tmr.Delay(), 1)
	tmr.Tick()
	test.Equate(t, tmr.Delay(), 0)

	// a timer at zero stays at zero
	tmr.Tick()
	tmr.Tick()
	test.Equate(t, tmr.Delay(), 0)
}

func TestTone(t *testing.T) {
	tmr := timers.NewTimers()
	mix := &mixer{}
	tmr.AttachMixer(mix)

	tmr.SetSound(2)
	test.ExpectSuccess(t, mix.on)
	test.Equate(t, mix.transitions, 1)

	// setting the sound timer again while the tone is sounding is not a
	// transition
	tmr.SetSound(5)
	test.Equate(t, mix.transitions, 1)

	for i := 0; i < 4; i++ {
		tmr.Tick()
		test.ExpectSuccess(t, mix.on)
	}

	// the 1 to 0 transition ends the tone
	tmr.Tick()
	test.ExpectFailure(t, mix.on)
	test.Equate(t, mix.transitions, 2)

	// further ticks do not re-trigger the mixer
	tmr.Tick()
	test.Equate(t, mix.transitions, 2)
}

func TestResetSilencesTone(t *testing.T) {
	tmr := timers.NewTimers()
	mix := &mixer{}
	tmr.AttachMixer(mix)

	tmr.SetSound(10)
	test.ExpectSuccess(t, mix.on)

	tmr.Reset()
	test.ExpectFailure(t, mix.on)
}
