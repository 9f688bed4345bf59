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

package timers

// Mixer implementations are told when the sound timer tone starts and
// stops. The timers perform no audio I/O themselves.
type Mixer interface {
	SetTone(on bool)
}

// Timers are the two 8 bit countdown timers in the machine. They are
// decremented by the Tick() function only - conventionally called at 60Hz
// by the host - and never by instruction execution.
type Timers struct {
	delay uint8
	sound uint8

	// mixer may be nil, in which case the tone is inaudible
	mixer Mixer
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

// AttachMixer to be notified of tone state changes. A nil argument detaches
// the current mixer.
func (tmr *Timers) AttachMixer(mixer Mixer) {
	tmr.mixer = mixer
}

// Reset both timers to zero, silencing the tone if it is sounding.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.SetSound(0)
}

// Delay returns the current value of the delay timer.
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// SetDelay sets the delay timer.
func (tmr *Timers) SetDelay(value uint8) {
	tmr.delay = value
}

// SetSound sets the sound timer. The tone sounds for as long as the timer
// is non-zero.
func (tmr *Timers) SetSound(value uint8) {
	prev := tmr.sound
	tmr.sound = value

	if tmr.mixer != nil {
		if prev == 0 && value > 0 {
			tmr.mixer.SetTone(true)
		} else if prev > 0 && value == 0 {
			tmr.mixer.SetTone(false)
		}
	}
}

// Tick decrements both timers. A timer at zero stays at zero; it never
// underflows or auto-resets. When the sound timer reaches zero the attached
// mixer is told the tone has ended.
func (tmr *Timers) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}

	if tmr.sound > 0 {
		tmr.sound--
		if tmr.sound == 0 && tmr.mixer != nil {
			tmr.mixer.SetTone(false)
		}
	}
}
