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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleFreq = 44100
	toneFreq   = 440

	// the amount of audio queued up while the tone is playing. short enough
	// that the tone ends promptly when the sound timer expires
	queueLength = sampleFreq / 30
)

// beep is a square wave tone generator. it implements the timers.Mixer
// interface.
type beep struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// one full period of the square wave at toneFreq
	period []uint8

	on bool
}

func newBeep() (*beep, error) {
	snd := &beep{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	snd.spec = actualSpec

	snd.period = make([]uint8, sampleFreq/toneFreq)
	for i := range snd.period {
		if i < len(snd.period)/2 {
			snd.period[i] = snd.spec.Silence + 24
		} else {
			snd.period[i] = snd.spec.Silence - 24
		}
	}

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// SetTone implements the timers.Mixer interface. It may be called from the
// emulation goroutine; the SDL queueing functions are thread-safe.
func (snd *beep) SetTone(on bool) {
	snd.on = on
	if !on {
		sdl.ClearQueuedAudio(snd.id)
	}
}

// service keeps the audio queue topped up while the tone is playing. called
// from SdlPlay.Service() every frame.
func (snd *beep) service() {
	if !snd.on {
		return
	}
	for sdl.GetQueuedAudioSize(snd.id) < queueLength {
		if err := sdl.QueueAudio(snd.id, snd.period); err != nil {
			return
		}
	}
}

func (snd *beep) destroy() {
	sdl.CloseAudioDevice(snd.id)
}
