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

// Package wavwriter records the machine's beeper output to disk as a WAV
// file. Note that the recording is held in memory in its entirety, as a
// list of tone on/off transitions, and synthesised and written to disk on
// program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

const (
	sampleFreq = 44100
	toneFreq   = 440
)

// WavWriter implements the timers.Mixer interface.
type WavWriter struct {
	filename string

	start time.Time

	// times of every tone transition since start. even indices are
	// tone-on, odd indices are tone-off
	transitions []time.Duration

	on bool
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) *WavWriter {
	return &WavWriter{
		filename:    filename,
		start:       time.Now(),
		transitions: make([]time.Duration, 0),
	}
}

// SetTone implements the timers.Mixer interface.
func (aw *WavWriter) SetTone(on bool) {
	if on == aw.on {
		return
	}
	aw.on = on
	aw.transitions = append(aw.transitions, time.Since(aw.start))
}

// EndMixing synthesises the recorded tone spans as a square wave and writes
// the result to the WAV file.
func (aw *WavWriter) EndMixing() (rerr error) {
	// close any open span
	if aw.on {
		aw.SetTone(false)
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleFreq, 8, 1, 1)

	var end time.Duration
	if len(aw.transitions) > 0 {
		end = aw.transitions[len(aw.transitions)-1]
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           make([]int, int(end.Seconds()*sampleFreq)),
		SourceBitDepth: 8,
	}

	// silence
	for i := range buf.Data {
		buf.Data[i] = 128
	}

	// square wave for every on-span
	halfPeriod := sampleFreq / toneFreq / 2
	for i := 0; i+1 < len(aw.transitions); i += 2 {
		from := int(aw.transitions[i].Seconds() * sampleFreq)
		to := int(aw.transitions[i+1].Seconds() * sampleFreq)
		for s := from; s < to && s < len(buf.Data); s++ {
			if (s/halfPeriod)%2 == 0 {
				buf.Data[s] = 152
			} else {
				buf.Data[s] = 104
			}
		}
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
