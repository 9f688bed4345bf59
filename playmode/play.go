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

// Package playmode sets the emulation running for an interactive session,
// without any debugging features.
package playmode

import (
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// the timers and the display frame rate. Instructions execute at a multiple
// of this, set by the instructionsPerFrame argument to Play()
const frameRate = 60

// teeMixer forwards tone transitions to more than one mixer. used when the
// session is being recorded to a WAV file at the same time as it is heard
type teeMixer []timers.Mixer

func (mix teeMixer) SetTone(on bool) {
	for _, m := range mix {
		m.SetTone(on)
	}
}

// Play sets the emulation running with the ROM specified by the loader.
// The emulation ends when the user quits the frontend, on SIGINT, or on a
// machine fault.
//
// instructionsPerFrame instructions are executed for every 60Hz timer tick.
// With useTerminal the session runs in the terminal instead of a desktop
// window. A non-empty wavFile records the beeper to disk.
func Play(loader romloader.Loader, scale int, instructionsPerFrame int, useTerminal bool, wavFile string) error {
	if instructionsPerFrame < 1 {
		return curated.Errorf("playmode: %v", "instructions per frame must be at least 1")
	}

	ch8 := hardware.NewChip8()

	var scr gui.Frontend
	var err error

	if useTerminal {
		scr, err = termplay.NewTermPlay(ch8)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	} else {
		sdl, err := sdlplay.NewSdlPlay(ch8, scale)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		ch8.Timers.AttachMixer(sdl.Mixer())
		scr = sdl
	}
	defer scr.Destroy()

	var wav *wavwriter.WavWriter
	if wavFile != "" {
		wav = wavwriter.New(wavFile)
		if useTerminal {
			ch8.Timers.AttachMixer(wav)
		} else {
			sdl := scr.(*sdlplay.SdlPlay)
			ch8.Timers.AttachMixer(teeMixer{sdl.Mixer(), wav})
		}
	}

	if err := ch8.AttachROM(loader); err != nil {
		return err
	}

	// we want to catch the ctrl-c signal and end the emulation gracefully
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	tck := time.NewTicker(time.Second / frameRate)
	defer tck.Stop()

	// frame loop. note that frontend servicing must happen in this
	// goroutine - SDL requires event handling on the main thread
	for {
		select {
		case <-intChan:
			if wav != nil {
				return wav.EndMixing()
			}
			return nil

		case <-tck.C:
			cont, err := scr.Service()
			if err != nil {
				return err
			}
			if !cont {
				if wav != nil {
					return wav.EndMixing()
				}
				return nil
			}

			for i := 0; i < instructionsPerFrame; i++ {
				if err := ch8.Step(); err != nil {
					return err
				}
			}

			ch8.TickTimers()

			if err := scr.Render(ch8.Display()); err != nil {
				return err
			}
		}
	}
}
