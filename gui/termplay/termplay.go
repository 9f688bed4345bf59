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

// Package termplay is a terminal implementation of the gui.Frontend
// interface. The framebuffer is drawn with ANSI escape sequences and
// keyboard input is read from stdin with the terminal in non-canonical
// mode.
//
// Terminals report key presses but not key releases. A key is therefore
// held in the pressed state for a fixed number of frames after the last
// press event and released when that count decays to zero.
//
// The keyboard mapping is the same COSMAC VIP layout used by the sdlplay
// package. The escape key ends the session.
package termplay

import (
	"os"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/video"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Sentinal errors returned by the termplay package.
const (
	Terminal = "termplay: %v"
)

// the number of Service() calls a key remains pressed after the last stdin
// event for it. at 60 calls a second this outlasts the key-repeat delay of
// most terminals, so a held key stays held
const keyDecay = 20

var keymap = map[byte]int{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

// TermPlay is a terminal implementation of the gui.Frontend interface.
type TermPlay struct {
	handler gui.KeyHandler

	// terminal attributes on entry, restored by Destroy()
	canAttr unix.Termios

	// key events are read from stdin by a dedicated goroutine
	input chan byte

	// frames remaining until each key is released. see keyDecay
	pressed [16]int

	// the previous frame, for damage limitation when drawing
	lastDisplay []bool
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The terminal is placed in non-canonical mode until Destroy() is
// called.
func NewTermPlay(handler gui.KeyHandler) (*TermPlay, error) {
	scr := &TermPlay{
		handler: handler,
		input:   make(chan byte, 16),
	}

	err := termios.Tcgetattr(os.Stdin.Fd(), &scr.canAttr)
	if err != nil {
		return nil, curated.Errorf(Terminal, err)
	}

	rawAttr := scr.canAttr
	rawAttr.Lflag &^= unix.ICANON | unix.ECHO
	rawAttr.Cc[unix.VMIN] = 1
	rawAttr.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &rawAttr)
	if err != nil {
		return nil, curated.Errorf(Terminal, err)
	}

	// stdin reads block so they happen in their own goroutine. the goroutine
	// leaks on Destroy() but the process is about to end anyway
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				return
			}
			scr.input <- buf[0]
		}
	}()

	// hide cursor and clear screen
	os.Stdout.WriteString("\033[?25l\033[2J")

	return scr, nil
}

// Service implements the gui.Frontend interface.
func (scr *TermPlay) Service() (bool, error) {
	// decay held keys
	for key := range scr.pressed {
		if scr.pressed[key] > 0 {
			scr.pressed[key]--
			if scr.pressed[key] == 0 {
				if err := scr.handler.SetKey(key, false); err != nil {
					return false, curated.Errorf(Terminal, err)
				}
			}
		}
	}

	for {
		select {
		case b := <-scr.input:
			if b == 0x1b { // escape
				return false, nil
			}
			if key, ok := keymap[b]; ok {
				if scr.pressed[key] == 0 {
					if err := scr.handler.SetKey(key, true); err != nil {
						return false, curated.Errorf(Terminal, err)
					}
				}
				scr.pressed[key] = keyDecay
			}
		default:
			return true, nil
		}
	}
}

// Render implements the gui.Frontend interface.
func (scr *TermPlay) Render(display []bool) error {
	// only redraw when something has changed. terminal writes are slow
	if scr.lastDisplay != nil {
		same := true
		for i := range display {
			if display[i] != scr.lastDisplay[i] {
				same = false
				break // for loop
			}
		}
		if same {
			return nil
		}
	} else {
		scr.lastDisplay = make([]bool, len(display))
	}
	copy(scr.lastDisplay, display)

	s := strings.Builder{}
	s.WriteString("\033[H")

	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if display[x+video.Width*y] {
				s.WriteString("██")
			} else {
				s.WriteString("  ")
			}
		}
		s.WriteString("\r\n")
	}

	if _, err := os.Stdout.WriteString(s.String()); err != nil {
		return curated.Errorf(Terminal, err)
	}

	return nil
}

// Destroy implements the gui.Frontend interface. The terminal is returned
// to canonical mode.
func (scr *TermPlay) Destroy() {
	os.Stdout.WriteString("\033[?25h\033[2J\033[H")
	_ = termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &scr.canAttr)
}
