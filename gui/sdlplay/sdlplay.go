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

// Package sdlplay is an SDL2 implementation of the gui.Frontend interface.
// It opens a desktop window showing the framebuffer at an integer scale and
// translates keyboard events into keypad events for the attached
// gui.KeyHandler.
//
// The keyboard mapping follows the COSMAC VIP convention: the left-hand
// block of the modern keyboard (1234/qwer/asdf/zxcv) maps onto the 4x4
// hexadecimal keypad.
package sdlplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal errors returned by the sdlplay package.
const (
	SDL = "sdlplay: %v"
)

const pixelDepth = 4

// pixel colours. a green-on-black phosphor look
const (
	foreRed, foreGreen, foreBlue = 0x90, 0xe0, 0x90
	backRed, backGreen, backBlue = 0x10, 0x20, 0x10
)

// SdlPlay is an SDL2 implementation of the gui.Frontend interface.
type SdlPlay struct {
	handler gui.KeyHandler

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array we copy to the texture before applying it to
	// the renderer. it is video.Width * video.Height * pixelDepth in length
	pixels []byte

	// all sound is handled by the beep type
	snd *beep
}

// scancode to keypad value. the left-hand block of the keyboard folds onto
// the 4x4 keypad
var keymap = map[sdl.Scancode]int{
	sdl.SCANCODE_1: 0x1, sdl.SCANCODE_2: 0x2, sdl.SCANCODE_3: 0x3, sdl.SCANCODE_4: 0xc,
	sdl.SCANCODE_Q: 0x4, sdl.SCANCODE_W: 0x5, sdl.SCANCODE_E: 0x6, sdl.SCANCODE_R: 0xd,
	sdl.SCANCODE_A: 0x7, sdl.SCANCODE_S: 0x8, sdl.SCANCODE_D: 0x9, sdl.SCANCODE_F: 0xe,
	sdl.SCANCODE_Z: 0xa, sdl.SCANCODE_X: 0x0, sdl.SCANCODE_C: 0xb, sdl.SCANCODE_V: 0xf,
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The window is sized at the framebuffer dimensions multiplied by scale.
func NewSdlPlay(handler gui.KeyHandler, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{handler: handler}

	if scale < 1 {
		scale = 1
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(video.Width*scale), int32(video.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// texture is the size of the framebuffer. the renderer scales it to the
	// window for us
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.snd, err = newBeep()
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	return scr, nil
}

// Mixer returns the frontend's tone generator, for attaching to the
// machine's sound timer.
func (scr *SdlPlay) Mixer() *beep {
	return scr.snd
}

// Service implements the gui.Frontend interface. It must be called from the
// main goroutine, as required by SDL.
func (scr *SdlPlay) Service() (bool, error) {
	scr.snd.service()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false, nil

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue // event loop
			}
			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return false, nil
			}
			if key, ok := keymap[ev.Keysym.Scancode]; ok {
				err := scr.handler.SetKey(key, ev.Type == sdl.KEYDOWN)
				if err != nil {
					return false, curated.Errorf(SDL, err)
				}
			}
		}
	}

	return true, nil
}

// Render implements the gui.Frontend interface.
func (scr *SdlPlay) Render(display []bool) error {
	for i, on := range display {
		p := i * pixelDepth
		if p > len(scr.pixels)-pixelDepth {
			break // for loop
		}
		if on {
			scr.pixels[p] = foreRed
			scr.pixels[p+1] = foreGreen
			scr.pixels[p+2] = foreBlue
		} else {
			scr.pixels[p] = backRed
			scr.pixels[p+1] = backGreen
			scr.pixels[p+2] = backBlue
		}
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	scr.renderer.Present()

	return nil
}

// Destroy implements the gui.Frontend interface.
func (scr *SdlPlay) Destroy() {
	scr.snd.destroy()
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}
