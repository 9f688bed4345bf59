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

// Package gui defines the interface between the emulated machine and the
// display/input frontends. Implementations live in the sub-packages:
// sdlplay for a desktop window and termplay for the terminal.
package gui

// KeyHandler implementations receive key events from a frontend. The
// hardware.Chip8 type is the canonical implementation.
type KeyHandler interface {
	SetKey(key int, pressed bool) error
}

// Frontend is the minimal interface required of a display/input frontend.
//
// The host is expected to call Service() often - at least once per frame -
// to keep the frontend's event queue drained and key events flowing to the
// KeyHandler.
type Frontend interface {
	// Service the frontend's event queue. Returns false when the user has
	// asked to quit.
	Service() (bool, error)

	// Render the framebuffer, addressed as x + video.Width*y.
	Render(display []bool) error

	// Destroy the frontend and release its resources.
	Destroy()
}
