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

package video

// Dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Video is the monochrome framebuffer for the machine. Pixels are toggled
// by XOR during Draw() and by nothing else.
type Video struct {
	// pixel states addressed as x + Width*y
	pixels [Width * Height]bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Reset the framebuffer. All pixels are unset.
func (vid *Video) Reset() {
	vid.Clear()
}

// Clear the framebuffer. The effect is the same as Reset() but this is the
// entry point used by the CLS instruction.
func (vid *Video) Clear() {
	for i := range vid.pixels {
		vid.pixels[i] = false
	}
}

// Draw the sprite at coordinates (x, y). Each byte of the sprite is one row
// of eight pixels, the most significant bit leftmost. Set bits are XORed
// into the framebuffer; pixels that fall off the right or bottom edge wrap
// around to the opposite edge.
//
// Returns true if any set pixel was turned off by the draw (a collision).
// The collision result covers the whole sprite, not the last row.
func (vid *Video) Draw(x uint8, y uint8, sprite []uint8) bool {
	collision := false

	for row, pixels := range sprite {
		for col := 0; col < 8; col++ {
			if pixels&(0x80>>col) == 0 {
				continue
			}

			px := (int(x) + col) % Width
			py := (int(y) + row) % Height
			idx := px + Width*py

			collision = collision || vid.pixels[idx]
			vid.pixels[idx] = !vid.pixels[idx]
		}
	}

	return collision
}

// Snapshot returns a copy of the framebuffer, addressed as x + Width*y.
// The copy is the host's to keep; it will not change as the emulation
// proceeds.
func (vid *Video) Snapshot() []bool {
	snap := make([]bool, len(vid.pixels))
	copy(snap, vid.pixels[:])
	return snap
}
