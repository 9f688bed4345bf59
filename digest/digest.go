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

// Package digest fingerprints the framebuffer. Every call to Frame() chains
// a SHA-1 of the display into the running digest; two emulation runs that
// produce the same sequence of frames produce the same hash. Useful for
// comparing emulation sessions without storing or eyeballing the frames
// themselves.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// Video is a fingerprint of every frame passed to the Frame() function.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash returns the current value of the fingerprint.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest returns the fingerprint to its initial value.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Frame chains the display, as returned by hardware.Chip8.Display(), into
// the fingerprint.
func (dig *Video) Frame(display []bool) {
	// the previous digest value is at the head of the hashed data, chaining
	// the fingerprints
	if len(dig.pixels) != len(dig.digest)+len(display) {
		dig.pixels = make([]byte, len(dig.digest)+len(display))
	}
	copy(dig.pixels, dig.digest[:])

	for i, on := range display {
		if on {
			dig.pixels[len(dig.digest)+i] = 1
		} else {
			dig.pixels[len(dig.digest)+i] = 0
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
}
