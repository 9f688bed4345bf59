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

package keypad

import (
	"github.com/jetsetilly/gopher8/curated"
)

// NumKeys is the number of keys on the CHIP-8 keypad, numbered 0x0 to 0xf.
const NumKeys = 16

// Sentinal error returned for key values outside of [0, NumKeys).
const InvalidKey = "keypad: invalid key (%#02x)"

// Keypad is the input latch for the machine: sixteen boolean key states,
// written by the host and read by the skip and wait instructions. The
// emulation itself never changes a key state.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	for i := range kp.keys {
		kp.keys[i] = false
	}
}

// Set the state of a key. Key values outside of [0, NumKeys) are an error
// on the part of the caller; the latch is unchanged in that case.
func (kp *Keypad) Set(key int, pressed bool) error {
	if key < 0 || key >= NumKeys {
		return curated.Errorf(InvalidKey, key)
	}
	kp.keys[key] = pressed
	return nil
}

// IsPressed returns the current state of a key. Key values are taken from a
// V register by the skip instructions so an out of range value is a ROM
// fault rather than a host fault.
func (kp *Keypad) IsPressed(key uint8) (bool, error) {
	if key >= NumKeys {
		return false, curated.Errorf(InvalidKey, key)
	}
	return kp.keys[key], nil
}

// FirstPressed returns the lowest numbered key that is currently pressed.
// The second return value is false if no key is pressed.
func (kp *Keypad) FirstPressed() (uint8, bool) {
	for i := range kp.keys {
		if kp.keys[i] {
			return uint8(i), true
		}
	}
	return 0, false
}
