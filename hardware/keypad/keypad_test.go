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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestSetAndRead(t *testing.T) {
	kp := keypad.NewKeypad()

	p, err := kp.IsPressed(0x5)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, p)

	test.ExpectSuccess(t, kp.Set(0x5, true))
	p, _ = kp.IsPressed(0x5)
	test.ExpectSuccess(t, p)

	test.ExpectSuccess(t, kp.Set(0x5, false))
	p, _ = kp.IsPressed(0x5)
	test.ExpectFailure(t, p)
}

func TestInvalidKey(t *testing.T) {
	kp := keypad.NewKeypad()

	err := kp.Set(keypad.NumKeys, true)
	test.ExpectSuccess(t, curated.Is(err, keypad.InvalidKey))

	err = kp.Set(-1, true)
	test.ExpectSuccess(t, curated.Is(err, keypad.InvalidKey))

	_, err = kp.IsPressed(keypad.NumKeys)
	test.ExpectSuccess(t, curated.Is(err, keypad.InvalidKey))
}

func TestFirstPressed(t *testing.T) {
	kp := keypad.NewKeypad()

	_, ok := kp.FirstPressed()
	test.ExpectFailure(t, ok)

	kp.Set(0xa, true)
	kp.Set(0x3, true)

	// keys are scanned in ascending order
	k, ok := kp.FirstPressed()
	test.ExpectSuccess(t, ok)
	test.Equate(t, k, 0x3)

	kp.Reset()
	_, ok = kp.FirstPressed()
	test.ExpectFailure(t, ok)
}
