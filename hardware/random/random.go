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

// Package random is the source of random numbers for the emulation. It
// should be used in preference to the math/rand package inside the
// emulation so that the randomness is a capability of the machine instance
// rather than ambient process state.
//
// If the same sequence of random numbers is required every run - in tests,
// most obviously - then set ZeroSeed to true before the first number is
// requested.
package random

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// the base seed for all Random instances. each instance mixes in its own
// sequence number so that machines created in the same process do not see
// the same stream of numbers
var baseSeed int64
var instances int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator belonging to a single machine
// instance. Machine instances never share generator state.
type Random struct {
	// use a zero seed rather than the random base seed. must be set before
	// the first call to Uint8(). only really useful for tests which require
	// predictable numbers
	ZeroSeed bool

	prng *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

func (rnd *Random) source() *rand.Rand {
	if rnd.prng == nil {
		if rnd.ZeroSeed {
			rnd.prng = rand.New(rand.NewSource(0))
		} else {
			rnd.prng = rand.New(rand.NewSource(baseSeed + atomic.AddInt64(&instances, 1)))
		}
	}
	return rnd.prng
}

// Uint8 returns a random byte.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.source().Intn(256))
}
