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

package video_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/test"
)

func TestDrawAndCollision(t *testing.T) {
	vid := video.NewVideo()

	// first draw sets pixels and reports no collision
	collision := vid.Draw(0, 0, []uint8{0xff})
	test.ExpectFailure(t, collision)

	snap := vid.Snapshot()
	for x := 0; x < 8; x++ {
		test.ExpectSuccess(t, snap[x])
	}
	test.ExpectFailure(t, snap[8])

	// drawing the same sprite again toggles the same pixels off and
	// reports the collision
	collision = vid.Draw(0, 0, []uint8{0xff})
	test.ExpectSuccess(t, collision)

	snap = vid.Snapshot()
	for x := 0; x < 8; x++ {
		test.ExpectFailure(t, snap[x])
	}
}

func TestCollisionIsWholeSprite(t *testing.T) {
	vid := video.NewVideo()

	// set a pixel in the first row only
	vid.Draw(0, 0, []uint8{0x80})

	// a two row sprite collides on the first row. the second row drawing
	// cleanly must not erase the collision result
	collision := vid.Draw(0, 0, []uint8{0x80, 0x80})
	test.ExpectSuccess(t, collision)
}

func TestWraparound(t *testing.T) {
	vid := video.NewVideo()

	// drawing at the right edge wraps the remaining columns to x=0
	vid.Draw(video.Width-1, 0, []uint8{0xff})

	snap := vid.Snapshot()
	test.ExpectSuccess(t, snap[video.Width-1])
	for x := 0; x < 7; x++ {
		test.ExpectSuccess(t, snap[x])
	}
	test.ExpectFailure(t, snap[7])

	// drawing at the bottom edge wraps rows to y=0
	vid.Clear()
	vid.Draw(0, video.Height-1, []uint8{0x80, 0x80})

	snap = vid.Snapshot()
	test.ExpectSuccess(t, snap[video.Width*(video.Height-1)])
	test.ExpectSuccess(t, snap[0])
}

func TestClear(t *testing.T) {
	vid := video.NewVideo()
	vid.Draw(10, 10, []uint8{0xff})
	vid.Clear()

	for i, p := range vid.Snapshot() {
		if p {
			t.Fatalf("pixel %d still set after Clear()", i)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	vid := video.NewVideo()
	snap := vid.Snapshot()

	// writing to the snapshot must not affect the framebuffer
	snap[0] = true
	test.ExpectFailure(t, vid.Snapshot()[0])
}
