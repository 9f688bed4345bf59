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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
)

// Check is a very rough and ready calculation of the emulator's performance.
// The machine is run flat out, with no display and no timer ticking beyond
// what the elapsed wall-clock time demands.
func Check(output io.Writer, profile bool, loader romloader.Loader, duration time.Duration) error {
	ch8 := hardware.NewChip8()

	// deterministic randomness so that repeated checks of the same ROM do
	// the same work
	ch8.Rand.ZeroSeed = true

	if err := ch8.AttachROM(loader); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	statsview.Launch(output)

	instructions := 0
	var elapsed time.Duration

	err := cpuProfile(profile, "cpu.profile", func() error {
		start := time.Now()
		ticked := 0

		// the continueCheck is throttled with PerformanceBrake. reading the
		// wall clock after every instruction costs more than the
		// instruction itself
		brake := 0

		err := ch8.Run(func() (bool, error) {
			instructions++

			brake++
			if brake >= hardware.PerformanceBrake {
				brake = 0

				elapsed = time.Since(start)

				// catch the timers up with the wall clock
				for time.Duration(ticked)*time.Second/60 < elapsed {
					ch8.TickTimers()
					ticked++
				}

				if elapsed >= duration {
					return false, nil
				}
			}

			return true, nil
		})
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	rate := float64(instructions) / elapsed.Seconds()
	fmt.Fprintf(output, "%.0f instructions/sec (%d instructions in %.2f seconds)\n",
		rate, instructions, elapsed.Seconds())

	return memProfile(profile, "mem.profile")
}
