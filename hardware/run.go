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

package hardware

// The continueCheck() function in Run() is called after every instruction.
// Expensive checks (reading the wall clock, say) can be filtered with the
// PerformanceBrake value:
//
//	brake++
//	if brake >= hardware.PerformanceBrake {
//		brake = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run the machine as quickly as possible. Stepping continues until
// continueCheck() returns false or an error, or until the machine faults.
//
// Note that Run() never ticks the timers - the continueCheck()
// implementation is responsible for calling TickTimers() at whatever
// cadence it sees fit.
func (ch8 *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := ch8.CPU.Step(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
