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

package cpu

import (
	"github.com/jetsetilly/gopher8/curated"
)

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Sentinal errors returned by the return address stack.
const (
	StackOverflow  = "cpu: stack overflow (subroutine calls nested deeper than %d)"
	StackUnderflow = "cpu: stack underflow (return with no corresponding call)"
)

// the return address stack. used only by the call and return instructions.
// exceeding the fixed depth in either direction is a ROM fault and is
// reported as a distinct error rather than wrapping silently.
type stack struct {
	addresses [StackDepth]uint16
	depth     int
}

func (stk *stack) reset() {
	stk.depth = 0
}

func (stk *stack) push(address uint16) error {
	if stk.depth >= StackDepth {
		return curated.Errorf(StackOverflow, StackDepth)
	}
	stk.addresses[stk.depth] = address
	stk.depth++
	return nil
}

func (stk *stack) pop() (uint16, error) {
	if stk.depth <= 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	stk.depth--
	return stk.addresses[stk.depth], nil
}
