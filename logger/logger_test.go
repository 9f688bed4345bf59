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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestCentral(t *testing.T) {
	logger.Clear()

	logger.Log("test", "first entry")
	logger.Log("test", "second entry")

	b := &strings.Builder{}
	logger.Write(b)
	test.Equate(t, b.String(), "test: first entry\ntest: second entry\n")

	b.Reset()
	logger.Tail(b, 1)
	test.Equate(t, b.String(), "test: second entry\n")
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Log("test", "same entry")

	b := &strings.Builder{}
	logger.Write(b)
	test.Equate(t, b.String(), "test: same entry (repeat x3)\n")
}
