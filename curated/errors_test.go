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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const testPattern = "test: %v"
const testPatternB = "test B: %v"

func TestIdentification(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, testPatternB))

	// uncurated errors are never identified
	f := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(f))
	test.ExpectFailure(t, curated.Is(f, testPattern))

	// nil is not an error of any kind
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestChains(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(testPatternB, e)

	// Is() looks at the outermost error only. Has() walks the chain.
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPatternB))
}

func TestNormalisation(t *testing.T) {
	// adjacent duplicate message parts are removed on output
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", "inner"))
	test.Equate(t, e.Error(), "error: inner")

	// non-duplicate parts are preserved
	f := curated.Errorf("outer: %v", curated.Errorf("inner: %v", "detail"))
	test.Equate(t, f.Error(), "outer: inner: detail")
}
