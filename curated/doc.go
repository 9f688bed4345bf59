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

// Package curated is a helper package for the plain Go language error type.
// Curated errors carry their formatting pattern with them, which allows the
// pattern to act as the identity of the error.
//
// Errors are created with the Errorf() function:
//
//	e := curated.Errorf("emulator: bad thing (%d)", 10)
//
// The Is() function checks whether an error is a curated error with a
// specific pattern:
//
//	if curated.Is(e, "emulator: bad thing (%d)") {
//		...
//	}
//
// The Has() function is similar but will look for the pattern anywhere in
// the error chain, where chains are built simply by passing a curated error
// as a value to Errorf().
//
// Packages that want their errors to be identifiable by callers should
// declare the pattern as an exported const string. For example, the faults
// raised by the emulation core (illegal opcodes, stack overflow, etc.) are
// declared this way so that a host can distinguish between them.
//
// Error messages are normalised on output: duplicate adjacent message parts
// are removed, where parts are the substrings separated by ": " (as
// suggested on p239 of "The Go Programming Language", Donovan & Kernighan).
// This alleviates the problem of when and how to wrap errors as they pass
// up through the call chain.
package curated
