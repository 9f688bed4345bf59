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

// Package test contains helper functions that remove common boilerplate from
// package tests.
//
// The ExpectSuccess() and ExpectFailure() functions test a value for a
// success or failure condition appropriate to its type. For the error type,
// nil is a success; for the bool type, true is a success.
//
// The Equate() function compares like-typed values for equality. As a
// convenience some unsigned types can be compared against an int literal,
// saving a cast at the call site.
package test
