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

// Package modalflag is a wrapper around the flag package in the Go standard
// library. It provides easy access to program modes and sub-modes, each mode
// with its own set of flags.
//
// The basic pattern:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		...
//	case "DISASM":
//		...
//	}
//
// After a sub-mode has been selected, NewMode() begins a new mode with a
// fresh set of flags, and Parse() is called again on the remaining
// arguments. The first sub-mode added is the default, used when no sub-mode
// is given on the command line.
package modalflag
