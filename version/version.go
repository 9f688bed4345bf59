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

// Package version records the version number of the project and the vcs
// state it was built from.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Gopher8"

// Version contains the version number of the project. If the string is
// "unreleased" then the project was not built from a tagged release.
var Version string

// Revision contains the vcs revision the project was built from. If the
// source had been modified but not committed then the string is suffixed
// with "+dirty". If there is no vcs information at all (eg. built with
// "go run .") then the string is "unknown".
var Revision string

func init() {
	Version = "unreleased"
	Revision = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision != "" {
		Revision = revision
		if modified {
			Revision = Revision + "+dirty"
		}
	}
}
