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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"file.ch8"})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "")
	test.Equate(t, md.GetArg(0), "file.ch8")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"file.ch8"})
	md.AddSubModes("RUN", "DISASM")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))

	// no sub-mode given so the default applies and the argument remains
	test.Equate(t, md.Mode(), "RUN")
	test.Equate(t, md.GetArg(0), "file.ch8")
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"disasm", "file.ch8"})
	md.AddSubModes("RUN", "DISASM")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "DISASM")

	// the sub-mode argument has been consumed
	test.Equate(t, md.GetArg(0), "file.ch8")
}

func TestModeFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"run", "-scale", "20", "file.ch8"})
	md.AddSubModes("RUN", "DISASM")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	scale := md.AddFloat64("scale", 15, "window scale")

	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(*scale), 20)
	test.Equate(t, md.GetArg(0), "file.ch8")
}
