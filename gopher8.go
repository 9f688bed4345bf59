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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PLAY", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Printf("%s (%s)\n", version.Version, version.Revision)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 15, "window scale")
	tps := md.AddInt("tps", 10, "instructions per timer tick (60Hz)")
	term := md.AddBool("term", false, "run in the terminal instead of a window")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		return playmode.Play(romloader.NewLoader(md.GetArg(0)), *scale, *tps, *term, *wav)
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		dsm, err := disassembly.FromLoader(romloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return err
		}
		return dsm.Write(os.Stdout)
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")
	stats := md.AddBool("stats", false, "information about the stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			fmt.Printf("stats server runs at %s while PERFORMANCE mode is active\n", statsview.Address)
		} else {
			fmt.Println("stats server not available. rebuild with the statsview build constraint")
		}
		return nil
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		return performance.Check(os.Stdout, *profile, romloader.NewLoader(md.GetArg(0)), *duration)
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}
