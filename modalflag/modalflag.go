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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides command line parsing with sub-modes. Each mode has its own
// flags, defined between calls to NewMode() and Parse(). The Output field
// should be specified before calling Parse() or you will not see any help
// messages.
type Modes struct {
	// where to print output (help messages etc). defaults to discarding
	// all output if not set
	Output io.Writer

	// the underlying flag structure. a new flagset is created on every call
	// to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function. argsIdx
	// advances as sub-modes are consumed
	args    []string
	argsIdx int

	// the list of sub-modes valid for the next call to Parse(). the first
	// entry is the default
	subModes []string

	// the series of sub-modes found during subsequent calls to Parse()
	path []string

	// some modes benefit from a fuller explanation than the flag summaries
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns a string of all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0

	// by definition, a newly initialised Modes struct begins with a new mode
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The
// first sub-mode in the list is considered to be the default. Sub-mode
// comparisons are case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp to be displayed in addition to the regular help on
// available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were specified in
	// the preceding call to NewMode() then the Mode() function should be
	// checked
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the next layer of arguments. Help messages are written to the
// Output field, which must be set for them to be visible.
func (md *Modes) Parse() (ParseResult, error) {
	output := md.Output
	if output == nil {
		output = io.Discard
	}

	// capture the flag package's own output. we print our own help message
	hw := &strings.Builder{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help(output, hw.String())
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// advance the argument index past anything flags.Parse() consumed
	md.argsIdx += len(md.args[md.argsIdx:]) - len(md.flags.Args())

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// check to see if the first argument is in the list of sub-modes,
		// starting off assuming it isn't and the default applies
		mode := md.subModes[0]
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// print the assembled help message for the current mode.
func (md *Modes) help(output io.Writer, flagDefaults string) {
	banner := "Usage:"
	if md.Path() != "" {
		banner = fmt.Sprintf("Usage of %s mode:", md.Path())
	}
	fmt.Fprintln(output, banner)

	// flagDefaults is the output of flag.PrintDefaults(), which the flag
	// package has already formatted for us
	if flagDefaults != "" {
		fmt.Fprint(output, flagDefaults)
	}

	if len(md.subModes) > 0 {
		fmt.Fprintf(output, "  sub-modes: %s (default: %s)\n",
			strings.Join(md.subModes, ", "), md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", md.additionalHelp)
	}
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument that isn't a flag or a listed
// sub-mode. The empty string is returned if the argument does not exist.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i >= len(args) {
		return ""
	}
	return args[i]
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
