// This file is part of Periphsim.
//
// Periphsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Periphsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Periphsim.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments for programs
// with sub-modes. The Output field should be specified before calling Parse()
// or you will not see any help messages.
type Modes struct {
	// where to print output (help messages etc). defaults to no output
	Output io.Writer

	// the underlying flag structure. a new flagset is created on every call
	// to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args    []string
	argsIdx int

	// the most recent list of sub-modes specified with AddSubModes()
	subModes []string

	// path is the series of sub-modes that have been found during subsequent
	// calls to Parse(). never reset
	path []string
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

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes to list of sub-modes for the next call to Parse(). The first
// sub-mode in the list is considered to be the default sub-mode.
//
// Note that sub-mode comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	md.subModes = append(md.subModes, submodes...)
	for i := range md.subModes {
		md.subModes[i] = strings.ToUpper(md.subModes[i])
	}
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were specified then
	// the Mode() function should be checked
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the next layer of arguments. Help messages are handled automatically,
// the ParseHelp return value simply allows the caller to end command line
// processing without any further output.
func (md *Modes) Parse() (ParseResult, error) {
	// capture the flag package's own output. we print our own help message
	hw := &strings.Builder{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// check to see if the first remaining argument is in the list of
		// modes, defaulting to the first mode in the list if it isn't
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

func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	if md.Path() != "" {
		fmt.Fprintf(md.Output, "usage of %s mode:\n", md.Path())
	} else {
		fmt.Fprintf(md.Output, "usage:\n")
	}

	hw := &strings.Builder{}
	md.flags.SetOutput(hw)
	md.flags.PrintDefaults()
	if hw.Len() > 0 {
		fmt.Fprint(md.Output, hw.String())
	}

	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint flag for next call to Parse().
func (md *Modes) AddUint(name string, value uint, usage string) *uint {
	return md.flags.Uint(name, value, usage)
}
