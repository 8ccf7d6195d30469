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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// the termios methods in functions with friendlier names and keeps copies of
// the terminal attributes for the modes we flip between.
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: an input file is required")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: an output file is required")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return err
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	return nil
}

// CleanUp closes resources created in the Initialise() function.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
}

// CanonicalMode puts the terminal into the mode it was in when Initialise()
// was called, probably cooked mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts the terminal into cbreak mode: input is available byte by
// byte but signal characters are still interpreted.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// RawMode puts the terminal into raw mode.
func (pt *Terminal) RawMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.rawAttr)
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// ReadRune reads a single byte from the input file. The name is historic:
// only single-byte input is handled.
func (pt *Terminal) ReadRune() (byte, error) {
	b := make([]byte, 1)
	_, err := pt.input.Read(b)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}
