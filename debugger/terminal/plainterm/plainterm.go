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

// Package plainterm implements the Terminal interface for the debugger. It
// is as simple as simple can be and offers no special features.
package plainterm

import (
	"fmt"
	"io"
	"os"

	"github.com/hexforge/periphsim/debugger/terminal"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such it
// offers only rudimentary editing facilities and little control over output.
type PlainTerminal struct {
	input  io.Reader
	output io.Writer
}

// Initialise performs any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return false
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	pt.output.Write([]byte(s))
	pt.output.Write([]byte("\n"))
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(buffer []byte, prompt terminal.Prompt) (int, error) {
	pt.output.Write([]byte(prompt.Content))

	n, err := pt.input.Read(buffer)
	if err != nil {
		return n, err
	}

	return n, nil
}
