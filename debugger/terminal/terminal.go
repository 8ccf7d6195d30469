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

// Package terminal defines the operations required by the debugger's command
// line interface. Implementations live in the plainterm and colorterm
// sub-packages.
package terminal

// UserInterrupt is the error pattern returned by TermRead() when the user
// has interrupted the terminal (with ctrl-c for example).
const UserInterrupt = "user interrupt"

// Prompt is presented to the user when the terminal is waiting for input.
type Prompt struct {
	Content string
}

// Style is used to hint at what the output content represents, allowing the
// terminal implementation to present it accordingly.
type Style int

// List of terminal styles.
const (
	StyleOutput Style = iota
	StyleHelp
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the number of characters inserted into the buffer, or
	// an error, when completed
	TermRead(buffer []byte, prompt Prompt) (int, error)

	// IsInteractive returns true for implementations that expect user
	// interaction
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything
	Initialise() error

	// CleanUp restores the terminal to its original state, if possible. for
	// example, making sure the terminal is returned to canonical mode
	CleanUp()
}
