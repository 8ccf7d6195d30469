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

// Package colorterm implements the Terminal interface for the debugger. It
// provides an interactive terminal with color output, simple line editing
// and a clean interrupt with ctrl-c.
package colorterm

import (
	"os"

	"github.com/hexforge/periphsim/curated"
	"github.com/hexforge/periphsim/debugger/terminal"
	"github.com/hexforge/periphsim/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	easyterm.Terminal
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	return ct.Terminal.Initialise(os.Stdin, os.Stdout)
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.Print(ansiNormal)
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleError:
		ct.Print(ansiBold + ansiRed)
		ct.Print("* %s", s)
	case terminal.StyleHelp:
		ct.Print(ansiDimmed)
		ct.Print("%s", s)
	default:
		ct.Print("%s", s)
	}
	ct.Print(ansiNormal + "\n")
}

// TermRead implements the terminal.Input interface. The terminal is placed
// in cbreak mode for the duration of the read so that line editing can be
// handled here rather than by the tty driver.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt) (int, error) {
	if err := ct.CBreakMode(); err != nil {
		return 0, err
	}
	defer ct.CanonicalMode()

	ct.Print(ansiClearLine)
	ct.Print(ansiBold + prompt.Content + ansiNormal)

	n := 0
	for {
		r, err := ct.ReadRune()
		if err != nil {
			return 0, err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.Print("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriage, '\n':
			ct.Print("\n")
			return n, nil

		case easyterm.KeyBackspace, easyterm.KeyDelWin:
			if n > 0 {
				n--
				ct.Print("\b \b")
			}

		case easyterm.KeyEsc, easyterm.KeyTab:
			// not supported. swallow silently

		default:
			if r >= 32 && r < 127 && n < len(buffer) {
				buffer[n] = r
				n++
				ct.Print("%c", r)
			}
		}
	}
}
