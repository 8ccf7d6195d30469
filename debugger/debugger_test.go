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

package debugger_test

import (
	"io"
	"strings"
	"testing"

	"github.com/hexforge/periphsim/debugger"
	"github.com/hexforge/periphsim/debugger/terminal"
	"github.com/hexforge/periphsim/hardware"
	"github.com/hexforge/periphsim/test"
)

// mockTerm implements the terminal.Terminal interface. input is fed from a
// prepared script and all output is collected for inspection.
type mockTerm struct {
	script []string
	output strings.Builder
	errors strings.Builder
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt) (int, error) {
	if len(trm.script) == 0 {
		return 0, io.EOF
	}
	s := trm.script[0]
	trm.script = trm.script[1:]
	copy(buffer, s)
	return len(s), nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		trm.errors.WriteString(s)
		trm.errors.WriteString("\n")
		return
	}
	trm.output.WriteString(s)
	trm.output.WriteString("\n")
}

func run(t *testing.T, script ...string) (*hardware.Periph, *mockTerm) {
	t.Helper()

	ph := hardware.NewPeriph(3, 1)
	trm := &mockTerm{script: script}

	dbg, err := debugger.NewDebugger(ph, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start())

	return ph, trm
}

func TestQuit(t *testing.T) {
	_, trm := run(t, "QUIT")
	test.ExpectEquality(t, trm.errors.String(), "")
}

func TestStep(t *testing.T) {
	ph, trm := run(t, "STEP", "STEP 9", "QUIT")
	test.ExpectEquality(t, ph.TickCount, 10)
	test.ExpectEquality(t, trm.errors.String(), "")
}

func TestPokePeek(t *testing.T) {
	_, trm := run(t, "POKE 0x04 0xcafe", "PEEK 0x04", "QUIT")
	test.ExpectEquality(t, trm.errors.String(), "")
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "0x0000cafe"))
}

func TestPokeByteMask(t *testing.T) {
	_, trm := run(t,
		"POKE 0x0c 0x11223344",
		"POKE 0x0c 0xaabbccdd 0x0a",
		"PEEK 0x0c",
		"QUIT")
	test.ExpectEquality(t, trm.errors.String(), "")
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "0xaa22cc44"))
}

func TestButtonPress(t *testing.T) {
	ph, trm := run(t, "BUTTON PRESS", "QUIT")
	test.ExpectEquality(t, trm.errors.String(), "")
	test.ExpectSuccess(t, ph.RegFile.InterruptOutput())
}

func TestUnrecognisedCommand(t *testing.T) {
	_, trm := run(t, "FNORD", "QUIT")
	test.ExpectSuccess(t, strings.Contains(trm.errors.String(), "unrecognised command"))
}

func TestBadValue(t *testing.T) {
	_, trm := run(t, "PEEK banana", "QUIT")
	test.ExpectSuccess(t, strings.Contains(trm.errors.String(), "not a valid value"))
}
