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

package modalflag_test

import (
	"testing"

	"github.com/hexforge/periphsim/modalflag"
	"github.com/hexforge/periphsim/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"debug", "-term", "PLAIN"})
	md.AddSubModes("run", "debug")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DEBUG")

	// the second layer of arguments belongs to the debug mode
	md.NewMode()
	term := md.AddString("term", "COLOR", "terminal type")

	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *term, "PLAIN")
	test.ExpectEquality(t, md.Path(), "DEBUG")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})
	md.AddSubModes("run", "debug")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)

	// no mode was specified on the command line so the default (first listed)
	// mode is selected
	test.ExpectEquality(t, md.Mode(), "RUN")
}

func TestUnrecognisedFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unrecognised"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}
