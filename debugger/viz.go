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

package debugger

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/hexforge/periphsim/curated"
	"github.com/hexforge/periphsim/debugger/terminal"
)

// cmdViz writes a graphviz (dot) representation of the simulation structure
// to the specified file. useful for seeing how the components connect to one
// another at a glance.
func (dbg *Debugger) cmdViz(args []string) error {
	if len(args) != 1 {
		return curated.Errorf("debugger: VIZ: requires a filename")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf("debugger: VIZ: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.periph)

	dbg.term.TermPrintLine(terminal.StyleOutput,
		fmt.Sprintf("simulation graph written to %s", args[0]))

	return nil
}
