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

// Package trace records the externally visible lines of the peripheral in
// value-change-dump (VCD) format, suitable for waveform viewers. Only
// changes are recorded so an idle simulation produces almost no output.
package trace

import (
	"fmt"
	"io"
	"time"

	"github.com/hexforge/periphsim/curated"
)

// the identifier codes assigned to each recorded signal.
const (
	idIRQ      = "!"
	idLEDs     = "\""
	idSegments = "#"
	idSelect   = "$"
)

// Recorder writes a VCD stream of the peripheral's output lines.
type Recorder struct {
	w io.Writer

	// most recent recorded values. used to suppress no-change samples
	irq      bool
	leds     uint8
	segments uint8
	sel      uint8

	// whether anything has been recorded yet. the first sample is always
	// written in full
	primed bool
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The VCD header is written immediately.
func NewRecorder(w io.Writer) (*Recorder, error) {
	rec := &Recorder{w: w}

	hdr := fmt.Sprintf("$date %s $end\n", time.Now().Format(time.ANSIC))
	hdr += "$version periphsim $end\n"
	hdr += "$timescale 20ns $end\n"
	hdr += "$scope module periph $end\n"
	hdr += fmt.Sprintf("$var wire 1 %s irq $end\n", idIRQ)
	hdr += fmt.Sprintf("$var wire 4 %s leds $end\n", idLEDs)
	hdr += fmt.Sprintf("$var wire 7 %s segments $end\n", idSegments)
	hdr += fmt.Sprintf("$var wire 4 %s digit_sel $end\n", idSelect)
	hdr += "$upscope $end\n"
	hdr += "$enddefinitions $end\n"

	if _, err := io.WriteString(w, hdr); err != nil {
		return nil, curated.Errorf("trace: %v", err)
	}

	return rec, nil
}

// Sample records the state of the output lines at the given tick. Samples
// with no changes are suppressed.
func (rec *Recorder) Sample(tick uint64, irq bool, leds uint8, segments uint8, sel uint8) error {
	changed := !rec.primed ||
		irq != rec.irq || leds != rec.leds ||
		segments != rec.segments || sel != rec.sel
	if !changed {
		return nil
	}

	s := fmt.Sprintf("#%d\n", tick)
	if !rec.primed || irq != rec.irq {
		s += fmt.Sprintf("%s%s\n", bit(irq), idIRQ)
	}
	if !rec.primed || leds != rec.leds {
		s += fmt.Sprintf("b%04b %s\n", leds, idLEDs)
	}
	if !rec.primed || segments != rec.segments {
		s += fmt.Sprintf("b%07b %s\n", segments, idSegments)
	}
	if !rec.primed || sel != rec.sel {
		s += fmt.Sprintf("b%04b %s\n", sel, idSelect)
	}

	if _, err := io.WriteString(rec.w, s); err != nil {
		return curated.Errorf("trace: %v", err)
	}

	rec.irq = irq
	rec.leds = leds
	rec.segments = segments
	rec.sel = sel
	rec.primed = true

	return nil
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
