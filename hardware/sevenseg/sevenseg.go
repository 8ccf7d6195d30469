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

// Package sevenseg is the display output stage. It consumes the low 16 bits
// of the DATA register as four hexadecimal nibbles and scans them across a
// four-digit seven-segment display, one digit at a time at a fixed refresh
// rate. It is a simple periodic output formatter with no protocol subtlety.
package sevenseg

import "fmt"

// NumDigits on the display.
const NumDigits = 4

// segment patterns for the sixteen hexadecimal digits. bit 0 is segment a,
// bit 6 is segment g, active high.
var segmentTable = [16]uint8{
	0x3f, 0x06, 0x5b, 0x4f,
	0x66, 0x6d, 0x7d, 0x07,
	0x7f, 0x6f, 0x77, 0x7c,
	0x39, 0x5e, 0x79, 0x71,
}

// Display scans the four nibbles of the DATA register across the digit
// positions.
type Display struct {
	// ticks per digit position. derived from the clock frequency and the
	// desired refresh rate
	divider int

	count int
	digit int

	// the currently driven outputs
	segments uint8
	sel      uint8
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The divider argument is the number of ticks each digit is driven for; a
// divider of less than one is treated as one.
func NewDisplay(divider int) *Display {
	if divider < 1 {
		divider = 1
	}
	dsp := &Display{divider: divider}
	dsp.Reset()
	return dsp
}

// Reset the display scan to the first digit.
func (dsp *Display) Reset() {
	dsp.count = 0
	dsp.digit = 0
	dsp.segments = 0
	dsp.sel = 0
}

func (dsp *Display) String() string {
	return fmt.Sprintf("digit=%d sel=%04b segments=%07b", dsp.digit, dsp.sel, dsp.segments)
}

// Step the display one tick, sampling the display value. The active digit
// advances every divider ticks, in round-robin order.
func (dsp *Display) Step(value uint16) {
	nibble := uint8(value>>(4*dsp.digit)) & 0x0f
	dsp.segments = segmentTable[nibble]
	dsp.sel = 1 << dsp.digit

	dsp.count++
	if dsp.count >= dsp.divider {
		dsp.count = 0
		dsp.digit = (dsp.digit + 1) % NumDigits
	}
}

// Segments returns the currently driven segment pattern.
func (dsp *Display) Segments() uint8 {
	return dsp.segments
}

// DigitSelect returns the one-hot digit select lines.
func (dsp *Display) DigitSelect() uint8 {
	return dsp.sel
}

// SegmentPattern returns the segment pattern for a hexadecimal digit.
// Useful to tests and to front-ends that want to render a whole value at
// once.
func SegmentPattern(nibble uint8) uint8 {
	return segmentTable[nibble&0x0f]
}
