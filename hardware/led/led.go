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

// Package led is the LED output stage. It consumes the low bits of the
// CONTROL register and drives the LED lines, either as a registered
// pass-through or modulated by a duty-cycle comparator for dimming. It is a
// simple periodic output formatter with no protocol subtlety.
package led

import "fmt"

// NumLEDs driven by the output stage.
const NumLEDs = 4

// mask of the CONTROL register bits consumed by the stage.
const ledMask = uint32(1<<NumLEDs) - 1

// LEDs drives the LED output lines from the CONTROL register value.
type LEDs struct {
	// dimming mode. when enabled the output is gated by a comparison of the
	// duty value against a free-running counter
	dim  bool
	duty uint8

	counter uint8

	// registered output. one tick behind the CONTROL register
	out uint8
}

// NewLEDs is the preferred method of initialisation for the LEDs type.
func NewLEDs() *LEDs {
	return &LEDs{}
}

// Reset the output stage. The output lines are driven low.
func (l *LEDs) Reset() {
	l.counter = 0
	l.out = 0
}

func (l *LEDs) String() string {
	s := ""
	for i := NumLEDs - 1; i >= 0; i-- {
		if l.out&(1<<i) != 0 {
			s += "*"
		} else {
			s += "."
		}
	}
	if l.dim {
		return fmt.Sprintf("%s (duty %d/256)", s, l.duty)
	}
	return s
}

// SetDimmer enables or disables the duty-cycle dimming mode. A duty of 255
// is almost fully on, a duty of 0 is fully off.
func (l *LEDs) SetDimmer(enabled bool, duty uint8) {
	l.dim = enabled
	l.duty = duty
}

// Step the output stage one tick, sampling the CONTROL register value.
func (l *LEDs) Step(control uint32) {
	bits := uint8(control & ledMask)

	if l.dim {
		// free-running counter compared against the duty value. lit LEDs
		// are only driven while the counter is below the duty
		if l.counter < l.duty {
			l.out = bits
		} else {
			l.out = 0
		}
		l.counter++
		return
	}

	l.out = bits
}

// Output returns the state of the LED lines.
func (l *LEDs) Output() uint8 {
	return l.out
}
