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

package led_test

import (
	"testing"

	"github.com/hexforge/periphsim/hardware/led"
	"github.com/hexforge/periphsim/test"
)

func TestPassThrough(t *testing.T) {
	l := led.NewLEDs()

	// one tick of registration
	l.Step(0x00000005)
	test.ExpectEquality(t, l.Output(), uint8(0x05))

	// only the low bits are consumed
	l.Step(0xffffff0a)
	test.ExpectEquality(t, l.Output(), uint8(0x0a))
}

func TestDimming(t *testing.T) {
	l := led.NewLEDs()
	l.SetDimmer(true, 64)

	// over a full counter period the LEDs are lit for duty ticks
	lit := 0
	for i := 0; i < 256; i++ {
		l.Step(0x0000000f)
		if l.Output() != 0 {
			test.ExpectEquality(t, l.Output(), uint8(0x0f))
			lit++
		}
	}
	test.ExpectEquality(t, lit, 64)
}

func TestDimmingFullOff(t *testing.T) {
	l := led.NewLEDs()
	l.SetDimmer(true, 0)

	for i := 0; i < 256; i++ {
		l.Step(0x0000000f)
		test.ExpectEquality(t, l.Output(), uint8(0))
	}
}
