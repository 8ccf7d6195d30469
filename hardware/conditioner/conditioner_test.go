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

package conditioner_test

import (
	"testing"

	"github.com/hexforge/periphsim/hardware/conditioner"
	"github.com/hexforge/periphsim/test"
)

// countPulses steps the conditioner for each sample in the input sequence
// and returns how many pulses were seen.
func countPulses(cn *conditioner.Conditioner, seq []bool) int {
	n := 0
	for _, raw := range seq {
		cn.Step(raw)
		if cn.Pulse() {
			n++
		}
	}
	return n
}

// hold returns a sequence of n identical samples.
func hold(v bool, n int) []bool {
	seq := make([]bool, n)
	for i := range seq {
		seq[i] = v
	}
	return seq
}

func TestPulseTiming(t *testing.T) {
	// with a threshold of 3 the pulse appears two ticks (synchroniser), plus
	// three ticks (debounce), plus one tick (edge register) after the input
	// goes high
	cn := conditioner.NewConditioner(3)

	for i := 0; i < 5; i++ {
		cn.Step(true)
		test.ExpectEquality(t, cn.Pulse(), false)
	}
	test.ExpectEquality(t, cn.Stable(), true)

	cn.Step(true)
	test.ExpectEquality(t, cn.Pulse(), true)

	// pulse is exactly one tick wide
	cn.Step(true)
	test.ExpectEquality(t, cn.Pulse(), false)
}

func TestSustainedHighDoesNotRetrigger(t *testing.T) {
	cn := conditioner.NewConditioner(3)
	test.ExpectEquality(t, countPulses(cn, hold(true, 1000)), 1)
}

func TestBounceRejection(t *testing.T) {
	cn := conditioner.NewConditioner(3)

	// an input toggling faster than the debounce threshold never updates the
	// stable value and never produces a pulse
	seq := make([]bool, 100)
	for i := range seq {
		seq[i] = i%2 == 0
	}
	test.ExpectEquality(t, countPulses(cn, seq), 0)
	test.ExpectEquality(t, cn.Stable(), false)

	// the same for a toggle period of two ticks
	for i := range seq {
		seq[i] = i%4 < 2
	}
	test.ExpectEquality(t, countPulses(cn, seq), 0)
	test.ExpectEquality(t, cn.Stable(), false)
}

func TestBounceThenSettle(t *testing.T) {
	cn := conditioner.NewConditioner(5)

	// a noisy leading edge followed by a long stable period produces exactly
	// one pulse
	seq := []bool{true, false, true, true, false, false, true, false}
	seq = append(seq, hold(true, 50)...)
	test.ExpectEquality(t, countPulses(cn, seq), 1)
	test.ExpectEquality(t, cn.Stable(), true)
}

func TestFallingEdgeNoPulse(t *testing.T) {
	cn := conditioner.NewConditioner(3)

	test.DemandEquality(t, countPulses(cn, hold(true, 20)), 1)

	// the falling transition updates the stable value but produces no pulse
	test.ExpectEquality(t, countPulses(cn, hold(false, 20)), 0)
	test.ExpectEquality(t, cn.Stable(), false)

	// a second rising transition produces a second pulse
	test.ExpectEquality(t, countPulses(cn, hold(true, 20)), 1)
}

func TestZeroThreshold(t *testing.T) {
	// a threshold of zero degenerates to an immediate pass-through edge
	// detector: two ticks of synchroniser, commit on the first disagreement,
	// one tick of edge register
	cn := conditioner.NewConditioner(0)

	cn.Step(true)
	test.ExpectEquality(t, cn.Pulse(), false)
	cn.Step(true)
	test.ExpectEquality(t, cn.Pulse(), false)
	cn.Step(true)
	test.ExpectEquality(t, cn.Pulse(), false)
	test.ExpectEquality(t, cn.Stable(), true)
	cn.Step(true)
	test.ExpectEquality(t, cn.Pulse(), true)
	cn.Step(true)
	test.ExpectEquality(t, cn.Pulse(), false)
}

func TestReset(t *testing.T) {
	cn := conditioner.NewConditioner(3)
	test.DemandEquality(t, countPulses(cn, hold(true, 20)), 1)
	test.DemandEquality(t, cn.Stable(), true)

	cn.Reset()
	test.ExpectEquality(t, cn.Stable(), false)
	test.ExpectEquality(t, cn.Pulse(), false)

	// after a reset with the input still high the conditioner behaves as it
	// would from power-on: exactly one new pulse
	test.ExpectEquality(t, countPulses(cn, hold(true, 20)), 1)
}
