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

package conditioner

import "fmt"

// Conditioner turns an asynchronous external input into a clean single-tick
// pulse. The raw input is double-registered to attenuate metastability,
// debounced against a persistence threshold and finally edge-detected. The
// Pulse() output is asserted for exactly one tick on each rising transition
// of the debounced value.
type Conditioner struct {
	// the debounce threshold. the number of consecutive ticks the
	// synchronised input must disagree with the stable value before the
	// stable value is updated. a threshold of zero (or one) degenerates to
	// an immediate pass-through edge detector
	threshold int

	// two-stage synchroniser. sync[1] is the only version of the raw input
	// used downstream
	sync [2]bool

	// debounced value and the count of consecutive ticks of disagreement.
	// count is reset whenever the synchronised input agrees with stable, so
	// it can never exceed threshold
	stable bool
	count  int

	// one-tick delayed copy of stable, for edge detection
	delay bool

	// registered output pulse
	pulse bool
}

// NewConditioner is the preferred method of initialisation for the
// Conditioner type. The threshold argument is measured in ticks; a value
// derived from the clock frequency and a debounce time is typical.
func NewConditioner(threshold int) *Conditioner {
	if threshold < 0 {
		threshold = 0
	}
	cn := &Conditioner{threshold: threshold}
	cn.Reset()
	return cn
}

// Reset the conditioner to its power-on state. All pipeline stages are
// zeroed.
func (cn *Conditioner) Reset() {
	cn.sync[0] = false
	cn.sync[1] = false
	cn.stable = false
	cn.count = 0
	cn.delay = false
	cn.pulse = false
}

func (cn *Conditioner) String() string {
	return fmt.Sprintf("sync=%v stable=%v count=%d/%d pulse=%v",
		cn.sync[1], cn.stable, cn.count, cn.threshold, cn.pulse)
}

// Step the conditioner forward one tick, sampling the raw input. All stages
// update from the previous tick's values, as they would on a clock edge.
func (cn *Conditioner) Step(raw bool) {
	// the edge condition compares the stable value with its delayed copy,
	// both from the previous tick
	newPulse := cn.stable && !cn.delay
	newDelay := cn.stable

	// debounce against the synchronised input
	newStable := cn.stable
	newCount := cn.count
	if cn.sync[1] == cn.stable {
		newCount = 0
	} else {
		newCount++
		if newCount >= cn.threshold {
			newStable = cn.sync[1]
			newCount = 0
		}
	}

	// advance the synchroniser
	cn.sync[1] = cn.sync[0]
	cn.sync[0] = raw

	cn.stable = newStable
	cn.count = newCount
	cn.delay = newDelay
	cn.pulse = newPulse
}

// Pulse is asserted for exactly one tick on a rising transition of the
// debounced value. A sustained high input does not re-trigger: the input
// must fall and rise again, through the debounce filter, for another pulse.
func (cn *Conditioner) Pulse() bool {
	return cn.pulse
}

// Stable returns the debounced value of the input.
func (cn *Conditioner) Stable() bool {
	return cn.stable
}
