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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/hexforge/periphsim/curated"
	"github.com/hexforge/periphsim/hardware"
)

// sentinel error used to stop the Run() loop when the measurement period
// has elapsed.
const timedOut = "performance timed out"

// how often the run loop checks whether the measurement period has elapsed.
// checking a channel on every tick is measurably expensive.
const brake = 4096

// Check the performance of the simulation. The simulation is run flat out
// for the specified duration and the achieved tick rate is reported,
// alongside how that compares to the clock of the real hardware.
//
// A cpu and/or memory profile is created as requested by the Profile
// argument. The simulated bus is exercised throughout the measurement with a
// rolling sequence of register writes and reads, meaning every component is
// doing real work rather than idling.
func Check(output io.Writer, profile Profile, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ph := hardware.NewPeriph(3, 1000)
	ph.LEDs.SetDimmer(true, 128)

	// timerChan signals the end of the measurement period
	timerChan := make(chan bool)

	runner := func() error {
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		// exercise the bus as well as the free-running components. a write
		// or read is started whenever the previous one has retired.
		exer := newExerciser(ph)

		performanceBrake := 0

		return ph.Run(func() (bool, error) {
			exer.step()

			performanceBrake++
			if performanceBrake >= brake {
				performanceBrake = 0
				select {
				case <-timerChan:
					return false, curated.Errorf(timedOut)
				default:
				}
			}

			return true, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	rate := float64(ph.TickCount) / dur.Seconds()
	ratio := rate / float64(hardware.ClockHz) * 100

	output.Write([]byte(fmt.Sprintf("%.0f ticks/sec (%d ticks in %.2f seconds) %.1f%% of a %dMHz clock\n",
		rate, ph.TickCount, dur.Seconds(), ratio, hardware.ClockHz/1000000)))

	return nil
}
