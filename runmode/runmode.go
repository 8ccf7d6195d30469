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

// Package runmode runs the simulation with the SDL front panel attached.
// The space bar drives the external interrupt line. In demo mode a
// background bus master exercises the registers so there is something to
// look at.
package runmode

import (
	"os"

	"github.com/hexforge/periphsim/gui"
	"github.com/hexforge/periphsim/gui/sdlpanel"
	"github.com/hexforge/periphsim/hardware"
	"github.com/hexforge/periphsim/hardware/bus"
	"github.com/hexforge/periphsim/logger"
)

// number of ticks simulated between calls to the front-end's Service()
// function. the panel latches the display scan so the exact value is not
// critical, it only needs to cover at least one full scan per frame.
const ticksPerFrame = 5000

// Options for the Run() function.
type Options struct {
	Scale    float32
	Debounce int
	Refresh  int
	Dimmer   bool
	Duty     uint8
	Demo     bool
}

// Run the simulation with the SDL front panel until the user closes the
// window.
func Run(opts Options) error {
	ph := hardware.NewPeriph(opts.Debounce, opts.Refresh)
	ph.LEDs.SetDimmer(opts.Dimmer, opts.Duty)

	pnl, events, err := sdlpanel.NewPanel(opts.Scale)
	if err != nil {
		return err
	}
	defer pnl.Destroy(os.Stderr)

	err = pnl.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	logger.Log("runmode", "simulation started")

	// demo state: a counter displayed on the digits and walked across the
	// LEDs
	var demoCount uint16
	var demoWait int

	for {
		for i := 0; i < ticksPerFrame; i++ {
			ph.Step()
			pnl.Update(ph.LEDs.Output(), ph.Display.Segments(), ph.Display.DigitSelect())
		}

		if opts.Demo {
			demoWait++
			if demoWait >= 30 {
				demoWait = 0
				demoCount++
				if err := ph.Poke(bus.AddrData, uint32(demoCount), 0x03); err != nil {
					return err
				}
				if err := ph.Poke(bus.AddrControl, uint32(1<<(demoCount%4)), 0x01); err != nil {
					return err
				}
			}
		}

		pnl.Service()

		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case gui.EventQuit:
				logger.Log("runmode", "simulation ended")
				return nil
			case gui.EventButton:
				ph.IRQLine = ev.Held
			}
		default:
		}
	}
}
