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

package hardware

import (
	"fmt"

	"github.com/hexforge/periphsim/curated"
	"github.com/hexforge/periphsim/hardware/bus"
	"github.com/hexforge/periphsim/hardware/busadapter"
	"github.com/hexforge/periphsim/hardware/conditioner"
	"github.com/hexforge/periphsim/hardware/led"
	"github.com/hexforge/periphsim/hardware/regfile"
	"github.com/hexforge/periphsim/hardware/sevenseg"
)

// ClockHz is the nominal clock frequency of the hardware being simulated.
// The simulation itself runs as fast as it can; the constant is used to
// derive debounce and refresh parameters and for performance reporting.
const ClockHz = 50000000

// transactionDeadline is the number of ticks Poke() and Peek() will wait for
// a response before giving up. The adapter always responds within a handful
// of ticks so running out is a simulation bug, not a protocol condition.
const transactionDeadline = 100

// Periph is the main container for the simulated components of the
// peripheral.
type Periph struct {
	Bus     *bus.Bus
	Adapter *busadapter.Adapter
	RegFile *regfile.RegFile
	Cond    *conditioner.Conditioner
	LEDs    *led.LEDs
	Display *sevenseg.Display

	// the raw external interrupt line. driven by whoever hosts the
	// simulation (the front panel GUI, the debugger, a test)
	IRQLine bool

	// number of ticks since power-on or the last Reset()
	TickCount uint64
}

// NewPeriph creates a new peripheral and everything associated with it. The
// debounce argument is the conditioner threshold in ticks; the refresh
// argument is the number of ticks each display digit is driven for.
func NewPeriph(debounce int, refresh int) *Periph {
	ph := &Periph{
		Bus:     bus.NewBus(),
		RegFile: regfile.NewRegFile(),
		Cond:    conditioner.NewConditioner(debounce),
		LEDs:    led.NewLEDs(),
		Display: sevenseg.NewDisplay(refresh),
	}
	ph.Adapter = busadapter.NewAdapter(ph.Bus, ph.RegFile)
	return ph
}

// Reset the peripheral. All registers are zeroed and all state machines
// return to their initial states, regardless of anything else happening in
// the simulation. The external interrupt line is left as it is, it belongs
// to the outside world.
func (ph *Periph) Reset() {
	ph.RegFile.Reset()
	ph.Adapter.Reset()
	ph.Cond.Reset()
	ph.LEDs.Reset()
	ph.Display.Reset()
	ph.TickCount = 0
}

func (ph *Periph) String() string {
	return fmt.Sprintf("%s\n%s\nconditioner: %s\nleds: %s\ndisplay: %s",
		ph.RegFile, ph.Adapter, ph.Cond, ph.LEDs, ph.Display)
}

// Step the peripheral one tick. The conditioner is stepped first so that its
// pulse can be presented to the register file in the same tick; the adapter
// is stepped before the register file so that the register file resolves the
// adapter's requests in the tick they are made.
func (ph *Periph) Step() {
	ph.Cond.Step(ph.IRQLine)
	if ph.Cond.Pulse() {
		ph.RegFile.RaiseInterrupt()
	}

	ph.Adapter.Step()
	ph.RegFile.Step()

	ph.LEDs.Step(ph.RegFile.Control())
	ph.Display.Step(ph.RegFile.DisplayValue())

	ph.TickCount++
}

// Run the simulation until the continueCheck callback returns false. The
// callback is called once per tick.
func (ph *Periph) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		ph.Step()

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// Poke drives a complete write transaction from the master side of the bus,
// presenting address and data simultaneously, and steps the simulation until
// the response is accepted.
func (ph *Periph) Poke(addr uint32, data uint32, strobe uint8) error {
	b := ph.Bus

	b.WriteAddr.Valid = true
	b.WriteAddr.Addr = addr
	b.WriteData.Valid = true
	b.WriteData.Data = data
	b.WriteData.Strobe = strobe
	b.WriteResp.Ready = true

	for i := 0; i < transactionDeadline; i++ {
		addrHS := b.WriteAddr.Valid && b.WriteAddr.Ready
		dataHS := b.WriteData.Valid && b.WriteData.Ready
		respHS := b.WriteResp.Valid && b.WriteResp.Ready

		ph.Step()

		if addrHS {
			b.WriteAddr.Valid = false
		}
		if dataHS {
			b.WriteData.Valid = false
		}
		if respHS {
			b.WriteResp.Ready = false
			return nil
		}
	}

	return curated.Errorf("periph: write to %#08x did not complete", addr)
}

// Peek drives a complete read transaction from the master side of the bus
// and steps the simulation until the response is accepted, returning the
// read data.
func (ph *Periph) Peek(addr uint32) (uint32, error) {
	b := ph.Bus

	b.ReadAddr.Valid = true
	b.ReadAddr.Addr = addr
	b.ReadData.Ready = true

	for i := 0; i < transactionDeadline; i++ {
		addrHS := b.ReadAddr.Valid && b.ReadAddr.Ready
		dataHS := b.ReadData.Valid && b.ReadData.Ready
		data := b.ReadData.Data

		ph.Step()

		if addrHS {
			b.ReadAddr.Valid = false
		}
		if dataHS {
			b.ReadData.Ready = false
			return data, nil
		}
	}

	return 0, curated.Errorf("periph: read of %#08x did not complete", addr)
}
