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
	"github.com/hexforge/periphsim/hardware"
	"github.com/hexforge/periphsim/hardware/bus"
)

// exerciser drives the master side of the bus during a performance
// measurement. writes and reads are issued back to back so the bus adapter
// and register file never idle.
type exerciser struct {
	ph *hardware.Periph

	// false means the next transaction is a read
	writing bool

	// rolling value written to the data register
	value uint32

	// whether a transaction is currently in flight
	busy bool

	// handshakes sampled before the most recent tick. the step() function
	// runs between ticks so completions are applied one call later, the same
	// way Poke() and Peek() sample before stepping
	addrHS bool
	dataHS bool
	lastHS bool
}

func newExerciser(ph *hardware.Periph) *exerciser {
	return &exerciser{ph: ph}
}

// step is called once per tick, after the simulation has stepped.
func (exer *exerciser) step() {
	b := exer.ph.Bus

	// apply the handshakes that the tick just gone will have consumed
	if exer.busy {
		if exer.writing {
			if exer.addrHS {
				b.WriteAddr.Valid = false
			}
			if exer.dataHS {
				b.WriteData.Valid = false
			}
			if exer.lastHS {
				b.WriteResp.Ready = false
				exer.busy = false
				exer.writing = false
			}
		} else {
			if exer.addrHS {
				b.ReadAddr.Valid = false
			}
			if exer.lastHS {
				b.ReadData.Ready = false
				exer.busy = false
				exer.writing = true
			}
		}
	}

	// present the next transaction
	if !exer.busy {
		if exer.writing {
			exer.value++
			b.WriteAddr.Valid = true
			b.WriteAddr.Addr = bus.AddrData
			b.WriteData.Valid = true
			b.WriteData.Data = exer.value
			b.WriteData.Strobe = 0x0f
			b.WriteResp.Ready = true
		} else {
			b.ReadAddr.Valid = true
			b.ReadAddr.Addr = bus.AddrData
			b.ReadData.Ready = true
		}
		exer.busy = true
	}

	// sample handshakes for the upcoming tick
	if exer.writing {
		exer.addrHS = b.WriteAddr.Valid && b.WriteAddr.Ready
		exer.dataHS = b.WriteData.Valid && b.WriteData.Ready
		exer.lastHS = b.WriteResp.Valid && b.WriteResp.Ready
	} else {
		exer.addrHS = b.ReadAddr.Valid && b.ReadAddr.Ready
		exer.lastHS = b.ReadData.Valid && b.ReadData.Ready
	}
}
