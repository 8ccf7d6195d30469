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

package hardware_test

import (
	"testing"

	"github.com/hexforge/periphsim/hardware"
	"github.com/hexforge/periphsim/hardware/bus"
	"github.com/hexforge/periphsim/hardware/sevenseg"
	"github.com/hexforge/periphsim/test"
)

func peek(t *testing.T, ph *hardware.Periph, addr uint32) uint32 {
	t.Helper()
	v, err := ph.Peek(addr)
	test.DemandSuccess(t, err)
	return v
}

func poke(t *testing.T, ph *hardware.Periph, addr uint32, data uint32, strobe uint8) {
	t.Helper()
	test.DemandSuccess(t, ph.Poke(addr, data, strobe))
}

// settle steps the simulation with the interrupt line in the given state for
// long enough for the conditioner to pass it through.
func settle(ph *hardware.Periph, irq bool, ticks int) {
	ph.IRQLine = irq
	for i := 0; i < ticks; i++ {
		ph.Step()
	}
}

// the golden path scenario: reset, write control, raise interrupt, clear
// interrupt.
func TestScenario(t *testing.T) {
	ph := hardware.NewPeriph(3, 1)
	ph.Reset()

	// all registers read as zero and the interrupt output is low
	for _, addr := range []uint32{bus.AddrControl, bus.AddrData, bus.AddrStatus, bus.AddrScratch} {
		test.ExpectEquality(t, peek(t, ph, addr), uint32(0))
	}
	test.ExpectEquality(t, ph.RegFile.InterruptOutput(), false)

	// a full-strobe write to CONTROL reads back exactly
	poke(t, ph, bus.AddrControl, 0x00000005, 0x0f)
	test.ExpectEquality(t, peek(t, ph, bus.AddrControl), uint32(0x00000005))
	test.ExpectEquality(t, ph.LEDs.Output(), uint8(0x05))

	// press the button. the interrupt flag sets and the interrupt output
	// goes high
	settle(ph, true, 20)
	test.ExpectEquality(t, peek(t, ph, bus.AddrStatus), uint32(0x00000001))
	test.ExpectEquality(t, ph.RegFile.InterruptOutput(), true)

	// write-1-to-clear drops the flag and the interrupt output
	poke(t, ph, bus.AddrStatus, 0x00000001, 0x01)
	test.ExpectEquality(t, peek(t, ph, bus.AddrStatus), uint32(0))
	test.ExpectEquality(t, ph.RegFile.InterruptOutput(), false)
}

func TestInterruptNoRetriggerWhileHeld(t *testing.T) {
	ph := hardware.NewPeriph(3, 1)

	settle(ph, true, 20)
	test.DemandEquality(t, ph.RegFile.InterruptOutput(), true)

	// clearing the flag while the button is still held does not re-raise it:
	// the conditioner only pulses on a rising edge
	poke(t, ph, bus.AddrStatus, 0x00000001, 0x01)
	settle(ph, true, 100)
	test.ExpectEquality(t, ph.RegFile.InterruptOutput(), false)

	// release and press again for a second interrupt
	settle(ph, false, 20)
	settle(ph, true, 20)
	test.ExpectEquality(t, ph.RegFile.InterruptOutput(), true)
}

func TestDisplayFollowsDataRegister(t *testing.T) {
	ph := hardware.NewPeriph(0, 1)

	poke(t, ph, bus.AddrData, 0x0000cafe, 0x03)

	// step through a full scan and check each digit
	expected := []uint8{0x0e, 0x0f, 0x0a, 0x0c}
	seen := make(map[uint8]uint8)
	for i := 0; i < sevenseg.NumDigits; i++ {
		ph.Step()
		seen[ph.Display.DigitSelect()] = ph.Display.Segments()
	}
	for digit := 0; digit < sevenseg.NumDigits; digit++ {
		test.ExpectEquality(t, seen[1<<digit], sevenseg.SegmentPattern(expected[digit]))
	}
}

func TestSentinelOverBus(t *testing.T) {
	ph := hardware.NewPeriph(0, 1)

	test.ExpectEquality(t, peek(t, ph, 0x00000040), bus.Sentinel)
	test.ExpectEquality(t, ph.Bus.ReadData.Resp, bus.RespOKAY)
}

func TestResetMidTransaction(t *testing.T) {
	ph := hardware.NewPeriph(0, 1)

	// half-present a write then reset. the captured half is discarded and a
	// fresh transaction works as normal
	ph.Bus.WriteAddr.Valid = true
	ph.Bus.WriteAddr.Addr = bus.AddrScratch
	ph.Step()
	ph.Bus.WriteAddr.Valid = false

	ph.Reset()
	test.ExpectEquality(t, ph.TickCount, uint64(0))

	poke(t, ph, bus.AddrScratch, 0x00c0ffee, 0x0f)
	test.ExpectEquality(t, peek(t, ph, bus.AddrScratch), uint32(0x00c0ffee))
}

func TestRunCallback(t *testing.T) {
	ph := hardware.NewPeriph(0, 1)

	ticks := 0
	err := ph.Run(func() (bool, error) {
		ticks++
		return ticks < 100, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ticks, 100)
	test.ExpectEquality(t, ph.TickCount, uint64(100))
}
