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

package busadapter_test

import (
	"testing"

	"github.com/hexforge/periphsim/hardware/bus"
	"github.com/hexforge/periphsim/hardware/busadapter"
	"github.com/hexforge/periphsim/hardware/regfile"
	"github.com/hexforge/periphsim/test"
)

// bench is a minimal testbench: the adapter and register file stepped in the
// order the full peripheral steps them.
type bench struct {
	bus *bus.Bus
	rf  *regfile.RegFile
	ad  *busadapter.Adapter
}

func newBench() *bench {
	b := &bench{
		bus: bus.NewBus(),
		rf:  regfile.NewRegFile(),
	}
	b.ad = busadapter.NewAdapter(b.bus, b.rf)
	return b
}

// tick advances the testbench one tick. like the real peripheral, the
// adapter steps before the register file.
func (b *bench) tick() {
	b.ad.Step()
	b.rf.Step()
}

// presentWrite drives the master's write signals. acceptance of each half is
// tracked and the valid signal deasserted, as a real master would.
func (b *bench) presentAddr(addr uint32) {
	b.bus.WriteAddr.Valid = true
	b.bus.WriteAddr.Addr = addr
}

func (b *bench) presentData(data uint32, strobe uint8) {
	b.bus.WriteData.Valid = true
	b.bus.WriteData.Data = data
	b.bus.WriteData.Strobe = strobe
}

// retire deasserts master valids for any half accepted on the next tick.
// call before tick().
func (b *bench) retire() (addrHS bool, dataHS bool) {
	addrHS = b.bus.WriteAddr.Valid && b.bus.WriteAddr.Ready
	dataHS = b.bus.WriteData.Valid && b.bus.WriteData.Ready
	b.tick()
	if addrHS {
		b.bus.WriteAddr.Valid = false
	}
	if dataHS {
		b.bus.WriteData.Valid = false
	}
	return addrHS, dataHS
}

func TestWriteSimultaneous(t *testing.T) {
	b := newBench()
	b.bus.WriteResp.Ready = true

	b.presentAddr(bus.AddrScratch)
	b.presentData(0x12345678, 0x0f)

	// both halves accepted in the same tick. straight to BOTH_CAPTURED
	addrHS, dataHS := b.retire()
	test.ExpectSuccess(t, addrHS)
	test.ExpectSuccess(t, dataHS)
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteCommit)

	// the register write is issued and the response raised
	b.tick()
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteResponse)
	test.ExpectEquality(t, b.bus.WriteResp.Valid, true)
	test.ExpectEquality(t, b.bus.WriteResp.Resp, bus.RespOKAY)

	// the master is ready so the response retires and the adapter returns to
	// idle
	b.tick()
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteIdle)
	test.ExpectEquality(t, b.bus.WriteResp.Valid, false)

	_, v := b.rf.Peek(3)
	test.ExpectEquality(t, v, uint32(0x12345678))
}

func TestWriteAddressFirst(t *testing.T) {
	b := newBench()
	b.bus.WriteResp.Ready = true

	b.presentAddr(bus.AddrScratch)
	addrHS, dataHS := b.retire()
	test.ExpectSuccess(t, addrHS)
	test.ExpectFailure(t, dataHS)
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteAddrOnly)

	// address channel no longer ready, data channel still is
	test.ExpectEquality(t, b.bus.WriteAddr.Ready, false)
	test.ExpectEquality(t, b.bus.WriteData.Ready, true)

	// a few ticks of waiting changes nothing
	for i := 0; i < 3; i++ {
		b.tick()
		test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteAddrOnly)
	}

	// the late-arriving data half completes the capture
	b.presentData(0x000000aa, 0x01)
	_, dataHS = b.retire()
	test.ExpectSuccess(t, dataHS)
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteCommit)

	// one tick to RESPONDING, exactly as in the simultaneous case
	b.tick()
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteResponse)

	b.tick()
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteIdle)

	_, v := b.rf.Peek(3)
	test.ExpectEquality(t, v, uint32(0x000000aa))
}

func TestWriteDataFirst(t *testing.T) {
	b := newBench()
	b.bus.WriteResp.Ready = true

	b.presentData(0x000000bb, 0x01)
	addrHS, dataHS := b.retire()
	test.ExpectFailure(t, addrHS)
	test.ExpectSuccess(t, dataHS)
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteDataOnly)
	test.ExpectEquality(t, b.bus.WriteData.Ready, false)
	test.ExpectEquality(t, b.bus.WriteAddr.Ready, true)

	b.presentAddr(bus.AddrControl)
	addrHS, _ = b.retire()
	test.ExpectSuccess(t, addrHS)
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteCommit)

	b.tick()
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteResponse)

	b.tick()
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteIdle)

	test.ExpectEquality(t, b.rf.Control(), uint32(0x000000bb))
}

func TestWriteResponseHeld(t *testing.T) {
	b := newBench()

	// master not ready for the response
	b.bus.WriteResp.Ready = false

	b.presentAddr(bus.AddrScratch)
	b.presentData(0x00000001, 0x0f)
	b.retire()
	b.tick()
	test.DemandEquality(t, b.ad.WriteState(), busadapter.WriteResponse)

	// the response is held valid indefinitely. the request channels stay
	// closed so no new transaction can begin
	for i := 0; i < 10; i++ {
		b.tick()
		test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteResponse)
		test.ExpectEquality(t, b.bus.WriteResp.Valid, true)
		test.ExpectEquality(t, b.bus.WriteAddr.Ready, false)
		test.ExpectEquality(t, b.bus.WriteData.Ready, false)
	}

	// only one register write was issued for the transaction
	_, v := b.rf.Peek(3)
	test.ExpectEquality(t, v, uint32(0x00000001))

	b.bus.WriteResp.Ready = true
	b.tick()
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteIdle)
	test.ExpectEquality(t, b.bus.WriteAddr.Ready, true)
	test.ExpectEquality(t, b.bus.WriteData.Ready, true)
}

func TestRead(t *testing.T) {
	b := newBench()
	b.bus.WriteResp.Ready = true
	b.bus.ReadData.Ready = true

	// place a known value in the scratch register
	b.presentAddr(bus.AddrScratch)
	b.presentData(0xdeadbea7, 0x0f)
	b.retire()
	b.tick()
	b.tick()
	test.DemandEquality(t, b.ad.WriteState(), busadapter.WriteIdle)

	// present the read address
	b.bus.ReadAddr.Valid = true
	b.bus.ReadAddr.Addr = bus.AddrScratch

	b.tick()
	b.bus.ReadAddr.Valid = false
	test.ExpectEquality(t, b.ad.ReadState(), busadapter.ReadPending)
	test.ExpectEquality(t, b.bus.ReadAddr.Ready, false)

	// the register file's one-tick latency is absorbed by the ADDR_CAPTURED
	// state
	b.tick()
	test.ExpectEquality(t, b.ad.ReadState(), busadapter.ReadResponse)
	test.ExpectEquality(t, b.bus.ReadData.Valid, true)
	test.ExpectEquality(t, b.bus.ReadData.Data, uint32(0xdeadbea7))
	test.ExpectEquality(t, b.bus.ReadData.Resp, bus.RespOKAY)

	b.tick()
	test.ExpectEquality(t, b.ad.ReadState(), busadapter.ReadIdle)
	test.ExpectEquality(t, b.bus.ReadData.Valid, false)
	test.ExpectEquality(t, b.bus.ReadAddr.Ready, true)
}

func TestReadResponseHeld(t *testing.T) {
	b := newBench()
	b.bus.ReadData.Ready = false

	b.bus.ReadAddr.Valid = true
	b.bus.ReadAddr.Addr = bus.AddrControl
	b.tick()
	b.bus.ReadAddr.Valid = false
	b.tick()
	test.DemandEquality(t, b.ad.ReadState(), busadapter.ReadResponse)

	// no new read is accepted until the current response is taken
	for i := 0; i < 10; i++ {
		b.tick()
		test.ExpectEquality(t, b.ad.ReadState(), busadapter.ReadResponse)
		test.ExpectEquality(t, b.bus.ReadData.Valid, true)
		test.ExpectEquality(t, b.bus.ReadAddr.Ready, false)
	}

	b.bus.ReadData.Ready = true
	b.tick()
	test.ExpectEquality(t, b.ad.ReadState(), busadapter.ReadIdle)
}

func TestReadOutOfRange(t *testing.T) {
	b := newBench()
	b.bus.ReadData.Ready = true

	b.bus.ReadAddr.Valid = true
	b.bus.ReadAddr.Addr = 0x40
	b.tick()
	b.bus.ReadAddr.Valid = false
	b.tick()

	// the sentinel is returned with a success status. there is no
	// decode-error path
	test.ExpectEquality(t, b.bus.ReadData.Valid, true)
	test.ExpectEquality(t, b.bus.ReadData.Data, bus.Sentinel)
	test.ExpectEquality(t, b.bus.ReadData.Resp, bus.RespOKAY)
}

func TestConcurrentReadAndWrite(t *testing.T) {
	b := newBench()
	b.bus.WriteResp.Ready = true
	b.bus.ReadData.Ready = true

	// the write and read sides are independent: a read of CONTROL can
	// proceed while a write to SCRATCH is waiting on its data half
	b.presentAddr(bus.AddrScratch)
	b.retire()
	test.DemandEquality(t, b.ad.WriteState(), busadapter.WriteAddrOnly)

	b.bus.ReadAddr.Valid = true
	b.bus.ReadAddr.Addr = bus.AddrControl
	b.tick()
	b.bus.ReadAddr.Valid = false
	b.tick()
	test.ExpectEquality(t, b.bus.ReadData.Valid, true)
	test.ExpectEquality(t, b.bus.ReadData.Data, uint32(0))
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteAddrOnly)
}

func TestAdapterReset(t *testing.T) {
	b := newBench()
	b.bus.WriteResp.Ready = false

	b.presentAddr(bus.AddrScratch)
	b.retire()
	test.DemandEquality(t, b.ad.WriteState(), busadapter.WriteAddrOnly)

	// reset discards the in-flight transaction and reopens all channels
	b.ad.Reset()
	test.ExpectEquality(t, b.ad.WriteState(), busadapter.WriteIdle)
	test.ExpectEquality(t, b.ad.ReadState(), busadapter.ReadIdle)
	test.ExpectEquality(t, b.bus.WriteAddr.Ready, true)
	test.ExpectEquality(t, b.bus.WriteData.Ready, true)
	test.ExpectEquality(t, b.bus.ReadAddr.Ready, true)
}
