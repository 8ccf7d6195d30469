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

// Package busadapter implements the slave side of the split-transaction
// register bus. It normalises the independent, possibly out-of-order arrival
// of the write address and write data into a single atomic register file
// write, and re-presents the register file's one-tick read latency as a
// bus-compliant response.
//
// Transactions are strictly serialised. The ready signal of a request
// channel is deasserted as soon as its half of a transaction is captured and
// is not reasserted until the response for that transaction has been
// accepted by the master. There is no pipelining and no reordering.
//
// The response status is always OKAY. The protocol defines error statuses
// but the adapter never produces them: the whole four-register space is
// treated as valid and a read of an unmapped address returns the sentinel
// value rather than a decode error. This mirrors the behaviour of the
// hardware this simulation models and should not be "fixed".
package busadapter

import (
	"fmt"

	"github.com/hexforge/periphsim/hardware/bus"
	"github.com/hexforge/periphsim/hardware/regfile"
)

// Adapter is the synchronous state machine connecting the bus to the
// register file. The write and read sides are independent state machines
// stepped together.
type Adapter struct {
	bus *bus.Bus
	rf  *regfile.RegFile

	// write side: state and the captured transaction. the captured values
	// are meaningful only while a write is in flight
	wstate  WriteState
	waddr   uint32
	wdata   uint32
	wstrobe uint8

	// read side: state and the captured address
	rstate ReadState
	raddr  uint32
}

// NewAdapter is the preferred method of initialisation for the Adapter type.
func NewAdapter(b *bus.Bus, rf *regfile.RegFile) *Adapter {
	ad := &Adapter{bus: b, rf: rf}
	ad.Reset()
	return ad
}

// Reset both state machines to idle and advertise readiness on all request
// channels. Any in-flight transaction is discarded.
func (ad *Adapter) Reset() {
	ad.wstate = WriteIdle
	ad.rstate = ReadIdle

	ad.bus.WriteAddr.Ready = true
	ad.bus.WriteData.Ready = true
	ad.bus.ReadAddr.Ready = true
	ad.bus.WriteResp.Valid = false
	ad.bus.ReadData.Valid = false
}

func (ad *Adapter) String() string {
	return fmt.Sprintf("write=%s read=%s", ad.wstate, ad.rstate)
}

// WriteState returns the current state of the write side state machine.
func (ad *Adapter) WriteState() WriteState {
	return ad.wstate
}

// ReadState returns the current state of the read side state machine.
func (ad *Adapter) ReadState() ReadState {
	return ad.rstate
}

// Step the adapter forward one tick. The master's valid/ready signals are
// sampled against the ready/valid signals the adapter advertised at the end
// of the previous tick.
func (ad *Adapter) Step() {
	ad.stepWrite()
	ad.stepRead()
}

func (ad *Adapter) stepWrite() {
	b := ad.bus

	// a channel transfer is accepted when valid and ready coincide. the
	// state machine only ever sees handshakes it declared ready for
	addrHS := b.WriteAddr.Valid && b.WriteAddr.Ready
	dataHS := b.WriteData.Valid && b.WriteData.Ready

	switch ad.wstate {
	case WriteIdle:
		if addrHS {
			ad.waddr = b.WriteAddr.Addr
			b.WriteAddr.Ready = false
		}
		if dataHS {
			ad.wdata = b.WriteData.Data
			ad.wstrobe = b.WriteData.Strobe
			b.WriteData.Ready = false
		}
		switch {
		case addrHS && dataHS:
			ad.wstate = WriteCommit
		case addrHS:
			ad.wstate = WriteAddrOnly
		case dataHS:
			ad.wstate = WriteDataOnly
		}

	case WriteAddrOnly:
		if dataHS {
			ad.wdata = b.WriteData.Data
			ad.wstrobe = b.WriteData.Strobe
			b.WriteData.Ready = false
			ad.wstate = WriteCommit
		}

	case WriteDataOnly:
		if addrHS {
			ad.waddr = b.WriteAddr.Addr
			b.WriteAddr.Ready = false
			ad.wstate = WriteCommit
		}

	case WriteCommit:
		// exactly one register file write per transaction, issued only once
		// both halves are known
		ad.rf.Write(ad.waddr, ad.wdata, ad.wstrobe)
		b.WriteResp.Valid = true
		b.WriteResp.Resp = bus.RespOKAY
		ad.wstate = WriteResponse

	case WriteResponse:
		if b.WriteResp.Ready {
			b.WriteResp.Valid = false
			b.WriteAddr.Ready = true
			b.WriteData.Ready = true
			ad.wstate = WriteIdle
		}
	}
}

func (ad *Adapter) stepRead() {
	b := ad.bus

	switch ad.rstate {
	case ReadIdle:
		if b.ReadAddr.Valid && b.ReadAddr.Ready {
			ad.raddr = b.ReadAddr.Addr
			b.ReadAddr.Ready = false
			ad.rf.Read(ad.raddr)
			ad.rstate = ReadPending
		}

	case ReadPending:
		if data, ok := ad.rf.ReadData(); ok {
			b.ReadData.Valid = true
			b.ReadData.Data = data
			b.ReadData.Resp = bus.RespOKAY
			ad.rstate = ReadResponse
		}

	case ReadResponse:
		if b.ReadData.Ready {
			b.ReadData.Valid = false
			b.ReadAddr.Ready = true
			ad.rstate = ReadIdle
		}
	}
}
