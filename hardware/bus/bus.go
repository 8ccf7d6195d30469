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

package bus

import "fmt"

// Resp is the response status carried by the write-response and read-data
// channels.
type Resp uint8

// List of valid Resp values. RespSlaveErr and RespDecodeErr are part of the
// protocol but are never produced by the adapter: every mapped address is
// treated as valid and out-of-range reads return the Sentinel value with
// RespOKAY. See the commentary in the busadapter package.
const (
	RespOKAY      Resp = 0b00
	RespSlaveErr  Resp = 0b10
	RespDecodeErr Resp = 0b11
)

func (r Resp) String() string {
	switch r {
	case RespOKAY:
		return "OKAY"
	case RespSlaveErr:
		return "SLVERR"
	case RespDecodeErr:
		return "DECERR"
	}
	return fmt.Sprintf("Resp(%#02b)", uint8(r))
}

// WriteAddrChannel carries the address half of a write transaction. Valid is
// driven by the master and Ready by the adapter. The transfer is accepted on
// the tick in which both are asserted.
type WriteAddrChannel struct {
	Valid bool
	Ready bool
	Addr  uint32
}

// WriteDataChannel carries the data half of a write transaction, along with
// the byte strobes. A strobe bit enables the write of the corresponding byte
// lane of the addressed register.
type WriteDataChannel struct {
	Valid  bool
	Ready  bool
	Data   uint32
	Strobe uint8
}

// WriteRespChannel carries the write response back to the master. Valid is
// driven by the adapter and Ready by the master.
type WriteRespChannel struct {
	Valid bool
	Ready bool
	Resp  Resp
}

// ReadAddrChannel carries the address of a read transaction.
type ReadAddrChannel struct {
	Valid bool
	Ready bool
	Addr  uint32
}

// ReadDataChannel carries the read data and response status back to the
// master.
type ReadDataChannel struct {
	Valid bool
	Ready bool
	Data  uint32
	Resp  Resp
}

// Bus collects the five channels of the split-transaction bus. The master
// drives the Valid/payload fields of the request channels and the Ready
// fields of the response channels. The adapter drives everything else.
//
// There is no arbitration. The bus supports exactly one master.
type Bus struct {
	WriteAddr WriteAddrChannel
	WriteData WriteDataChannel
	WriteResp WriteRespChannel
	ReadAddr  ReadAddrChannel
	ReadData  ReadDataChannel
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{}
}
