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

package regfile

import (
	"fmt"
	"strings"

	"github.com/hexforge/periphsim/hardware/bus"
)

// NumRegisters in the register file.
const NumRegisters = 4

// register describes one entry in the register map: its offset, a name for
// logging and the effect a write request has on the stored value. address
// decode is therefore independent of the byte-mask logic, which lives
// entirely in the write functions.
type register struct {
	offset uint32
	name   string
	write  func(cur uint32, data uint32, strobe uint8) uint32
}

var registers = [NumRegisters]register{
	{offset: bus.AddrControl, name: "CONTROL", write: maskedWrite},
	{offset: bus.AddrData, name: "DATA", write: maskedWrite},
	{offset: bus.AddrStatus, name: "STATUS", write: statusWrite},
	{offset: bus.AddrScratch, name: "SCRATCH", write: maskedWrite},
}

// the index of the STATUS register in the registers table. the interrupt
// paths refer to it directly.
const statusIdx = 2

// maskedWrite replaces each byte lane of cur for which the corresponding
// strobe bit is set. Unstrobed lanes are untouched.
func maskedWrite(cur uint32, data uint32, strobe uint8) uint32 {
	for b := 0; b < 4; b++ {
		if strobe&(1<<b) != 0 {
			sh := b * 8
			cur = cur&^(0xff<<sh) | data&(0xff<<sh)
		}
	}
	return cur
}

// statusWrite implements the write-1-to-clear semantics of the STATUS
// register. Only the interrupt flag is writable and only a written 1 has any
// effect. Everything else about the write is ignored.
func statusWrite(cur uint32, data uint32, strobe uint8) uint32 {
	if strobe&0x01 != 0 && data&bus.InterruptFlag != 0 {
		cur &^= bus.InterruptFlag
	}
	return cur
}

// decode returns the registers table index for a bus address. The boolean
// return value is false if the address is not part of the register map.
func decode(addr uint32) (int, bool) {
	for i := range registers {
		if registers[i].offset == addr {
			return i, true
		}
	}
	return 0, false
}

// RegFile is the single point of mutation in the peripheral. It accepts at
// most one write request and one read request per tick, plus the hardware
// interrupt-set line. All requests made since the previous Step() are
// resolved by the next Step().
type RegFile struct {
	regs [NumRegisters]uint32

	// write request for the current tick
	wrEnable bool
	wrAddr   uint32
	wrData   uint32
	wrStrobe uint8

	// read request for the current tick
	rdEnable bool
	rdAddr   uint32

	// hardware interrupt-set for the current tick
	irqSet bool

	// read response. valid for exactly one tick after the tick in which the
	// read request was made
	rdData  uint32
	rdValid bool
}

// NewRegFile is the preferred method of initialisation for the RegFile type.
func NewRegFile() *RegFile {
	rf := &RegFile{}
	rf.Reset()
	return rf
}

// Reset the register file. All registers are zeroed and any in-flight
// requests and read responses are discarded.
func (rf *RegFile) Reset() {
	for i := range rf.regs {
		rf.regs[i] = 0
	}
	rf.wrEnable = false
	rf.rdEnable = false
	rf.irqSet = false
	rf.rdData = 0
	rf.rdValid = false
}

func (rf *RegFile) String() string {
	s := strings.Builder{}
	for i := range registers {
		s.WriteString(fmt.Sprintf("%s=%08x ", registers[i].name, rf.regs[i]))
	}
	return strings.TrimSpace(s.String())
}

// Write requests a register write for the current tick. An address outside
// the register map causes the write to be silently dropped.
func (rf *RegFile) Write(addr uint32, data uint32, strobe uint8) {
	rf.wrEnable = true
	rf.wrAddr = addr
	rf.wrData = data
	rf.wrStrobe = strobe
}

// Read requests a register read for the current tick. The result is
// presented by ReadData() for one tick following the next Step().
func (rf *RegFile) Read(addr uint32) {
	rf.rdEnable = true
	rf.rdAddr = addr
}

// RaiseInterrupt requests the hardware set of the interrupt flag for the
// current tick. The set wins over a software clear arriving in the same
// tick.
func (rf *RegFile) RaiseInterrupt() {
	rf.irqSet = true
}

// ReadData returns the data captured by the most recent read request. The
// boolean return value is true for exactly one tick.
func (rf *RegFile) ReadData() (uint32, bool) {
	return rf.rdData, rf.rdValid
}

// Step resolves the requests made since the previous Step. The read capture
// happens before the write is applied, so a read and a write of the same
// register in the same tick sees the pre-write value. The hardware
// interrupt-set is applied after the software write, giving the set priority
// over a simultaneous software clear.
func (rf *RegFile) Step() {
	rf.rdValid = false
	if rf.rdEnable {
		if i, ok := decode(rf.rdAddr); ok {
			rf.rdData = rf.regs[i]
		} else {
			rf.rdData = bus.Sentinel
		}
		rf.rdValid = true
	}

	if rf.wrEnable {
		if i, ok := decode(rf.wrAddr); ok {
			rf.regs[i] = registers[i].write(rf.regs[i], rf.wrData, rf.wrStrobe)
		}
	}

	if rf.irqSet {
		rf.regs[statusIdx] |= bus.InterruptFlag
	}

	rf.wrEnable = false
	rf.rdEnable = false
	rf.irqSet = false
}

// Control returns the current value of the CONTROL register. Only the low
// bits are consumed by the LED stage but the full register is returned.
func (rf *RegFile) Control() uint32 {
	return rf.regs[0]
}

// DisplayValue returns the low 16 bits of the DATA register, the four
// nibbles consumed by the display stage.
func (rf *RegFile) DisplayValue() uint16 {
	return uint16(rf.regs[1])
}

// InterruptOutput mirrors the interrupt flag of the STATUS register. It is a
// level, not a pulse: it remains asserted until the flag is cleared by
// software.
func (rf *RegFile) InterruptOutput() bool {
	return rf.regs[statusIdx]&bus.InterruptFlag != 0
}

// Peek returns the stored value at the numbered register index, bypassing
// the bus protocol. For debugging purposes only.
func (rf *RegFile) Peek(i int) (name string, value uint32) {
	return registers[i].name, rf.regs[i]
}
