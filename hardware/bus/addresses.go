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

// The register map exposed by the peripheral. All registers are 32 bits wide
// at word-aligned offsets.
//
//	CONTROL  all bits writable, low 4 bits drive the LED stage
//	DATA     all bits writable, low 16 bits drive the display stage
//	STATUS   bit 0 is the interrupt flag. set by hardware, cleared by a
//	         software write of 1 (write-1-to-clear). all other bits ignore
//	         writes
//	SCRATCH  plain read/write storage with no external effect
const (
	AddrControl uint32 = 0x00
	AddrData    uint32 = 0x04
	AddrStatus  uint32 = 0x08
	AddrScratch uint32 = 0x0c
)

// InterruptFlag is the position of the interrupt flag in the STATUS register.
const InterruptFlag uint32 = 0x00000001

// Sentinel is returned for a read of an unmapped address. The upper half is
// all-set with a fixed pattern in the lower half, making it readily
// distinguishable from any register reset value. Note that the accompanying
// response status is still RespOKAY: there is no decode-error path.
const Sentinel uint32 = 0xffffdead
