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

package busadapter

// WriteState records which half(s) of the in-flight write transaction have
// been captured. Keeping the three arrival orders as explicit states, rather
// than a pair of booleans, makes each transition individually testable.
type WriteState int

// List of valid WriteState values.
const (
	// no write transaction in flight. both request channels are ready
	WriteIdle WriteState = iota

	// the address has been captured, waiting on the data channel
	WriteAddrOnly

	// the data has been captured, waiting on the address channel
	WriteDataOnly

	// both halves captured. the register write is issued from this state
	WriteCommit

	// the response is being held valid until the master accepts it
	WriteResponse
)

func (s WriteState) String() string {
	switch s {
	case WriteIdle:
		return "IDLE"
	case WriteAddrOnly:
		return "ADDR_ONLY"
	case WriteDataOnly:
		return "DATA_ONLY"
	case WriteCommit:
		return "BOTH_CAPTURED"
	case WriteResponse:
		return "RESPONDING"
	}
	panic("unknown write state")
}

// ReadState records the progress of the in-flight read transaction.
type ReadState int

// List of valid ReadState values.
const (
	// no read transaction in flight. the read address channel is ready
	ReadIdle ReadState = iota

	// the address has been captured and the register file read issued.
	// waiting on the register file's one-tick response latency
	ReadPending

	// the data is being held valid until the master accepts it
	ReadResponse
)

func (s ReadState) String() string {
	switch s {
	case ReadIdle:
		return "IDLE"
	case ReadPending:
		return "ADDR_CAPTURED"
	case ReadResponse:
		return "DATA_VALID"
	}
	panic("unknown read state")
}
