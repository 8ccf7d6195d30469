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

// Package hardware is the top level of the simulated peripheral. The Periph
// type assembles the bus, the protocol adapter, the register file, the input
// conditioner and the two output stages, and steps them in lockstep.
//
// The simulation is fully synchronous with a single clock domain. One call
// to Step() corresponds to one clock edge. Nothing blocks: components that
// are waiting for something simply remain in the same state from one tick to
// the next.
//
// The Poke() and Peek() functions implement the master side of the bus
// handshake for the benefit of the debugger and of tests. They are not part
// of the simulated hardware.
package hardware
