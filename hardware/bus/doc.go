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

// Package bus defines the signal bundles of the split-transaction register
// bus and the register map of the peripheral.
//
// The bus is made up of five independent channels: write address, write data,
// write response, read address and read data. Each channel follows the same
// handshake contract: a transfer is accepted on the tick in which the
// channel's Valid and Ready signals are both asserted. The address and data
// halves of a write transaction may arrive in either order, or
// simultaneously.
//
// The Bus type is nothing more than shared wiring. The busadapter package
// implements the slave side of the handshake protocol; the master side is
// implemented by whoever is driving the simulation (the Periph type's Poke()
// and Peek() functions for instance).
package bus
