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

// Package logger is the central log repository for the simulation. There is
// no need to create a logger instance, the package level functions write to
// an implicit central logger.
//
// Use Log() to make a new entry. The tag argument groups entries by
// sub-system; the detail argument is the message itself. Identical adjacent
// entries are collated.
//
// The SetEcho() function forwards future entries to the specified io.Writer
// as they arrive. Write() and Tail() dump the accumulated log.
package logger

import "io"

const maxCentral = 256

var central = newLogger(maxCentral)

// Log makes a new entry in the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf makes a new formatted entry in the central logger.
func Logf(tag, format string, args ...interface{}) {
	central.logf(tag, format, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer. Returns true if anything was
// written.
func Write(output io.Writer) bool {
	return central.write(output)
}

// Tail writes the last number of entries in the central logger to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho forwards all future entries in the central logger to io.Writer. A
// nil value stops the echoing. If instant is true then the existing contents
// of the log is written to the io.Writer immediately.
func SetEcho(output io.Writer, instant bool) {
	central.setEcho(output, instant)
}
