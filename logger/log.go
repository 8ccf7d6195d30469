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

package logger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// not exposing logger to outside of the package. the package level functions
// can be used to log to the central logger.
type logger struct {
	maxEntries int
	entries    []Entry

	// the echo writer. log entries are forwarded to this writer as they
	// arrive. can be nil
	echo io.Writer
}

func newLogger(maxEntries int) *logger {
	return &logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
}

func (l *logger) log(tag, detail string) {
	// remove all newline characters from tag and detail strings
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	// collate identical, adjacent entries
	if len(l.entries) > 0 {
		e := &l.entries[len(l.entries)-1]
		if e.tag == tag && e.detail == detail {
			e.repeated++
			e.Timestamp = time.Now()
			return
		}
	}

	e := Entry{Timestamp: time.Now(), tag: tag, detail: detail}
	l.entries = append(l.entries, e)

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

func (l *logger) logf(tag, format string, args ...interface{}) {
	l.log(tag, fmt.Sprintf(format, args...))
}

func (l *logger) clear() {
	l.entries = l.entries[:0]
}

func (l *logger) write(output io.Writer) bool {
	if len(l.entries) == 0 {
		return false
	}
	for i := range l.entries {
		io.WriteString(output, l.entries[i].String())
	}
	return true
}

func (l *logger) tail(output io.Writer, number int) {
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for i := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, l.entries[len(l.entries)-number+i].String())
	}
}

func (l *logger) setEcho(output io.Writer, instant bool) {
	l.echo = output
	if output != nil && instant {
		l.write(output)
	}
}
