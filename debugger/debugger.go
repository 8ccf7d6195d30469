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

// Package debugger implements an interactive command line interface to the
// peripheral simulation. Commands allow the simulation to be advanced tick
// by tick, the register file to be read and written over the bus, the
// external interrupt line to be manipulated, and the output pins to be
// recorded to a VCD file.
package debugger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hexforge/periphsim/curated"
	"github.com/hexforge/periphsim/debugger/terminal"
	"github.com/hexforge/periphsim/hardware"
	"github.com/hexforge/periphsim/logger"
	"github.com/hexforge/periphsim/trace"
)

// the number of ticks the BUTTON PRESS command holds the line for. long
// enough to satisfy any reasonable debounce threshold.
const pressTicks = 64

// Debugger is the basic debugging frontend for the simulation.
type Debugger struct {
	periph *hardware.Periph
	term   terminal.Terminal

	// the running flag is cleared by the QUIT command
	running bool

	// vcd recording. nil when no recording is active
	tracer    *trace.Recorder
	traceFile *os.File
}

// NewDebugger creates and initialises everything required by the debugger.
// It is the preferred method of initialisation for the Debugger type.
func NewDebugger(periph *hardware.Periph, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		periph: periph,
		term:   term,
	}

	if err := dbg.term.Initialise(); err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the main debugger loop. Returns when the QUIT command is issued or
// when input is exhausted.
func (dbg *Debugger) Start() error {
	defer dbg.term.CleanUp()
	defer dbg.endTrace()

	dbg.running = true

	buffer := make([]byte, 255)
	prompt := terminal.Prompt{Content: "[periphsim] "}

	for dbg.running {
		n, err := dbg.term.TermRead(buffer, prompt)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.term.TermPrintLine(terminal.StyleOutput, "use QUIT to leave the debugger")
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		if err := dbg.parseCommand(string(buffer[:n])); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// parseCommand splits the input line into tokens and dispatches to the
// command implementations. command keywords are case insensitive.
func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case "STEP":
		return dbg.cmdStep(args)
	case "PEEK":
		return dbg.cmdPeek(args)
	case "POKE":
		return dbg.cmdPoke(args)
	case "BUTTON":
		return dbg.cmdButton(args)
	case "STATE":
		return dbg.cmdState()
	case "TRACE":
		return dbg.cmdTrace(args)
	case "VIZ":
		return dbg.cmdViz(args)
	case "LOG":
		logger.Write(os.Stdout)
		return nil
	case "HELP":
		dbg.cmdHelp()
		return nil
	case "QUIT", "EXIT":
		dbg.running = false
		return nil
	}

	return curated.Errorf("debugger: unrecognised command (%s)", command)
}

// step the simulation a single tick, feeding any active vcd recording.
func (dbg *Debugger) tick() error {
	dbg.periph.Step()
	if dbg.tracer != nil {
		err := dbg.tracer.Sample(dbg.periph.TickCount,
			dbg.periph.RegFile.InterruptOutput(),
			dbg.periph.LEDs.Output(),
			dbg.periph.Display.Segments(),
			dbg.periph.Display.DigitSelect())
		if err != nil {
			return err
		}
	}
	return nil
}

func (dbg *Debugger) cmdStep(args []string) error {
	num := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return curated.Errorf("debugger: STEP: not a valid tick count (%s)", args[0])
		}
		num = v
	}

	for i := 0; i < num; i++ {
		if err := dbg.tick(); err != nil {
			return err
		}
	}

	dbg.term.TermPrintLine(terminal.StyleOutput,
		fmt.Sprintf("tick %d", dbg.periph.TickCount))

	return nil
}

func (dbg *Debugger) cmdPeek(args []string) error {
	if len(args) != 1 {
		return curated.Errorf("debugger: PEEK: requires an address")
	}

	addr, err := parseValue(args[0])
	if err != nil {
		return curated.Errorf("debugger: PEEK: %v", err)
	}

	// the peek is performed over the bus so it consumes simulation ticks
	// like any other read
	data, err := dbg.periph.Peek(addr)
	if err != nil {
		return err
	}

	dbg.term.TermPrintLine(terminal.StyleOutput,
		fmt.Sprintf("%#08x -> %#08x", addr, data))

	return nil
}

func (dbg *Debugger) cmdPoke(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return curated.Errorf("debugger: POKE: requires an address and a value")
	}

	addr, err := parseValue(args[0])
	if err != nil {
		return curated.Errorf("debugger: POKE: %v", err)
	}

	data, err := parseValue(args[1])
	if err != nil {
		return curated.Errorf("debugger: POKE: %v", err)
	}

	strobe := uint8(0x0f)
	if len(args) == 3 {
		v, err := parseValue(args[2])
		if err != nil || v > 0x0f {
			return curated.Errorf("debugger: POKE: not a valid byte mask (%s)", args[2])
		}
		strobe = uint8(v)
	}

	return dbg.periph.Poke(addr, data, strobe)
}

func (dbg *Debugger) cmdButton(args []string) error {
	action := "PRESS"
	if len(args) > 0 {
		action = strings.ToUpper(args[0])
	}

	switch action {
	case "HOLD":
		dbg.periph.IRQLine = true
	case "RELEASE":
		dbg.periph.IRQLine = false
	case "PRESS":
		dbg.periph.IRQLine = true
		for i := 0; i < pressTicks; i++ {
			if err := dbg.tick(); err != nil {
				return err
			}
		}
		dbg.periph.IRQLine = false
		for i := 0; i < pressTicks; i++ {
			if err := dbg.tick(); err != nil {
				return err
			}
		}
	default:
		return curated.Errorf("debugger: BUTTON: unrecognised action (%s)", action)
	}

	return nil
}

func (dbg *Debugger) cmdState() error {
	dbg.term.TermPrintLine(terminal.StyleOutput, dbg.periph.String())
	dbg.term.TermPrintLine(terminal.StyleOutput,
		fmt.Sprintf("write channel: %s  read channel: %s",
			dbg.periph.Adapter.WriteState(), dbg.periph.Adapter.ReadState()))
	dbg.term.TermPrintLine(terminal.StyleOutput, dbg.periph.LEDs.String())
	dbg.term.TermPrintLine(terminal.StyleOutput, dbg.periph.Display.String())
	dbg.term.TermPrintLine(terminal.StyleOutput, dbg.periph.Cond.String())
	return nil
}

func (dbg *Debugger) cmdTrace(args []string) error {
	if len(args) != 1 {
		return curated.Errorf("debugger: TRACE: requires a filename or OFF")
	}

	if strings.ToUpper(args[0]) == "OFF" {
		dbg.endTrace()
		return nil
	}

	if dbg.tracer != nil {
		return curated.Errorf("debugger: TRACE: recording already in progress")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf("debugger: TRACE: %v", err)
	}

	rec, err := trace.NewRecorder(f)
	if err != nil {
		f.Close()
		return err
	}

	dbg.tracer = rec
	dbg.traceFile = f

	dbg.term.TermPrintLine(terminal.StyleOutput,
		fmt.Sprintf("recording to %s", args[0]))

	return nil
}

// endTrace closes any active vcd recording. it is safe to call when no
// recording is active.
func (dbg *Debugger) endTrace() {
	if dbg.traceFile != nil {
		if err := dbg.traceFile.Close(); err != nil {
			logger.Logf("debugger", "%v", err)
		}
	}
	dbg.tracer = nil
	dbg.traceFile = nil
}

func (dbg *Debugger) cmdHelp() {
	dbg.term.TermPrintLine(terminal.StyleHelp, "STEP [n]              advance the simulation n ticks (default 1)")
	dbg.term.TermPrintLine(terminal.StyleHelp, "PEEK addr             read a register over the bus")
	dbg.term.TermPrintLine(terminal.StyleHelp, "POKE addr val [mask]  write a register over the bus")
	dbg.term.TermPrintLine(terminal.StyleHelp, "BUTTON [action]       HOLD, RELEASE or PRESS the external line")
	dbg.term.TermPrintLine(terminal.StyleHelp, "STATE                 show the state of every component")
	dbg.term.TermPrintLine(terminal.StyleHelp, "TRACE file|OFF        record output pins to a VCD file")
	dbg.term.TermPrintLine(terminal.StyleHelp, "VIZ file              write a graph of the simulation structure")
	dbg.term.TermPrintLine(terminal.StyleHelp, "LOG                   show the log")
	dbg.term.TermPrintLine(terminal.StyleHelp, "QUIT                  leave the debugger")
}

// parseValue converts a numeric command argument. hexadecimal values can be
// prefixed with 0x or, for convenience, with $.
func parseValue(s string) (uint32, error) {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, curated.Errorf("not a valid value (%s)", s)
	}
	return uint32(v), nil
}
