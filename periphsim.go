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

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/hexforge/periphsim/debugger"
	"github.com/hexforge/periphsim/debugger/terminal"
	"github.com/hexforge/periphsim/debugger/terminal/colorterm"
	"github.com/hexforge/periphsim/debugger/terminal/plainterm"
	"github.com/hexforge/periphsim/hardware"
	"github.com/hexforge/periphsim/logger"
	"github.com/hexforge/periphsim/modalflag"
	"github.com/hexforge/periphsim/performance"
	"github.com/hexforge/periphsim/runmode"
	"github.com/hexforge/periphsim/statsview"
	"github.com/hexforge/periphsim/version"
)

func init() {
	// SDL requires that window event handling happens on the main thread
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		vers, revision, _ := version.Version()
		fmt.Printf("%s (%s)\n", vers, revision)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 2.0, "front panel scaling")
	debounce := md.AddInt("debounce", 1000, "conditioner stability threshold in ticks")
	refresh := md.AddInt("refresh", 1000, "ticks per display digit")
	dim := md.AddBool("dim", false, "drive the LEDs through the dimmer")
	duty := md.AddUint("duty", 128, "dimmer duty cycle (0 to 255)")
	demo := md.AddBool("demo", false, "cycle the registers automatically")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *duty > 255 {
		return fmt.Errorf("duty cycle must be between 0 and 255")
	}

	return runmode.Run(runmode.Options{
		Scale:    float32(*scale),
		Debounce: *debounce,
		Refresh:  *refresh,
		Dimmer:   *dim,
		Duty:     uint8(*duty),
		Demo:     *demo,
	})
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	debounce := md.AddInt("debounce", 3, "conditioner stability threshold in ticks")
	refresh := md.AddInt("refresh", 1, "ticks per display digit")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unrecognised terminal type (%s)", *termType)
	}

	ph := hardware.NewPeriph(*debounce, *refresh)

	dbg, err := debugger.NewDebugger(ph, term)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "profile types to generate: CPU, MEM, ALL")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (requires statsview build tag) [%v]", statsview.Available()))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, *duration)
}
