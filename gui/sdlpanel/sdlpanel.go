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

// Package sdlpanel is a simple SDL implementation of the gui.GUI interface.
// It draws the peripheral's front panel: four LEDs and a four-digit
// seven-segment display. The space bar acts as the external button,
// feeding the raw interrupt line for as long as it is held.
package sdlpanel

import (
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexforge/periphsim/curated"
	"github.com/hexforge/periphsim/gui"
	"github.com/hexforge/periphsim/hardware/sevenseg"
	"github.com/hexforge/periphsim/version"
)

// unscaled window dimensions.
const (
	panelWidth  = 320
	panelHeight = 140
)

// Panel is a simple SDL rendering of the peripheral's front panel.
type Panel struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// connects the SDL event loop with the parent process
	events chan gui.Event

	// the display is time-multiplexed: only one digit is driven at any
	// instant. the panel latches the segment pattern for each digit as it is
	// scanned, like the slow phosphor of a real display
	digits [sevenseg.NumDigits]uint8
	leds   uint8

	// whether the space bar is currently held
	held bool
}

// NewPanel is the preferred method of initialisation for the Panel type.
// The returned channel carries user events; it is closed by Destroy().
func NewPanel(scale float32) (*Panel, chan gui.Event, error) {
	pnl := &Panel{
		events: make(chan gui.Event, 8),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, nil, curated.Errorf("sdlpanel: %v", err)
	}

	if scale <= 0.0 {
		scale = 2.0
	}

	pnl.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(panelWidth*scale), int32(panelHeight*scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, nil, curated.Errorf("sdlpanel: %v", err)
	}

	pnl.renderer, err = sdl.CreateRenderer(pnl.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, nil, curated.Errorf("sdlpanel: %v", err)
	}

	// scale all drawing rather than scaling coordinates by hand
	err = pnl.renderer.SetScale(scale, scale)
	if err != nil {
		return nil, nil, curated.Errorf("sdlpanel: %v", err)
	}

	return pnl, pnl.events, nil
}

// SetFeature implements the gui.GUI interface.
func (pnl *Panel) SetFeature(request gui.FeatureReq, args ...interface{}) error {
	switch request {
	case gui.ReqSetVisibility:
		if len(args) != 1 {
			return curated.Errorf("sdlpanel: %s: wrong number of arguments", request)
		}
		if v, ok := args[0].(bool); ok {
			if v {
				pnl.window.Show()
			} else {
				pnl.window.Hide()
			}
			return nil
		}
		return curated.Errorf("sdlpanel: %s: unsupported argument type", request)

	case gui.ReqSetScale:
		if len(args) != 1 {
			return curated.Errorf("sdlpanel: %s: wrong number of arguments", request)
		}
		if v, ok := args[0].(float32); ok {
			return pnl.renderer.SetScale(v, v)
		}
		return curated.Errorf("sdlpanel: %s: unsupported argument type", request)
	}

	return curated.Errorf("sdlpanel: unsupported feature request (%s)", request)
}

// Destroy implements the gui.GUI interface.
func (pnl *Panel) Destroy(output io.Writer) {
	if err := pnl.renderer.Destroy(); err != nil {
		io.WriteString(output, err.Error())
	}
	if err := pnl.window.Destroy(); err != nil {
		io.WriteString(output, err.Error())
	}
	close(pnl.events)
	sdl.Quit()
}

// Update latches the current state of the peripheral's output lines. Called
// from the simulation loop as often as it likes; the latched values are
// drawn on the next call to Service().
func (pnl *Panel) Update(leds uint8, segments uint8, sel uint8) {
	pnl.leds = leds
	for i := 0; i < sevenseg.NumDigits; i++ {
		if sel&(1<<i) != 0 {
			pnl.digits[i] = segments
		}
	}
}

// Service implements the gui.GUI interface. It polls SDL events and redraws
// the panel. It must only be called from the main thread.
func (pnl *Panel) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			select {
			case pnl.events <- gui.EventQuit{}:
			default:
			}

		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym != sdl.K_SPACE || ev.Repeat != 0 {
				continue
			}
			held := ev.Type == sdl.KEYDOWN
			if held == pnl.held {
				continue
			}
			pnl.held = held
			select {
			case pnl.events <- gui.EventButton{Held: held}:
			default:
			}
		}
	}

	pnl.draw()
}
