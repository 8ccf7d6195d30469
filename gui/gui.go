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

// Package gui defines the interface between the simulation and its
// front-end. Implementations live in sub-packages; the sdlpanel package is
// the only current implementation.
package gui

import "io"

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// List of valid FeatureReq values.
const (
	// first argument is a bool, whether the window is visible
	ReqSetVisibility FeatureReq = "visibility"

	// first argument is a float32, the scaling of the window
	ReqSetScale FeatureReq = "scale"
)

// Event represents an action by the user of the front-end that the
// simulation needs to know about.
type Event interface{}

// EventQuit is sent when the user closes the front-end.
type EventQuit struct{}

// EventButton is sent when the state of the external button changes. Held is
// true for as long as the button is pressed: the hardware, not the GUI, is
// responsible for debounce and edge detection.
type EventButton struct {
	Held bool
}

// GUI defines the functions required by a front-end implementation.
type GUI interface {
	// SetFeature is used to set a front-end attribute
	SetFeature(request FeatureReq, args ...interface{}) error

	// Service front-end events. must be called regularly and only ever from
	// the main thread
	Service()

	// cleanup resources used by the front-end
	Destroy(io.Writer)
}
