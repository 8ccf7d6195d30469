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

package sdlpanel

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexforge/periphsim/hardware/led"
	"github.com/hexforge/periphsim/hardware/sevenseg"
)

// layout of the panel, in unscaled pixels.
const (
	ledSize    = 16
	ledGap     = 12
	ledTop     = 20
	digitWidth = 40
	digitGap   = 16
	segLen     = 24
	segThick   = 5
	digitTop   = 60
)

// the position and size of each of the seven segments relative to a digit
// origin. order: a, b, c, d, e, f, g.
var segmentRects = [7]sdl.Rect{
	{X: segThick, Y: 0, W: segLen, H: segThick},
	{X: segThick + segLen, Y: segThick, W: segThick, H: segLen},
	{X: segThick + segLen, Y: segThick*2 + segLen, W: segThick, H: segLen},
	{X: segThick, Y: segThick*2 + segLen*2, W: segLen, H: segThick},
	{X: 0, Y: segThick*2 + segLen, W: segThick, H: segLen},
	{X: 0, Y: segThick, W: segThick, H: segLen},
	{X: segThick, Y: segThick + segLen, W: segLen, H: segThick},
}

func (pnl *Panel) draw() {
	pnl.renderer.SetDrawColor(10, 10, 10, 255)
	pnl.renderer.Clear()

	// LEDs along the top, most significant on the left
	for i := 0; i < led.NumLEDs; i++ {
		x := int32(ledGap + (led.NumLEDs-1-i)*(ledSize+ledGap))
		if pnl.leds&(1<<i) != 0 {
			pnl.renderer.SetDrawColor(0, 220, 0, 255)
		} else {
			pnl.renderer.SetDrawColor(0, 50, 0, 255)
		}
		pnl.renderer.FillRect(&sdl.Rect{X: x, Y: ledTop, W: ledSize, H: ledSize})
	}

	// digits along the bottom, most significant on the left
	for i := 0; i < sevenseg.NumDigits; i++ {
		ox := int32(digitGap + (sevenseg.NumDigits-1-i)*(digitWidth+digitGap))
		for s := 0; s < 7; s++ {
			if pnl.digits[i]&(1<<s) != 0 {
				pnl.renderer.SetDrawColor(220, 40, 40, 255)
			} else {
				pnl.renderer.SetDrawColor(40, 12, 12, 255)
			}
			r := segmentRects[s]
			r.X += ox
			r.Y += digitTop
			pnl.renderer.FillRect(&r)
		}
	}

	pnl.renderer.Present()
}
