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

package easyterm

// Byte values for the keys the terminal recognises in cbreak mode.
const (
	KeyInterrupt   = 3
	KeyTab         = 9
	KeyCarriage    = 13
	KeyEsc         = 27
	KeyBackspace   = 8
	KeyDelWin      = 127
)
