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

package colorterm

// the ANSI sequences used by the terminal.
const (
	ansiNormal    = "\033[0m"
	ansiBold      = "\033[1m"
	ansiDimmed    = "\033[2m"
	ansiRed       = "\033[31m"
	ansiYellow    = "\033[33m"
	ansiClearLine = "\033[2K\r"
)
