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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like the
// Errorf() function in the fmt package, taking a formatting pattern and
// placeholder values, and returns an error.
//
// The Is() function can be used to check whether an error was created by
// Errorf() with a given pattern:
//
//	e := curated.Errorf("adapter: %v", underlying)
//
//	if curated.Is(e, "adapter: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// somewhere in the error chain, rather than just at the head.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of the difference between curated and uncurated errors as
// being the difference between 'expected' and 'unexpected' errors, depending
// on how we choose to handle the result of a function call.
package curated
