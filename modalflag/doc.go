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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows a different set of flags for each mode.
//
// Declare a Modes struct and initialise it with the command line arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//
// Sub-modes are added with the AddSubModes() function and flags with the
// AddBool(), AddString(), etc. functions. A call to Parse() then consumes
// the current layer of arguments:
//
//	md.AddSubModes("run", "debug")
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	...
//	}
//
// After selecting a mode, NewMode() begins a fresh flagset for that mode and
// the process repeats. Non-flag arguments are available through
// RemainingArgs() and GetArg().
package modalflag
