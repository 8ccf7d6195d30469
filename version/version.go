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

// Package version records the version number of the project and the vcs
// state it was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Periphsim"

// if number is empty then the project was probably not built using the
// makefile
var number string

// revision contains the vcs revision. if the source has been modified but
// has not been committed then the revision string will be suffixed with
// "+dirty"
var revision string

// version contains the current version number of the project.
//
// if the version string is "unreleased" then the project has been manually
// built (ie. not with the makefile)
//
// if the version string is "local" then there is no version number and no
// vcs information. this can happen when compiling/running with "go run ."
var version string

// Version returns the version string, the revision string and whether this
// is a numbered "release" version. if release is true then the revision
// information should be used sparingly.
func Version() (string, string, bool) {
	return version, revision, version == number
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	} else {
		version = number
	}
}
