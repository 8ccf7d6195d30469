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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/hexforge/periphsim/curated"
)

// Profile is used to specify the type of profiles to create.
type Profile int

// List of valid Profile values. Values can be combined with the bitwise or
// operator.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileAll = ProfileCPU | ProfileMem
)

// ParseProfileString converts a comma separated profile list to a Profile
// value.
func ParseProfileString(s string) (Profile, error) {
	profile := ProfileNone

	for _, f := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(f)) {
		case "NONE", "":
			// ignore
		case "CPU":
			profile |= ProfileCPU
		case "MEM":
			profile |= ProfileMem
		case "ALL":
			profile |= ProfileAll
		default:
			return ProfileNone, curated.Errorf("performance: unrecognised profile type (%s)", f)
		}
	}

	return profile, nil
}

// RunProfiler runs the supplied function, creating the requested profiles as
// it goes. Profile files are named after the supplied tag.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s.cpu.profile", tag))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}

		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	// hold on to the error from the run function. the memory profile is
	// still worth writing when the run ends with an error (the performance
	// measurement ends with a sentinel error, for instance)
	runErr := run()

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s.mem.profile", tag))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return runErr
}
