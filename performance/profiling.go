// This file is part of sap1term.
//
// sap1term is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sap1term is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sap1term.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"
	"github.com/sap1term/sap1term/curated"
	"github.com/sap1term/sap1term/logger"
)

// Profile specifies which profile to generate when calling RunProfiler().
type Profile string

// List of valid Profile values.
const (
	ProfileNone  Profile = "none"
	ProfileCPU   Profile = "cpu"
	ProfileMem   Profile = "mem"
	ProfileTrace Profile = "trace"
)

// UnknownProfile is the sentinel error returned by ParseProfile().
const UnknownProfile = "performance: unknown profile type: %s"

// ParseProfile converts a command line value into a Profile value. An empty
// string is the same as ProfileNone.
func ParseProfile(s string) (Profile, error) {
	switch p := Profile(strings.ToLower(strings.TrimSpace(s))); p {
	case "", ProfileNone:
		return ProfileNone, nil
	case ProfileCPU, ProfileMem, ProfileTrace:
		return p, nil
	}
	return ProfileNone, curated.Errorf(UnknownProfile, s)
}

// the options passed to profile.Start() for each Profile value
func (p Profile) option() (func(*profile.Profile), bool) {
	switch p {
	case ProfileCPU:
		return profile.CPUProfile, true
	case ProfileMem:
		return profile.MemProfile, true
	case ProfileTrace:
		return profile.TraceProfile, true
	}
	return nil, false
}

// RunProfiler runs the supplied function and generates the requested profile
// in the path directory. The error returned is the error returned by run().
func RunProfiler(p Profile, path string, run func() error) error {
	opt, ok := p.option()
	if !ok {
		return run()
	}

	logger.Logf(logger.Allow, "performance", "%s profile to %s", p, path)

	// shutdown hook is disabled because the session restores the terminal
	// before the process is allowed to exit
	stop := profile.Start(opt, profile.ProfilePath(path), profile.Quiet, profile.NoShutdownHook)
	defer stop.Stop()

	if err := run(); err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	return nil
}
