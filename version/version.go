// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.


package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// The name to use when referring to the application
const ApplicationName = "GopherAdvance"

// set by the linker when building a numbered release
var number string

// Build describes how the running binary was produced.
type Build struct {
	// the release number or one of "unreleased" or "local"
	Version string

	// vcs revision with "+dirty" appended for uncommitted changes
	Revision string

	// the Go toolchain the binary was compiled with
	GoVersion string

	// true if Version is a numbered release
	Release bool
}

var build Build

// parseBuild builds the Build value from the linker supplied release number
// and the settings embedded by the Go toolchain. a nil info is treated as a
// binary with no embedded build information.
func parseBuild(number string, info *debug.BuildInfo) Build {
	var b Build
	var vcs bool
	var modified bool

	if info != nil {
		b.GoVersion = info.GoVersion
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				b.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if b.Revision == "" {
		b.Revision = "no revision information"
	} else if modified {
		b.Revision = fmt.Sprintf("%s+dirty", b.Revision)
	}

	switch {
	case number != "":
		b.Version = number
		b.Release = true
	case vcs:
		b.Version = "unreleased"
	default:
		b.Version = "local"
	}

	return b
}

func init() {
	info, _ := debug.ReadBuildInfo()
	build = parseBuild(number, info)
}

// Version returns the version string, the revision string and whether this is a
// numbered "release" version.
func Version() (string, string, bool) {
	return build.Version, build.Revision, build.Release
}

// Current returns the build information for the running binary.
func Current() Build {
	return build
}

// String returns the application name and version. The revision is only
// included for builds that are not numbered releases.
func (b Build) String() string {
	if b.Release {
		return fmt.Sprintf("%s %s", ApplicationName, b.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, b.Version, b.Revision)
}

// Long is the multi-line form used by "VERSION -revision".
func (b Build) Long() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "%s %s\n", ApplicationName, b.Version)
	fmt.Fprintf(&s, "%s\n", b.Revision)
	if b.GoVersion != "" {
		fmt.Fprintf(&s, "built with %s\n", b.GoVersion)
	}
	return s.String()
}

// String returns the application name and version of the running binary.
func String() string {
	return build.String()
}
