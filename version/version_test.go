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
	"runtime/debug"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/test"
)

func TestParseBuild(t *testing.T) {
	b := parseBuild("", nil)
	test.ExpectEquality(t, b.Version, "local")
	test.ExpectEquality(t, b.Revision, "no revision information")
	test.ExpectEquality(t, b.Release, false)
	test.ExpectEquality(t, b.String(), "GopherAdvance local (no revision information)")

	info := &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	b = parseBuild("", info)
	test.ExpectEquality(t, b.Version, "unreleased")
	test.ExpectEquality(t, b.Revision, "abc123+dirty")
	test.ExpectEquality(t, b.Long(), "GopherAdvance unreleased\nabc123+dirty\nbuilt with go1.26.0\n")

	info.Settings[2].Value = "false"
	b = parseBuild("v0.1.0", info)
	test.ExpectEquality(t, b.Version, "v0.1.0")
	test.ExpectEquality(t, b.Revision, "abc123")
	test.ExpectEquality(t, b.Release, true)
	test.ExpectEquality(t, b.String(), "GopherAdvance v0.1.0")
}

func TestCurrent(t *testing.T) {
	v, r, release := Version()
	b := Current()
	test.ExpectEquality(t, v, b.Version)
	test.ExpectEquality(t, r, b.Revision)
	test.ExpectEquality(t, release, b.Release)
	test.ExpectSuccess(t, strings.HasPrefix(String(), ApplicationName))
}
