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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestPermission(t *testing.T) {
	main, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.ExpectImplements[logger.Permission](t, main)
	test.ExpectSuccess(t, main.AllowLogging())

	// secondary emulation shares the preferences but does not log
	other, err := environment.NewEnvironment("script", main.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.AllowLogging())
	test.ExpectSuccess(t, other.IsEmulation("script"))
	test.ExpectSuccess(t, other.Prefs == main.Prefs)
}

func TestNormalise(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.Prefs.ARM.HLE.Set(false))
	env.Normalise()
	test.ExpectEquality(t, env.Prefs.ARM.HLE.Get().(bool), true)
	test.ExpectEquality(t, env.Prefs.RandSeed, int64(1))
}
