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

package addresses_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestLookup(t *testing.T) {
	a, ok := addresses.Lookup("ie")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, addresses.IE)

	a, ok = addresses.Lookup("HALTCNT")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, 0x04000301)

	_, ok = addresses.Lookup("DISPCNT")
	test.ExpectFailure(t, ok)
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, strings.Join(addresses.Names(), " "),
		"SOUNDBIAS IE IF WAITCNT IME POSTFLG HALTCNT")
}
