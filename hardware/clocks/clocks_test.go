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

package clocks_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopheradvance/hardware/clocks"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestDuration(t *testing.T) {
	test.ExpectApproximate(t, float64(clocks.Duration(16777216)), float64(time.Second), 0.0001)
	test.ExpectEquality(t, clocks.Frames(clocks.FrameCycles*60+1), 60)
}
