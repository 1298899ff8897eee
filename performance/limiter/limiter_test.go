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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopheradvance/performance/limiter"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestPeriod(t *testing.T) {
	lim := limiter.NewLimiter(50)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Period(), 20*time.Millisecond)

	lim.SetLimit(0)
	test.ExpectEquality(t, lim.Period(), time.Second)
}

func TestWait(t *testing.T) {
	lim := limiter.NewLimiter(100)
	defer lim.Stop()

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)

	// a much slower rate will not have triggered immediately after a reset
	lim.SetLimit(1)
	test.ExpectFailure(t, lim.HasWaited())
}
