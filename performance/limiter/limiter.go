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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. It is used to run the emulation at the speed of the real hardware, one
// LCD frame's worth of cycles at a time.
//
// A new Limiter is created with a rate in events per second:
//
//	lim := limiter.NewLimiter(59.73)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		runFrame()
//	}
package limiter

import (
	"time"
)

// Limiter will trigger at the specified rate.
type Limiter struct {
	period time.Duration
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A rate of zero or less is treated as one event per second.
func NewLimiter(rate float64) *Limiter {
	lim := &Limiter{}
	lim.period = period(rate)
	lim.ticker = time.NewTicker(lim.period)
	return lim
}

func period(rate float64) time.Duration {
	if rate <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / rate)
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(rate float64) {
	lim.period = period(rate)
	lim.ticker.Reset(lim.period)
}

// Period returns the time between each trigger.
func (lim *Limiter) Period() time.Duration {
	return lim.period
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if the trigger has happened and false if it is
// still yet to happen. Does not block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. It should not be used after being stopped.
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
