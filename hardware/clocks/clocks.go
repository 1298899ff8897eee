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

// Package clocks defines the constant values that define the speed of the main
// clock in the GBA.
//
// Values taken from GBATEK:
// https://problemkaputt.de/gbatek.htm#gbatechnicaldata
package clocks

import "time"

// the main clock in MHz. the CPU is clocked directly from it
const GBA = 16.777216

// cycles of the main clock in one frame of the LCD. 228 lines of 1232 cycles
const FrameCycles = 228 * 1232

// Duration returns the time taken by the number of cycles of the main clock.
func Duration(cycles uint64) time.Duration {
	return time.Duration(float64(cycles) / GBA * float64(time.Microsecond))
}

// Frames returns the number of whole LCD frames that take the same time as
// the number of cycles of the main clock.
func Frames(cycles uint64) uint64 {
	return cycles / FrameCycles
}
