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

package hardware

import (
	"fmt"
	"time"
)

func summary(instructions uint64, cycles uint64, emulated time.Duration) string {
	return fmt.Sprintf("%d instructions in %d cycles (%s emulated)", instructions, cycles, emulated.Round(time.Microsecond))
}

// Step the emulation one CPU instruction. Returns the number of clock cycles
// consumed by the instruction. A halted CPU consumes one cycle per Step().
func (gba *GBA) Step() (int, error) {
	return gba.CPU.Step()
}

// StepFor steps the emulation until at least the number of clock cycles have
// elapsed. Returns the number of cycles actually consumed.
func (gba *GBA) StepFor(cycles int) (int, error) {
	var n int
	for n < cycles {
		c, err := gba.CPU.Step()
		if err != nil {
			return n, err
		}
		n += c
	}
	return n, nil
}
