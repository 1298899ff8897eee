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

package arm

import "fmt"

// Cycles is the number of each type of cycle used by an instruction. The
// Memory implementation converts these counts to a number of clock cycles
// with the WaitCycles() function.
//
// "3.2 Bus cycle types" in "ARM7TDMI-S Technical Reference Manual r4p3"
type Cycles struct {
	// "Sequential cycle. The ARM7TDMI-S processor requests a transfer to or
	// from an address that is either the same as, or one word or one halfword
	// greater than, the address used in the preceding cycle."
	Sequential int

	// "Nonsequential cycle. The ARM7TDMI-S processor requests a transfer to
	// or from an address that is unrelated to the address used in the
	// preceding cycle."
	NonSequential int

	// "Internal cycle. The ARM7TDMI-S processor does not require a transfer
	// because it is performing an internal function, and no useful
	// prefetching can be performed at the same time."
	Internal int
}

func (c Cycles) String() string {
	return fmt.Sprintf("%dS %dN %dI", c.Sequential, c.NonSequential, c.Internal)
}

// Add returns the sum of two Cycles values.
func (c Cycles) Add(o Cycles) Cycles {
	return Cycles{
		Sequential:    c.Sequential + o.Sequential,
		NonSequential: c.NonSequential + o.NonSequential,
		Internal:      c.Internal + o.Internal,
	}
}

// Total returns the number of cycles assuming no wait states.
func (c Cycles) Total() int {
	return c.Sequential + c.NonSequential + c.Internal
}

// commonly used cycle counts
var (
	cyclesDataOp     = Cycles{Sequential: 1}
	cyclesBranch     = Cycles{Sequential: 2, NonSequential: 1}
	cyclesLoad       = Cycles{Sequential: 1, NonSequential: 1, Internal: 1}
	cyclesLoadPC     = Cycles{Sequential: 2, NonSequential: 2, Internal: 1}
	cyclesStore      = Cycles{NonSequential: 2}
	cyclesSwap       = Cycles{Sequential: 1, NonSequential: 2, Internal: 1}
	cyclesSkipped    = Cycles{NonSequential: 1}
	cyclesHalted     = Cycles{Internal: 1}
	cyclesPCWritten  = Cycles{Sequential: 1, NonSequential: 1}
	cyclesException  = cyclesBranch
	cyclesRegShifted = Cycles{Internal: 1}
)

// multiplierCycles returns the number of internal cycles required by the
// multiplier for the value in Rs. the multiplier terminates early if the
// remaining bytes of Rs are all zero (or all one for signed multiplies)
//
// "6.20 Instruction Speed Summary" in the "ARM7TDMI Data Sheet"
//
//	m is:
//	1 if bits [32:8] of the multiplier operand are all zero or one.
//	2 if bits [32:16] of the multiplier operand are all zero or one.
//	3 if bits [32:24] of the multiplier operand are all zero or all one.
//	4 otherwise.
func multiplierCycles(rs uint32, signed bool) int {
	match := func(mask uint32) bool {
		if rs&mask == 0 {
			return true
		}
		return signed && rs&mask == mask
	}

	switch {
	case match(0xffffff00):
		return 1
	case match(0xffff0000):
		return 2
	case match(0xff000000):
		return 3
	}
	return 4
}
