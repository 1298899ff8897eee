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

import (
	"fmt"
	"strings"
)

// Mode is the processor mode held in the bottom five bits of the status
// register.
type Mode uint32

// List of valid processor modes.
const (
	ModeUser       Mode = 0x10
	ModeFIQ        Mode = 0x11
	ModeIRQ        Mode = 0x12
	ModeSupervisor Mode = 0x13
	ModeAbort      Mode = 0x17
	ModeUndefined  Mode = 0x1b
	ModeSystem     Mode = 0x1f
)

func (m Mode) String() string {
	switch m {
	case ModeUser:
		return "USR"
	case ModeFIQ:
		return "FIQ"
	case ModeIRQ:
		return "IRQ"
	case ModeSupervisor:
		return "SVC"
	case ModeAbort:
		return "ABT"
	case ModeUndefined:
		return "UND"
	case ModeSystem:
		return "SYS"
	}
	return fmt.Sprintf("%05b", uint32(m))
}

// Valid returns true if the mode is one of the seven processor modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeUser, ModeFIQ, ModeIRQ, ModeSupervisor, ModeAbort, ModeUndefined, ModeSystem:
		return true
	}
	return false
}

// privileged modes, apart from System mode, have a saved program status
// register.
func (m Mode) hasSPSR() bool {
	return m != ModeUser && m != ModeSystem
}

// bit positions of the flags in the status register
const (
	statusNegative = 1 << 31
	statusZero     = 1 << 30
	statusCarry    = 1 << 29
	statusOverflow = 1 << 28
	statusIRQ      = 1 << 7
	statusFIQ      = 1 << 6
	statusThumb    = 1 << 5
	statusMode     = 0x1f
)

// Status is the current program status register (CPSR). Saved status
// registers are kept in their packed uint32 form.
type Status struct {
	negative bool
	zero     bool
	carry    bool
	overflow bool

	// interrupt disable bits. a set bit means the interrupt is masked
	irqDisable bool
	fiqDisable bool

	// the T bit. set when executing the Thumb instruction set
	thumb bool

	mode Mode
}

func (sr Status) String() string {
	s := strings.Builder{}

	if sr.negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if sr.overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	s.WriteRune(' ')
	if sr.irqDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.fiqDisable {
		s.WriteRune('F')
	} else {
		s.WriteRune('f')
	}
	if sr.thumb {
		s.WriteRune('T')
	} else {
		s.WriteRune('t')
	}

	s.WriteRune(' ')
	s.WriteString(sr.mode.String())

	return s.String()
}

// Value returns the status register packed into a uint32.
func (sr Status) Value() uint32 {
	var v uint32
	if sr.negative {
		v |= statusNegative
	}
	if sr.zero {
		v |= statusZero
	}
	if sr.carry {
		v |= statusCarry
	}
	if sr.overflow {
		v |= statusOverflow
	}
	if sr.irqDisable {
		v |= statusIRQ
	}
	if sr.fiqDisable {
		v |= statusFIQ
	}
	if sr.thumb {
		v |= statusThumb
	}
	return v | uint32(sr.mode)
}

// SetValue unpacks the uint32 value into the status register. The mode bits
// are not checked for validity.
func (sr *Status) SetValue(v uint32) {
	sr.negative = v&statusNegative == statusNegative
	sr.zero = v&statusZero == statusZero
	sr.carry = v&statusCarry == statusCarry
	sr.overflow = v&statusOverflow == statusOverflow
	sr.irqDisable = v&statusIRQ == statusIRQ
	sr.fiqDisable = v&statusFIQ == statusFIQ
	sr.thumb = v&statusThumb == statusThumb
	sr.mode = Mode(v & statusMode)
}

// Mode returns the current processor mode.
func (sr Status) Mode() Mode {
	return sr.mode
}

// Thumb returns true if the Thumb instruction set is active.
func (sr Status) Thumb() bool {
	return sr.thumb
}

// IRQDisabled returns true if the I bit is set.
func (sr Status) IRQDisabled() bool {
	return sr.irqDisable
}

// Flags returns the state of the N, Z, C and V flags.
func (sr Status) Flags() (n bool, z bool, c bool, v bool) {
	return sr.negative, sr.zero, sr.carry, sr.overflow
}

func (sr *Status) setNZ(a uint32) {
	sr.negative = a&0x80000000 == 0x80000000
	sr.zero = a == 0x00
}

// sets the N and Z flags from the 64bit result of a long multiply
func (sr *Status) setNZ64(a uint64) {
	sr.negative = a&0x8000000000000000 == 0x8000000000000000
	sr.zero = a == 0x00
}

func (sr *Status) setCarry(a bool) {
	sr.carry = a
}

func (sr *Status) setOverflow(a bool) {
	sr.overflow = a
}

// addWithCarry returns the result of a+b+carryIn along with the carry and
// overflow outputs.
//
// subtraction is performed by inverting the second operand. for SUB and CMP
// the carry in is set. for SBC and RSC the carry in is the current carry flag.
// the carry out is therefore set when there is no borrow.
//
// the overflow is set when the two operands have the same sign and the result
// has a different sign. with the operand inverted this is the same as the
// subtraction formula (a^b)&(a^r)
func addWithCarry(a, b uint32, carryIn bool) (result uint32, carry bool, overflow bool) {
	r := uint64(a) + uint64(b)
	if carryIn {
		r++
	}
	result = uint32(r)
	carry = r > 0xffffffff
	overflow = ^(a^b)&(a^result)&0x80000000 == 0x80000000
	return result, carry, overflow
}
