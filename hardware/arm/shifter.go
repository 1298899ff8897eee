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

import "math/bits"

// the four shift types found in bits 5 and 6 of data processing and single
// data transfer instructions, and bits 11 and 12 of the Thumb move shifted
// register instruction
type shiftType uint32

const (
	shiftLSL shiftType = iota
	shiftLSR
	shiftASR
	shiftROR
)

// ShiftMnemonics are the names of the shift types in the order they are
// encoded.
var ShiftMnemonics = [4]string{"LSL", "LSR", "ASR", "ROR"}

// shift implements the barrel shifter. returns the shifted value and the
// carry out of the shifter
//
// "4.5.2 Shifts" in the "ARM7TDMI Data Sheet"
//
// an immediate shift amount of zero has a special meaning for LSR, ASR and
// ROR. a register specified amount of zero leaves the value and carry
// unchanged for all shift types
func shift(value uint32, typ shiftType, amount uint32, byRegister bool, carry bool) (uint32, bool) {
	if byRegister {
		if amount == 0 {
			return value, carry
		}
	} else if amount == 0 {
		switch typ {
		case shiftLSL:
			return value, carry
		case shiftLSR:
			// "The form of the shift field which might be expected to
			// correspond to LSR #0 is used to encode LSR #32"
			return 0, value&0x80000000 == 0x80000000
		case shiftASR:
			// "The form of the shift field which might be expected to give
			// ASR #0 is used to encode ASR #32"
			if value&0x80000000 == 0x80000000 {
				return 0xffffffff, true
			}
			return 0, false
		case shiftROR:
			// "The form of the shift field which might be expected to give
			// ROR #0 is used to encode a special function of the barrel
			// shifter, rotate right extended (RRX)"
			var c uint32
			if carry {
				c = 0x80000000
			}
			return c | value>>1, value&0x01 == 0x01
		}
	}

	switch typ {
	case shiftLSL:
		if amount < 32 {
			return value << amount, value&(1<<(32-amount)) != 0
		}
		if amount == 32 {
			return 0, value&0x01 == 0x01
		}
		return 0, false

	case shiftLSR:
		if amount < 32 {
			return value >> amount, value&(1<<(amount-1)) != 0
		}
		if amount == 32 {
			return 0, value&0x80000000 == 0x80000000
		}
		return 0, false

	case shiftASR:
		if amount < 32 {
			return uint32(int32(value) >> amount), value&(1<<(amount-1)) != 0
		}
		if value&0x80000000 == 0x80000000 {
			return 0xffffffff, true
		}
		return 0, false

	case shiftROR:
		amount %= 32
		if amount == 0 {
			// rotation by a multiple of 32 leaves the value unchanged
			return value, value&0x80000000 == 0x80000000
		}
		return bits.RotateLeft32(value, -int(amount)), value&(1<<(amount-1)) != 0
	}

	return value, carry
}

// rotatedImmediate returns the immediate operand of a data processing or MSR
// instruction. the carry out is bit 31 of the result if there was a rotation
func rotatedImmediate(opcode uint32, carry bool) (uint32, bool) {
	imm := opcode & 0xff
	rotate := ((opcode >> 8) & 0x0f) * 2
	if rotate == 0 {
		return imm, carry
	}
	v := bits.RotateLeft32(imm, -int(rotate))
	return v, v&0x80000000 == 0x80000000
}

// shiftedRegister returns the second operand of a data processing
// instruction that is not immediate. returns true if the shift amount came
// from a register
func (arm *ARM) shiftedRegister(opcode uint32) (uint32, bool, bool) {
	rm := int(opcode & 0x0f)
	typ := shiftType((opcode >> 5) & 0x03)

	if opcode&0x10 == 0x10 {
		// "4.5.5 Using R15 as an operand"
		//
		// "If a register is used to specify the shift amount the PC will be
		// 12 bytes ahead"
		rs := int((opcode >> 8) & 0x0f)
		amount := arm.state.registers[rs] & 0xff
		v, c := shift(arm.readRegisterAhead(rm), typ, amount, true, arm.state.status.carry)
		return v, c, true
	}

	amount := (opcode >> 7) & 0x1f
	v, c := shift(arm.readRegister(rm), typ, amount, false, arm.state.status.carry)
	return v, c, false
}
