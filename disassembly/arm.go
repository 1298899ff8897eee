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

package disassembly

import (
	"fmt"
	"math/bits"

	"github.com/jetsetilly/gopheradvance/hardware/arm"
)

// ARM disassembles a single 32bit ARM instruction found at the address. The
// address is needed to show the destination of branches.
func ARM(addr uint32, opcode uint32) Entry {
	cat := arm.ClassifyARM(opcode)

	e := Entry{
		Addr:   addr,
		Opcode: opcode,
		Size:   4,
		Class:  cat.String(),
	}

	cond := arm.ConditionMnemonics[opcode>>28]

	// the reserved condition is never executed
	if opcode>>28 == 0b1111 {
		e.Operator = undefinedOperator
		return e
	}

	switch cat {
	case arm.DataProcessing:
		armDataProcessing(&e, opcode, cond)
	case arm.PSRTransferMRS:
		armMRS(&e, opcode, cond)
	case arm.PSRTransferMSR:
		armMSR(&e, opcode, cond)
	case arm.Multiply:
		armMultiply(&e, opcode, cond)
	case arm.MultiplyLong:
		armMultiplyLong(&e, opcode, cond)
	case arm.SingleDataSwap:
		armSwap(&e, opcode, cond)
	case arm.BranchAndExchange:
		e.Operator = "BX" + cond
		e.Operand = registerName(int(opcode & 0x0f))
	case arm.HalfwordTransferReg, arm.HalfwordTransferImm:
		armHalfwordTransfer(&e, opcode, cond)
	case arm.SingleDataTransfer:
		armSingleDataTransfer(&e, opcode, cond)
	case arm.BlockDataTransfer:
		armBlockDataTransfer(&e, opcode, cond)
	case arm.Branch:
		armBranch(&e, opcode, cond)
	case arm.SoftwareInterrupt:
		e.Operator = "SWI" + cond
		e.Operand = fmt.Sprintf("#$%06x", opcode&0x00ffffff)
	case arm.CoprocessorDataTransfer:
		if opcode&0x00100000 == 0x00100000 {
			e.Operator = "LDC" + cond
		} else {
			e.Operator = "STC" + cond
		}
		e.Operand = fmt.Sprintf("p%d", (opcode>>8)&0x0f)
	case arm.CoprocessorDataOperation:
		e.Operator = "CDP" + cond
		e.Operand = fmt.Sprintf("p%d", (opcode>>8)&0x0f)
	case arm.CoprocessorRegisterTransfer:
		if opcode&0x00100000 == 0x00100000 {
			e.Operator = "MRC" + cond
		} else {
			e.Operator = "MCR" + cond
		}
		e.Operand = fmt.Sprintf("p%d", (opcode>>8)&0x0f)
	default:
		e.Operator = undefinedOperator
	}

	return e
}

// the second operand of a data processing instruction when it is a register.
// also used for the register offset of a single data transfer
func shiftedRegister(opcode uint32) string {
	rm := registerName(int(opcode & 0x0f))
	typ := (opcode >> 5) & 0x03
	mnemonic := arm.ShiftMnemonics[typ]

	if opcode&0x10 == 0x10 {
		rs := registerName(int((opcode >> 8) & 0x0f))
		return fmt.Sprintf("%s, %s %s", rm, mnemonic, rs)
	}

	amount := (opcode >> 7) & 0x1f
	if amount == 0 {
		switch typ {
		case 0b00:
			return rm
		case 0b11:
			return fmt.Sprintf("%s, RRX", rm)
		default:
			// LSR #0 and ASR #0 are encodings of a shift by 32
			amount = 32
		}
	}

	return fmt.Sprintf("%s, %s #%d", rm, mnemonic, amount)
}

func armDataProcessing(e *Entry, opcode uint32, cond string) {
	op := (opcode >> 21) & 0x0f
	setFlags := opcode&0x00100000 == 0x00100000
	rn := registerName(int((opcode >> 16) & 0x0f))
	rd := registerName(int((opcode >> 12) & 0x0f))

	var operand2 string
	if opcode&0x02000000 == 0x02000000 {
		imm := bits.RotateLeft32(opcode&0xff, -int(((opcode>>8)&0x0f)*2))
		operand2 = fmt.Sprintf("#$%x", imm)
	} else {
		operand2 = shiftedRegister(opcode)
	}

	e.Operator = arm.DataProcessingMnemonics[op] + cond

	switch op {
	case 0b1000, 0b1001, 0b1010, 0b1011:
		// the test operations always set the flags so the S is implied
		e.Operand = fmt.Sprintf("%s, %s", rn, operand2)
	case 0b1101, 0b1111:
		if setFlags {
			e.Operator += "S"
		}
		e.Operand = fmt.Sprintf("%s, %s", rd, operand2)
	default:
		if setFlags {
			e.Operator += "S"
		}
		e.Operand = fmt.Sprintf("%s, %s, %s", rd, rn, operand2)
	}
}

func statusRegisterName(opcode uint32) string {
	if opcode&0x00400000 == 0x00400000 {
		return "SPSR"
	}
	return "CPSR"
}

func armMRS(e *Entry, opcode uint32, cond string) {
	e.Operator = "MRS" + cond
	e.Operand = fmt.Sprintf("%s, %s", registerName(int((opcode>>12)&0x0f)), statusRegisterName(opcode))
}

func armMSR(e *Entry, opcode uint32, cond string) {
	e.Operator = "MSR" + cond

	// field mask. c is the control field and f is the flags field. the s and
	// x fields are not used by the ARM7TDMI but are shown if they are set
	fields := ""
	for i, f := range []string{"c", "x", "s", "f"} {
		if opcode&(1<<(16+i)) != 0 {
			fields += f
		}
	}

	var src string
	if opcode&0x02000000 == 0x02000000 {
		imm := bits.RotateLeft32(opcode&0xff, -int(((opcode>>8)&0x0f)*2))
		src = fmt.Sprintf("#$%x", imm)
	} else {
		src = registerName(int(opcode & 0x0f))
	}

	e.Operand = fmt.Sprintf("%s_%s, %s", statusRegisterName(opcode), fields, src)
}

func armMultiply(e *Entry, opcode uint32, cond string) {
	rd := registerName(int((opcode >> 16) & 0x0f))
	rn := registerName(int((opcode >> 12) & 0x0f))
	rs := registerName(int((opcode >> 8) & 0x0f))
	rm := registerName(int(opcode & 0x0f))

	s := ""
	if opcode&0x00100000 == 0x00100000 {
		s = "S"
	}

	if opcode&0x00200000 == 0x00200000 {
		e.Operator = "MLA" + cond + s
		e.Operand = fmt.Sprintf("%s, %s, %s, %s", rd, rm, rs, rn)
		return
	}

	e.Operator = "MUL" + cond + s
	e.Operand = fmt.Sprintf("%s, %s, %s", rd, rm, rs)
}

func armMultiplyLong(e *Entry, opcode uint32, cond string) {
	rdHi := registerName(int((opcode >> 16) & 0x0f))
	rdLo := registerName(int((opcode >> 12) & 0x0f))
	rs := registerName(int((opcode >> 8) & 0x0f))
	rm := registerName(int(opcode & 0x0f))

	sign := "U"
	if opcode&0x00400000 == 0x00400000 {
		sign = "S"
	}

	op := "MULL"
	if opcode&0x00200000 == 0x00200000 {
		op = "MLAL"
	}

	s := ""
	if opcode&0x00100000 == 0x00100000 {
		s = "S"
	}

	e.Operator = sign + op + cond + s
	e.Operand = fmt.Sprintf("%s, %s, %s, %s", rdLo, rdHi, rm, rs)
}

func armSwap(e *Entry, opcode uint32, cond string) {
	e.Operator = "SWP" + cond
	if opcode&0x00400000 == 0x00400000 {
		e.Operator += "B"
	}
	e.Operand = fmt.Sprintf("%s, %s, [%s]",
		registerName(int((opcode>>12)&0x0f)),
		registerName(int(opcode&0x0f)),
		registerName(int((opcode>>16)&0x0f)))
}

// formats the address of a transfer instruction. the offset string should
// already include the sign of the offset. an empty offset means the offset
// is zero
func addressing(rn string, offset string, preIndex bool, writeBack bool) string {
	if !preIndex {
		if offset == "" {
			return fmt.Sprintf("[%s]", rn)
		}
		return fmt.Sprintf("[%s], %s", rn, offset)
	}

	wb := ""
	if writeBack {
		wb = "!"
	}

	if offset == "" {
		return fmt.Sprintf("[%s]%s", rn, wb)
	}
	return fmt.Sprintf("[%s, %s]%s", rn, offset, wb)
}

func armHalfwordTransfer(e *Entry, opcode uint32, cond string) {
	preIndex := opcode&0x01000000 == 0x01000000
	up := opcode&0x00800000 == 0x00800000
	writeBack := opcode&0x00200000 == 0x00200000
	load := opcode&0x00100000 == 0x00100000
	rn := registerName(int((opcode >> 16) & 0x0f))
	rd := registerName(int((opcode >> 12) & 0x0f))
	sh := (opcode >> 5) & 0x03

	sign := ""
	if !up {
		sign = "-"
	}

	var offset string
	if opcode&0x00400000 == 0x00400000 {
		imm := (opcode>>4)&0xf0 | opcode&0x0f
		if imm != 0 {
			offset = fmt.Sprintf("#%s$%x", sign, imm)
		}
	} else {
		offset = sign + registerName(int(opcode&0x0f))
	}

	switch {
	case load && sh == 0b01:
		e.Operator = "LDR" + cond + "H"
	case load && sh == 0b10:
		e.Operator = "LDR" + cond + "SB"
	case load && sh == 0b11:
		e.Operator = "LDR" + cond + "SH"
	case !load && sh == 0b01:
		e.Operator = "STR" + cond + "H"
	default:
		// signed stores are not defined for the ARM7TDMI
		e.Operator = undefinedOperator
		return
	}

	e.Operand = fmt.Sprintf("%s, %s", rd, addressing(rn, offset, preIndex, writeBack))
}

func armSingleDataTransfer(e *Entry, opcode uint32, cond string) {
	preIndex := opcode&0x01000000 == 0x01000000
	up := opcode&0x00800000 == 0x00800000
	byteTransfer := opcode&0x00400000 == 0x00400000
	writeBack := opcode&0x00200000 == 0x00200000
	load := opcode&0x00100000 == 0x00100000
	rn := registerName(int((opcode >> 16) & 0x0f))
	rd := registerName(int((opcode >> 12) & 0x0f))

	sign := ""
	if !up {
		sign = "-"
	}

	// the meaning of the I bit is the opposite of the data processing
	// instructions. a set bit means a register offset
	var offset string
	if opcode&0x02000000 == 0x02000000 {
		offset = sign + shiftedRegister(opcode)
	} else if imm := opcode & 0x0fff; imm != 0 {
		offset = fmt.Sprintf("#%s$%x", sign, imm)
	}

	if load {
		e.Operator = "LDR" + cond
	} else {
		e.Operator = "STR" + cond
	}
	if byteTransfer {
		e.Operator += "B"
	}

	// post-indexed transfers with the W bit set are the user mode (T)
	// variants
	if !preIndex && writeBack {
		e.Operator += "T"
	}

	e.Operand = fmt.Sprintf("%s, %s", rd, addressing(rn, offset, preIndex, writeBack))
}

func armBlockDataTransfer(e *Entry, opcode uint32, cond string) {
	preIndex := opcode&0x01000000 == 0x01000000
	up := opcode&0x00800000 == 0x00800000
	psr := opcode&0x00400000 == 0x00400000
	writeBack := opcode&0x00200000 == 0x00200000
	load := opcode&0x00100000 == 0x00100000
	rn := registerName(int((opcode >> 16) & 0x0f))

	if load {
		e.Operator = "LDM" + cond
	} else {
		e.Operator = "STM" + cond
	}

	switch {
	case up && !preIndex:
		e.Operator += "IA"
	case up && preIndex:
		e.Operator += "IB"
	case !up && !preIndex:
		e.Operator += "DA"
	default:
		e.Operator += "DB"
	}

	if writeBack {
		rn += "!"
	}

	e.Operand = fmt.Sprintf("%s, %s", rn, registerList(opcode&0xffff, 16))
	if psr {
		e.Operand += "^"
	}
}

func armBranch(e *Entry, opcode uint32, cond string) {
	if opcode&0x01000000 == 0x01000000 {
		e.Operator = "BL" + cond
	} else {
		e.Operator = "B" + cond
	}

	// the offset is relative to the PC, which is two instructions ahead
	offset := signExtend(opcode&0x00ffffff, 24) << 2
	e.Operand = fmt.Sprintf("$%08x", e.Addr+8+uint32(offset))
}
