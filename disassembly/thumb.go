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

	"github.com/jetsetilly/gopheradvance/hardware/arm"
)

// Thumb disassembles a single 16bit Thumb instruction found at the address.
// The address is needed to show the destination of branches.
//
// Each half of the long branch with link is disassembled separately. Use
// ThumbLongBranch() to disassemble both halves together.
func Thumb(addr uint32, opcode uint16) Entry {
	format := arm.ClassifyThumb(opcode)

	e := Entry{
		Addr:   addr,
		Opcode: uint32(opcode),
		Thumb:  true,
		Size:   2,
		Class:  format.String(),
	}

	switch format {
	case arm.ThumbMoveShiftedRegister:
		// format 1
		e.Operator = arm.ShiftMnemonics[(opcode>>11)&0x03]
		amount := (opcode >> 6) & 0x1f
		if amount == 0 && e.Operator != "LSL" {
			amount = 32
		}
		e.Operand = fmt.Sprintf("R%d, R%d, #%d", opcode&0x07, (opcode>>3)&0x07, amount)

	case arm.ThumbAddSubtract:
		// format 2
		if opcode&0x0200 == 0x0200 {
			e.Operator = "SUB"
		} else {
			e.Operator = "ADD"
		}
		rn := (opcode >> 6) & 0x07
		if opcode&0x0400 == 0x0400 {
			e.Operand = fmt.Sprintf("R%d, R%d, #%d", opcode&0x07, (opcode>>3)&0x07, rn)
		} else {
			e.Operand = fmt.Sprintf("R%d, R%d, R%d", opcode&0x07, (opcode>>3)&0x07, rn)
		}

	case arm.ThumbMovCmpAddSubImm:
		// format 3
		e.Operator = [4]string{"MOV", "CMP", "ADD", "SUB"}[(opcode>>11)&0x03]
		e.Operand = fmt.Sprintf("R%d, #$%02x", (opcode>>8)&0x07, opcode&0xff)

	case arm.ThumbALUOperations:
		// format 4
		e.Operator = arm.ThumbALUMnemonics[(opcode>>6)&0x0f]
		e.Operand = fmt.Sprintf("R%d, R%d", opcode&0x07, (opcode>>3)&0x07)

	case arm.ThumbHiRegisterOps:
		// format 5
		rd := int(opcode&0x07) | int((opcode>>4)&0x08)
		rs := int((opcode >> 3) & 0x0f)
		switch (opcode >> 8) & 0x03 {
		case 0b00:
			e.Operator = "ADD"
		case 0b01:
			e.Operator = "CMP"
		case 0b10:
			e.Operator = "MOV"
		case 0b11:
			e.Operator = "BX"
			e.Operand = registerName(rs)
			return e
		}
		e.Operand = fmt.Sprintf("%s, %s", registerName(rd), registerName(rs))

	case arm.ThumbPCRelativeLoad:
		// format 6. the PC value is word aligned
		offset := uint32(opcode&0xff) << 2
		e.Operator = "LDR"
		e.Operand = fmt.Sprintf("R%d, [PC, #$%x] ; $%08x", (opcode>>8)&0x07, offset, (addr+4)&^0x03+offset)

	case arm.ThumbLoadStoreRegisterOffset:
		// format 7
		e.Operator = [4]string{"STR", "STRB", "LDR", "LDRB"}[(opcode>>10)&0x03]
		e.Operand = fmt.Sprintf("R%d, [R%d, R%d]", opcode&0x07, (opcode>>3)&0x07, (opcode>>6)&0x07)

	case arm.ThumbLoadStoreSignExtended:
		// format 8
		e.Operator = [4]string{"STRH", "LDSB", "LDRH", "LDSH"}[(opcode>>10)&0x03]
		e.Operand = fmt.Sprintf("R%d, [R%d, R%d]", opcode&0x07, (opcode>>3)&0x07, (opcode>>6)&0x07)

	case arm.ThumbLoadStoreImmOffset:
		// format 9. word transfers have the offset in words
		offset := (opcode >> 6) & 0x1f
		byteTransfer := opcode&0x1000 == 0x1000
		if !byteTransfer {
			offset <<= 2
		}
		e.Operator = [4]string{"STR", "LDR", "STRB", "LDRB"}[(opcode>>11)&0x03]
		e.Operand = fmt.Sprintf("R%d, [R%d, #$%02x]", opcode&0x07, (opcode>>3)&0x07, offset)

	case arm.ThumbLoadStoreHalfword:
		// format 10
		if opcode&0x0800 == 0x0800 {
			e.Operator = "LDRH"
		} else {
			e.Operator = "STRH"
		}
		e.Operand = fmt.Sprintf("R%d, [R%d, #$%02x]", opcode&0x07, (opcode>>3)&0x07, ((opcode>>6)&0x1f)<<1)

	case arm.ThumbSPRelativeLoadStore:
		// format 11
		if opcode&0x0800 == 0x0800 {
			e.Operator = "LDR"
		} else {
			e.Operator = "STR"
		}
		e.Operand = fmt.Sprintf("R%d, [SP, #$%02x]", (opcode>>8)&0x07, (opcode&0xff)<<2)

	case arm.ThumbLoadAddress:
		// format 12
		src := "PC"
		if opcode&0x0800 == 0x0800 {
			src = "SP"
		}
		e.Operator = "ADD"
		e.Operand = fmt.Sprintf("R%d, %s, #$%02x", (opcode>>8)&0x07, src, (opcode&0xff)<<2)

	case arm.ThumbAddOffsetToSP:
		// format 13
		e.Operator = "ADD"
		if opcode&0x80 == 0x80 {
			e.Operand = fmt.Sprintf("SP, #-$%02x", (opcode&0x7f)<<2)
		} else {
			e.Operand = fmt.Sprintf("SP, #$%02x", (opcode&0x7f)<<2)
		}

	case arm.ThumbPushPopRegisters:
		// format 14
		list := uint32(opcode & 0xff)
		if opcode&0x0800 == 0x0800 {
			e.Operator = "POP"
			if opcode&0x0100 == 0x0100 {
				list |= 1 << 15
			}
		} else {
			e.Operator = "PUSH"
			if opcode&0x0100 == 0x0100 {
				list |= 1 << 14
			}
		}
		e.Operand = registerList(list, 16)

	case arm.ThumbMultipleLoadStore:
		// format 15
		if opcode&0x0800 == 0x0800 {
			e.Operator = "LDMIA"
		} else {
			e.Operator = "STMIA"
		}
		e.Operand = fmt.Sprintf("R%d!, %s", (opcode>>8)&0x07, registerList(uint32(opcode&0xff), 8))

	case arm.ThumbConditionalBranch:
		// format 16
		cond := (opcode >> 8) & 0x0f
		if cond == 0b1110 {
			e.Operator = undefinedOperator
			return e
		}
		offset := signExtend(uint32(opcode&0xff), 8) << 1
		e.Operator = "B" + arm.ConditionMnemonics[cond]
		e.Operand = fmt.Sprintf("$%08x", addr+4+uint32(offset))

	case arm.ThumbSoftwareInterrupt:
		// format 17
		e.Operator = "SWI"
		e.Operand = fmt.Sprintf("#$%02x", opcode&0xff)

	case arm.ThumbUnconditionalBranch:
		// format 18
		offset := signExtend(uint32(opcode&0x07ff), 11) << 1
		e.Operator = "B"
		e.Operand = fmt.Sprintf("$%08x", addr+4+uint32(offset))

	case arm.ThumbLongBranchWithLink:
		// format 19. a half on its own
		if opcode&0x0800 == 0x0800 {
			e.Operator = "BL"
			e.Operand = fmt.Sprintf("LR+$%03x", uint32(opcode&0x07ff)<<1)
		} else {
			offset := signExtend(uint32(opcode&0x07ff), 11) << 12
			e.Operator = "BL"
			e.Operand = fmt.Sprintf("hi $%08x", addr+4+uint32(offset))
		}

	default:
		e.Operator = undefinedOperator
	}

	return e
}

// ThumbLongBranch disassembles both halves of the long branch with link. The
// hi opcode is the first instruction, found at the address. The second
// result is false if the opcodes are not a valid pair.
func ThumbLongBranch(addr uint32, hi uint16, lo uint16) (Entry, bool) {
	if arm.ClassifyThumb(hi) != arm.ThumbLongBranchWithLink || hi&0x0800 != 0 {
		return Entry{}, false
	}
	if arm.ClassifyThumb(lo) != arm.ThumbLongBranchWithLink || lo&0x0800 == 0 {
		return Entry{}, false
	}

	offset := signExtend(uint32(hi&0x07ff), 11) << 12
	offset += int32(lo&0x07ff) << 1

	return Entry{
		Addr:     addr,
		Opcode:   uint32(hi)<<16 | uint32(lo),
		Thumb:    true,
		Size:     4,
		Class:    arm.ThumbLongBranchWithLink.String(),
		Operator: "BL",
		Operand:  fmt.Sprintf("$%08x", addr+4+uint32(offset)),
	}, true
}
