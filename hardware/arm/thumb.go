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

// ThumbALUMnemonics are the names of the format 4 ALU operations in the order
// they are encoded.
var ThumbALUMnemonics = [16]string{
	"AND", "EOR", "LSL", "LSR", "ASR", "ADC", "SBC", "ROR",
	"TST", "NEG", "CMP", "CMN", "ORR", "MUL", "BIC", "MVN",
}

func thumbUndefined(arm *ARM, opcode uint16) Cycles {
	arm.decodeError(UndefinedInstruction, uint32(opcode))
	return Cycles{}
}

func thumbMoveShiftedRegister(arm *ARM, opcode uint16) Cycles {
	// format 1 - Move shifted register
	op := shiftType((opcode & 0x1800) >> 11)
	amount := uint32((opcode & 0x07c0) >> 6)
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	v, c := shift(arm.state.registers[srcReg], op, amount, false, arm.state.status.carry)
	arm.state.registers[destReg] = v
	arm.state.status.setNZ(v)
	arm.state.status.setCarry(c)

	return cyclesDataOp
}

func thumbAddSubtract(arm *ARM, opcode uint16) Cycles {
	// format 2 - Add/subtract
	immediate := opcode&0x0400 == 0x0400
	subtract := opcode&0x0200 == 0x0200
	imm := uint32((opcode & 0x01c0) >> 6)
	srcReg := (opcode & 0x038) >> 3
	destReg := opcode & 0x07

	// value to subtract is either immediate or taken from a register
	val := imm
	if !immediate {
		val = arm.state.registers[imm]
	}

	var r uint32
	var c, v bool
	if subtract {
		r, c, v = addWithCarry(arm.state.registers[srcReg], ^val, true)
	} else {
		r, c, v = addWithCarry(arm.state.registers[srcReg], val, false)
	}

	arm.state.registers[destReg] = r
	arm.state.status.setNZ(r)
	arm.state.status.setCarry(c)
	arm.state.status.setOverflow(v)

	return cyclesDataOp
}

// "The instructions in this group perform operations between a Lo register and
// an 8-bit immediate value".
func thumbMovCmpAddSubImm(arm *ARM, opcode uint16) Cycles {
	// format 3 - Move/compare/add/subtract immediate
	op := (opcode & 0x1800) >> 11
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode & 0x00ff)

	switch op {
	case 0b00:
		arm.state.registers[destReg] = imm
		arm.state.status.setNZ(imm)
	case 0b01:
		r, c, v := addWithCarry(arm.state.registers[destReg], ^imm, true)
		arm.state.status.setNZ(r)
		arm.state.status.setCarry(c)
		arm.state.status.setOverflow(v)
	case 0b10:
		r, c, v := addWithCarry(arm.state.registers[destReg], imm, false)
		arm.state.registers[destReg] = r
		arm.state.status.setNZ(r)
		arm.state.status.setCarry(c)
		arm.state.status.setOverflow(v)
	case 0b11:
		r, c, v := addWithCarry(arm.state.registers[destReg], ^imm, true)
		arm.state.registers[destReg] = r
		arm.state.status.setNZ(r)
		arm.state.status.setCarry(c)
		arm.state.status.setOverflow(v)
	}

	return cyclesDataOp
}

// "The following instructions perform ALU operations on a Lo register pair".
func thumbALUOperations(arm *ARM, opcode uint16) Cycles {
	// format 4 - ALU operations
	op := (opcode & 0x03c0) >> 6
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	rd := arm.state.registers[destReg]
	rs := arm.state.registers[srcReg]

	cycles := cyclesDataOp

	var r uint32
	c := arm.state.status.carry
	v := arm.state.status.overflow
	write := true

	switch op {
	case 0b0000:
		// AND
		r = rd & rs
	case 0b0001:
		// EOR
		r = rd ^ rs
	case 0b0010:
		// LSL
		r, c = shift(rd, shiftLSL, rs&0xff, true, c)
		cycles = cycles.Add(cyclesRegShifted)
	case 0b0011:
		// LSR
		r, c = shift(rd, shiftLSR, rs&0xff, true, c)
		cycles = cycles.Add(cyclesRegShifted)
	case 0b0100:
		// ASR
		r, c = shift(rd, shiftASR, rs&0xff, true, c)
		cycles = cycles.Add(cyclesRegShifted)
	case 0b0101:
		// ADC
		r, c, v = addWithCarry(rd, rs, c)
	case 0b0110:
		// SBC
		r, c, v = addWithCarry(rd, ^rs, c)
	case 0b0111:
		// ROR
		r, c = shift(rd, shiftROR, rs&0xff, true, c)
		cycles = cycles.Add(cyclesRegShifted)
	case 0b1000:
		// TST
		r = rd & rs
		write = false
	case 0b1001:
		// NEG
		r, c, v = addWithCarry(0, ^rs, true)
	case 0b1010:
		// CMP
		r, c, v = addWithCarry(rd, ^rs, true)
		write = false
	case 0b1011:
		// CMN
		r, c, v = addWithCarry(rd, rs, false)
		write = false
	case 0b1100:
		// ORR
		r = rd | rs
	case 0b1101:
		// MUL
		//
		// the carry and overflow flags are left unchanged
		r = rd * rs
		cycles.Internal += multiplierCycles(rd, true)
	case 0b1110:
		// BIC
		r = rd &^ rs
	case 0b1111:
		// MVN
		r = ^rs
	}

	if write {
		arm.state.registers[destReg] = r
	}
	arm.state.status.setNZ(r)
	arm.state.status.setCarry(c)
	arm.state.status.setOverflow(v)

	return cycles
}

func thumbHiRegisterOps(arm *ARM, opcode uint16) Cycles {
	// format 5 - Hi register operations/branch exchange
	op := (opcode & 0x300) >> 8
	hi1 := opcode&0x80 == 0x80
	hi2 := opcode&0x40 == 0x40
	srcReg := int((opcode & 0x38) >> 3)
	destReg := int(opcode & 0x07)

	// labels in the data sheet are H1 and H2
	if hi1 {
		destReg += 8
	}
	if hi2 {
		srcReg += 8
	}

	switch op {
	case 0b00:
		// ADD. status flags are not affected
		r := arm.readRegister(destReg) + arm.readRegister(srcReg)
		if destReg == rPC {
			arm.branch(r)
			return cyclesBranch
		}
		arm.state.registers[destReg] = r
	case 0b01:
		// CMP
		r, c, v := addWithCarry(arm.readRegister(destReg), ^arm.readRegister(srcReg), true)
		arm.state.status.setNZ(r)
		arm.state.status.setCarry(c)
		arm.state.status.setOverflow(v)
	case 0b10:
		// MOV. status flags are not affected
		r := arm.readRegister(srcReg)
		if destReg == rPC {
			arm.branch(r)
			return cyclesBranch
		}
		arm.state.registers[destReg] = r
	case 0b11:
		// BX
		//
		// "Bit 0 of the address determines the processor state on
		// completion of the instruction"
		arm.exchange(arm.readRegister(srcReg))
		return cyclesBranch
	}

	return cyclesDataOp
}

func thumbPCRelativeLoad(arm *ARM, opcode uint16) Cycles {
	// format 6 - PC-relative load
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode&0xff) << 2

	// "Bit 1 of the PC value is forced to zero for the purpose of this
	// calculation, so the address is always word-aligned."
	addr := arm.readRegister(rPC)&0xfffffffc + imm
	arm.state.registers[destReg] = arm.read32(addr)

	return cyclesLoad
}

func thumbLoadStoreRegisterOffset(arm *ARM, opcode uint16) Cycles {
	// format 7 - Load/store with register offset
	load := opcode&0x0800 == 0x0800
	byteTransfer := opcode&0x0400 == 0x0400
	offsetReg := (opcode & 0x01c0) >> 6
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	addr := arm.state.registers[baseReg] + arm.state.registers[offsetReg]

	if load {
		if byteTransfer {
			arm.state.registers[reg] = uint32(arm.read8(addr))
		} else {
			arm.state.registers[reg] = arm.readRotated32(addr)
		}
		return cyclesLoad
	}

	if byteTransfer {
		arm.write8(addr, uint8(arm.state.registers[reg]))
	} else {
		arm.write32(addr, arm.state.registers[reg])
	}

	return cyclesStore
}

func thumbLoadStoreSignExtended(arm *ARM, opcode uint16) Cycles {
	// format 8 - Load/store sign-extended byte/halfword
	hi := opcode&0x0800 == 0x0800
	sign := opcode&0x0400 == 0x0400
	offsetReg := (opcode & 0x01c0) >> 6
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	addr := arm.state.registers[baseReg] + arm.state.registers[offsetReg]

	if sign {
		if hi {
			// load sign-extended halfword
			arm.state.registers[reg] = arm.loadSignedHalfword(addr)
		} else {
			// load sign-extended byte
			arm.state.registers[reg] = uint32(int32(int8(arm.read8(addr))))
		}
		return cyclesLoad
	}

	if hi {
		// load halfword
		arm.state.registers[reg] = arm.loadHalfword(addr)
		return cyclesLoad
	}

	// store halfword
	arm.write16(addr, uint16(arm.state.registers[reg]))

	return cyclesStore
}

func thumbLoadStoreImmOffset(arm *ARM, opcode uint16) Cycles {
	// format 9 - Load/store with immediate offset
	load := opcode&0x0800 == 0x0800
	byteTransfer := opcode&0x1000 == 0x1000
	offset := uint32((opcode & 0x07c0) >> 6)
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	// "For word accesses (B = 0), the value specified by #Imm is a full
	// 7-bit address, but must be word-aligned (ie with bits 1:0 set to 0),
	// since the assembler places #Imm >> 2 in the Offset5 field."
	if !byteTransfer {
		offset <<= 2
	}

	addr := arm.state.registers[baseReg] + offset

	if load {
		if byteTransfer {
			arm.state.registers[reg] = uint32(arm.read8(addr))
		} else {
			arm.state.registers[reg] = arm.readRotated32(addr)
		}
		return cyclesLoad
	}

	if byteTransfer {
		arm.write8(addr, uint8(arm.state.registers[reg]))
	} else {
		arm.write32(addr, arm.state.registers[reg])
	}

	return cyclesStore
}

func thumbLoadStoreHalfword(arm *ARM, opcode uint16) Cycles {
	// format 10 - Load/store halfword
	load := opcode&0x0800 == 0x0800
	offset := uint32((opcode&0x07c0)>>6) << 1
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	addr := arm.state.registers[baseReg] + offset

	if load {
		arm.state.registers[reg] = arm.loadHalfword(addr)
		return cyclesLoad
	}

	arm.write16(addr, uint16(arm.state.registers[reg]))

	return cyclesStore
}

func thumbSPRelativeLoadStore(arm *ARM, opcode uint16) Cycles {
	// format 11 - SP-relative load/store
	load := opcode&0x0800 == 0x0800
	reg := (opcode & 0x07ff) >> 8
	offset := uint32(opcode&0xff) << 2

	addr := arm.state.registers[rSP] + offset

	if load {
		arm.state.registers[reg] = arm.readRotated32(addr)
		return cyclesLoad
	}

	arm.write32(addr, arm.state.registers[reg])

	return cyclesStore
}

func thumbLoadAddress(arm *ARM, opcode uint16) Cycles {
	// format 12 - Load address
	sp := opcode&0x0800 == 0x800
	destReg := (opcode & 0x700) >> 8
	offset := uint32(opcode&0x00ff) << 2

	if sp {
		arm.state.registers[destReg] = arm.state.registers[rSP] + offset
	} else {
		// "Where the PC is used as the source register (SP = 0), bit 1 of
		// the PC is always read as 0."
		arm.state.registers[destReg] = arm.readRegister(rPC)&0xfffffffc + offset
	}

	return cyclesDataOp
}

func thumbAddOffsetToSP(arm *ARM, opcode uint16) Cycles {
	// format 13 - Add offset to stack pointer
	sign := opcode&0x80 == 0x80
	imm := uint32(opcode&0x7f) << 2

	// status register not affected
	if sign {
		arm.state.registers[rSP] -= imm
	} else {
		arm.state.registers[rSP] += imm
	}

	return cyclesDataOp
}

func thumbPushPopRegisters(arm *ARM, opcode uint16) Cycles {
	// format 14 - Push/pop registers

	// the ARM pushes registers in descending order and pops in ascending
	// order. in other words the LR is pushed first and PC is popped last
	load := opcode&0x0800 == 0x0800
	pclr := opcode&0x0100 == 0x0100
	regList := uint8(opcode & 0x00ff)

	n := bits.OnesCount8(regList)
	if pclr {
		n++
	}

	if load {
		// "7.10 Load Multiple Registers" in "ARM7TDMI-S Technical Reference
		// Manual r4p3"
		addr := arm.state.registers[rSP]
		for r := 0; r < 8; r++ {
			if regList&(1<<r) != 0 {
				arm.state.registers[r] = arm.read32(addr)
				addr += 4
			}
		}

		if pclr {
			// the ARM7TDMI does not change state when popping the PC
			v := arm.read32(addr)
			addr += 4
			arm.state.registers[rSP] = addr
			arm.branch(v)
			return Cycles{Sequential: n + 1, NonSequential: 2, Internal: 1}
		}

		arm.state.registers[rSP] = addr
		return Cycles{Sequential: n, NonSequential: 1, Internal: 1}
	}

	// an empty push without the LR stores nothing
	if n == 0 {
		return cyclesDataOp
	}

	// "7.11 Store Multiple Registers" in "ARM7TDMI-S Technical Reference
	// Manual r4p3"
	addr := arm.state.registers[rSP] - uint32(n*4)
	arm.state.registers[rSP] = addr
	for r := 0; r < 8; r++ {
		if regList&(1<<r) != 0 {
			arm.write32(addr, arm.state.registers[r])
			addr += 4
		}
	}
	if pclr {
		arm.write32(addr, arm.state.registers[rLR])
	}

	return Cycles{Sequential: n - 1, NonSequential: 2}
}

func thumbMultipleLoadStore(arm *ARM, opcode uint16) Cycles {
	// format 15 - Multiple load/store
	load := opcode&0x0800 == 0x0800
	baseReg := int((opcode & 0x07ff) >> 8)
	regList := uint8(opcode & 0xff)

	addr := arm.state.registers[baseReg]

	// an empty register list transfers the PC and increments the base by
	// 0x40
	if regList == 0 {
		if load {
			arm.state.registers[baseReg] = addr + 0x40
			arm.branch(arm.read32(addr))
			return Cycles{Sequential: 2, NonSequential: 2, Internal: 1}
		}
		arm.write32(addr, arm.readRegister(rPC)+2)
		arm.state.registers[baseReg] = addr + 0x40
		return cyclesStore
	}

	n := bits.OnesCount8(regList)
	newBase := addr + uint32(n*4)

	if load {
		// "7.10 Load Multiple Registers" in "ARM7TDMI-S Technical Reference
		// Manual r4p3"
		//
		// write back is suppressed if the base is in the list
		if regList&(1<<baseReg) == 0 {
			arm.state.registers[baseReg] = newBase
		}
		for r := 0; r < 8; r++ {
			if regList&(1<<r) != 0 {
				arm.state.registers[r] = arm.read32(addr)
				addr += 4
			}
		}
		return Cycles{Sequential: n, NonSequential: 1, Internal: 1}
	}

	// "7.11 Store Multiple Registers" in "ARM7TDMI-S Technical Reference
	// Manual r4p3"
	//
	// the base register is stored with its original value if it is the
	// first register in the list. otherwise the updated value is stored
	first := true
	for r := 0; r < 8; r++ {
		if regList&(1<<r) == 0 {
			continue
		}
		v := arm.state.registers[r]
		if r == baseReg && !first {
			v = newBase
		}
		arm.write32(addr, v)
		addr += 4
		first = false
	}
	arm.state.registers[baseReg] = newBase

	return Cycles{Sequential: n - 1, NonSequential: 2}
}

func thumbConditionalBranch(arm *ARM, opcode uint16) Cycles {
	// format 16 - Conditional branch
	cond := uint32((opcode & 0x0f00) >> 8)

	// condition 0b1111 is the SWI instruction. 0b1110 is undefined
	if cond == 0b1110 {
		arm.decodeError(UndefinedInstruction, uint32(opcode))
		return Cycles{}
	}

	if !arm.state.status.condition(cond) {
		return cyclesDataOp
	}

	offset := uint32(int32(int8(opcode&0xff)) << 1)
	arm.branch(arm.readRegister(rPC) + offset)

	return cyclesBranch
}

func thumbSoftwareInterrupt(arm *ARM, opcode uint16) Cycles {
	// format 17 - Software interrupt
	return arm.softwareInterrupt(uint32(opcode & 0xff))
}

func thumbUnconditionalBranch(arm *ARM, opcode uint16) Cycles {
	// format 18 - Unconditional branch
	// the sign extension needs to happen on the 16 bit value before
	// converting to 32 bits
	offset := uint32(int32(int16(opcode<<5)) >> 4)

	arm.branch(arm.readRegister(rPC) + offset)

	return cyclesBranch
}

func thumbLongBranchWithLink(arm *ARM, opcode uint16) Cycles {
	// format 19 - Long branch with link
	low := opcode&0x800 == 0x0800
	offset := uint32(opcode & 0x07ff)

	// "The BL instruction is a 32-bit instruction that is split into two
	// 16-bit halves. In the first instruction the Offset field contains the
	// upper 11 bits of the target address. This is shifted left by 12 bits
	// and added to the current PC address. The resulting address is placed
	// in LR."
	if !low {
		offset = uint32(int32(offset<<21) >> 9)
		arm.state.registers[rLR] = arm.readRegister(rPC) + offset
		return cyclesDataOp
	}

	// "In the second instruction the Offset field contains an 11-bit
	// representation lower half of the target address. This is shifted left
	// by 1 bit and added to LR. LR, which now contains the full 23-bit
	// address, is placed in PC, the address of the instruction following
	// the BL is placed in LR and bit 0 of LR is set."
	target := arm.state.registers[rLR] + offset<<1
	arm.state.registers[rLR] = arm.state.registers[rPC] | 0x01
	arm.branch(target)

	return cyclesBranch
}
