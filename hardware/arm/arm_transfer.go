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

// "4.9 Single Data Transfer (LDR, STR)" in the "ARM7TDMI Data Sheet"
func (arm *ARM) executeSingleDataTransfer(opcode uint32) Cycles {
	registerOffset := opcode&0x02000000 == 0x02000000
	preIndex := opcode&0x01000000 == 0x01000000
	up := opcode&0x00800000 == 0x00800000
	byteTransfer := opcode&0x00400000 == 0x00400000
	writeBack := opcode&0x00200000 == 0x00200000
	load := opcode&0x00100000 == 0x00100000
	rn := int((opcode >> 16) & 0x0f)
	rd := int((opcode >> 12) & 0x0f)

	var offset uint32
	if registerOffset {
		// "4.9.2 Shifted register offset"
		//
		// "The 8 shift control bits are described in the data processing
		// instructions section. However, the register specified shift amounts
		// are not available in this instruction class."
		rm := int(opcode & 0x0f)
		typ := shiftType((opcode >> 5) & 0x03)
		amount := (opcode >> 7) & 0x1f
		offset, _ = shift(arm.readRegister(rm), typ, amount, false, arm.state.status.carry)
	} else {
		offset = opcode & 0x0fff
	}

	base := arm.readRegister(rn)
	indexed := base - offset
	if up {
		indexed = base + offset
	}

	addr := base
	if preIndex {
		addr = indexed
	}

	// "4.9.1 Offsets and auto-indexing"
	//
	// "In the case of post-indexed addressing, the write back bit is
	// redundant and is always set to zero, since the old base value can be
	// retained by setting the offset to zero. Therefore post-indexed data
	// transfers always write back the modified base."
	writeBack = writeBack || !preIndex

	if load {
		var v uint32
		if byteTransfer {
			v = uint32(arm.read8(addr))
		} else {
			v = arm.readRotated32(addr)
		}

		// write back before loading the register. if the base and
		// destination are the same register then the loaded value wins
		if writeBack {
			arm.writeRegister(rn, indexed)
		}

		if rd == rPC {
			arm.branch(v)
			return cyclesLoadPC
		}
		arm.state.registers[rd] = v

		return cyclesLoad
	}

	// "4.9.4 Use of R15"
	//
	// "When R15 is the source register (Rd) of a register store (STR)
	// instruction, the stored value will be address of the instruction plus
	// 12."
	v := arm.readRegisterAhead(rd)
	if byteTransfer {
		arm.write8(addr, uint8(v))
	} else {
		arm.write32(addr, v)
	}

	if writeBack {
		arm.writeRegister(rn, indexed)
	}

	return cyclesStore
}

// "4.10 Halfword and Signed Data Transfer (LDRH/STRH/LDRSB/LDRSH)" in the
// "ARM7TDMI Data Sheet"
func (arm *ARM) executeHalfwordTransfer(opcode uint32) Cycles {
	preIndex := opcode&0x01000000 == 0x01000000
	up := opcode&0x00800000 == 0x00800000
	immediate := opcode&0x00400000 == 0x00400000
	writeBack := opcode&0x00200000 == 0x00200000
	load := opcode&0x00100000 == 0x00100000
	rn := int((opcode >> 16) & 0x0f)
	rd := int((opcode >> 12) & 0x0f)
	sh := (opcode >> 5) & 0x03

	// signed stores are not available on the ARM7TDMI
	if !load && sh != 0b01 {
		arm.decodeError(UndefinedInstruction, opcode)
		return Cycles{}
	}

	var offset uint32
	if immediate {
		offset = (opcode>>4)&0xf0 | opcode&0x0f
	} else {
		offset = arm.readRegister(int(opcode & 0x0f))
	}

	base := arm.readRegister(rn)
	indexed := base - offset
	if up {
		indexed = base + offset
	}

	addr := base
	if preIndex {
		addr = indexed
	}

	writeBack = writeBack || !preIndex

	if load {
		var v uint32
		switch sh {
		case 0b01:
			v = arm.loadHalfword(addr)
		case 0b10:
			v = uint32(int32(int8(arm.read8(addr))))
		case 0b11:
			v = arm.loadSignedHalfword(addr)
		}

		if writeBack {
			arm.writeRegister(rn, indexed)
		}

		if rd == rPC {
			arm.branch(v)
			return cyclesLoadPC
		}
		arm.state.registers[rd] = v

		return cyclesLoad
	}

	arm.write16(addr, uint16(arm.readRegisterAhead(rd)))

	if writeBack {
		arm.writeRegister(rn, indexed)
	}

	return cyclesStore
}

// loadHalfword reads an unsigned halfword. an odd address rotates the
// halfword by eight bits
func (arm *ARM) loadHalfword(addr uint32) uint32 {
	v := uint32(arm.read16(addr))
	if addr&0x01 == 0x01 {
		v = v>>8 | v<<24
	}
	return v
}

// loadSignedHalfword reads a sign extended halfword. an odd address loads
// the sign extended byte instead
func (arm *ARM) loadSignedHalfword(addr uint32) uint32 {
	if addr&0x01 == 0x01 {
		return uint32(int32(int8(arm.read8(addr))))
	}
	return uint32(int32(int16(arm.read16(addr))))
}

// "4.12 Single Data Swap (SWP)" in the "ARM7TDMI Data Sheet"
//
// "The data swap instruction is used to swap a byte or word quantity between
// a register and external memory. This instruction is implemented as a
// memory read followed by a memory write which are “locked” together (the
// processor cannot be interrupted until both operations have completed, and
// the memory manager is warned to treat them as inseparable)."
func (arm *ARM) executeSwap(opcode uint32) Cycles {
	byteTransfer := opcode&0x00400000 == 0x00400000
	rn := int((opcode >> 16) & 0x0f)
	rd := int((opcode >> 12) & 0x0f)
	rm := int(opcode & 0x0f)

	addr := arm.state.registers[rn]
	src := arm.state.registers[rm]

	if byteTransfer {
		v := arm.read8(addr)
		arm.write8(addr, uint8(src))
		arm.state.registers[rd] = uint32(v)
	} else {
		v := arm.readRotated32(addr)
		arm.write32(addr, src)
		arm.state.registers[rd] = v
	}

	return cyclesSwap
}
