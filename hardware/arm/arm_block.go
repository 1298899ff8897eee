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

// "4.11 Block Data Transfer (LDM, STM)" in the "ARM7TDMI Data Sheet"
func (arm *ARM) executeBlockDataTransfer(opcode uint32) Cycles {
	preIndex := opcode&0x01000000 == 0x01000000
	up := opcode&0x00800000 == 0x00800000
	psr := opcode&0x00400000 == 0x00400000
	writeBack := opcode&0x00200000 == 0x00200000
	load := opcode&0x00100000 == 0x00100000
	rn := int((opcode >> 16) & 0x0f)
	regList := uint16(opcode & 0xffff)

	// an empty register list transfers the PC and moves the base as though
	// all sixteen registers had been transferred
	size := uint32(bits.OnesCount16(regList)) * 4
	if regList == 0 {
		regList = 1 << rPC
		size = 0x40
	}
	n := bits.OnesCount16(regList)

	base := arm.state.registers[rn]

	// the transfer always happens in ascending address order. the lowest
	// register goes to the lowest address
	var addr uint32
	var newBase uint32
	if up {
		addr = base
		if preIndex {
			addr += 4
		}
		newBase = base + size
	} else {
		addr = base - size
		if !preIndex {
			addr += 4
		}
		newBase = base - size
	}

	pcInList := regList&(1<<rPC) != 0

	// "4.11.4 Use of the S bit"
	//
	// "When the S bit is set in a LDM/STM instruction its meaning depends on
	// whether or not R15 is in the transfer list and on the type of
	// instruction."
	//
	// "If instruction is LDM and R15 is in the list (mode changes) ... the
	// SPSR_<mode> is transferred to the CPSR at the same time as R15 is
	// loaded."
	//
	// "If instruction is STM or LDM and R15 is not in the list (User bank
	// transfer) ... the registers transferred are taken from the User bank
	// rather than the bank corresponding to the current mode."
	userBank := psr && !(load && pcInList)

	if load {
		var values [NumRegisters]uint32
		a := addr
		for r := 0; r < NumRegisters; r++ {
			if regList&(1<<r) != 0 {
				values[r] = arm.read32(a)
				a += 4
			}
		}

		// write back is suppressed if the base is in the list
		if writeBack && regList&(1<<rn) == 0 {
			arm.state.registers[rn] = newBase
		}

		for r := 0; r < rPC; r++ {
			if regList&(1<<r) != 0 {
				if userBank {
					arm.WriteUserRegister(r, values[r])
				} else {
					arm.state.registers[r] = values[r]
				}
			}
		}

		if pcInList {
			if psr {
				arm.restoreStatus()
			}
			arm.branch(values[rPC])
			return Cycles{Sequential: n + 1, NonSequential: 2, Internal: 1}
		}

		return Cycles{Sequential: n, NonSequential: 1, Internal: 1}
	}

	// "4.11.6 Inclusion of the base in the register list"
	//
	// "When write-back is specified, the base is written back at the end of
	// the second cycle of the instruction. During a STM, the first register
	// is written out at the start of the second cycle. A STM which includes
	// storing the base, with the base as the first register to be stored,
	// will therefore store the unchanged value, whereas with the base second
	// or later in the transfer order, will store the modified value."
	first := true
	a := addr
	for r := 0; r < NumRegisters; r++ {
		if regList&(1<<r) == 0 {
			continue
		}

		var v uint32
		switch {
		case r == rn && writeBack && !first:
			v = newBase
		case r == rPC:
			v = arm.readRegisterAhead(rPC)
		case userBank:
			v = arm.ReadUserRegister(r)
		default:
			v = arm.state.registers[r]
		}

		arm.write32(a, v)
		a += 4
		first = false
	}

	if writeBack {
		arm.state.registers[rn] = newBase
	}

	return Cycles{Sequential: n - 1, NonSequential: 2}
}
