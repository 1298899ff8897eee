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

// "4.4 Branch and Branch with Link (B, BL)" in the "ARM7TDMI Data Sheet"
func (arm *ARM) executeBranch(opcode uint32) Cycles {
	link := opcode&0x01000000 == 0x01000000

	// "The offset is shifted left by two bits, sign extended to 32 bits, and
	// added to the PC"
	offset := uint32(int32(opcode<<8) >> 6)

	if link {
		// "The PC value written into R14 is adjusted to allow for the
		// prefetch, and contains the address of the instruction following
		// the branch and link instruction."
		arm.state.registers[rLR] = arm.state.registers[rPC]
	}

	arm.branch(arm.readRegister(rPC) + offset)

	return cyclesBranch
}

// "4.3 Branch and Exchange (BX)" in the "ARM7TDMI Data Sheet"
func (arm *ARM) executeBranchAndExchange(opcode uint32) Cycles {
	rm := int(opcode & 0x0f)
	arm.exchange(arm.readRegister(rm))
	return cyclesBranch
}

// exchange branches to the address. bit 0 of the address selects the
// instruction set of the destination
func (arm *ARM) exchange(addr uint32) {
	arm.state.status.thumb = addr&0x01 == 0x01
	arm.branch(addr)
}
