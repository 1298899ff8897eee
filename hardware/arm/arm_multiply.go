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

// "4.7 Multiply and Multiply-Accumulate (MUL, MLA)" in the "ARM7TDMI Data
// Sheet"
func (arm *ARM) executeMultiply(opcode uint32) Cycles {
	accumulate := opcode&0x00200000 == 0x00200000
	setFlags := opcode&0x00100000 == 0x00100000
	rd := int((opcode >> 16) & 0x0f)
	rn := int((opcode >> 12) & 0x0f)
	rs := int((opcode >> 8) & 0x0f)
	rm := int(opcode & 0x0f)

	s := arm.state.registers[rs]
	result := arm.state.registers[rm] * s
	if accumulate {
		result += arm.state.registers[rn]
	}
	arm.state.registers[rd] = result

	// "The C (Carry) flag is set to a meaningless value and the V
	// (oVerflow) flag is unaffected."
	//
	// we leave the carry flag unchanged too
	if setFlags {
		arm.state.status.setNZ(result)
	}

	cycles := Cycles{Sequential: 1, Internal: multiplierCycles(s, true)}
	if accumulate {
		cycles.Internal++
	}

	return cycles
}

// "4.8 Multiply Long and Multiply-Accumulate Long (MULL, MLAL)" in the
// "ARM7TDMI Data Sheet"
func (arm *ARM) executeMultiplyLong(opcode uint32) Cycles {
	signed := opcode&0x00400000 == 0x00400000
	accumulate := opcode&0x00200000 == 0x00200000
	setFlags := opcode&0x00100000 == 0x00100000
	rdHi := int((opcode >> 16) & 0x0f)
	rdLo := int((opcode >> 12) & 0x0f)
	rs := int((opcode >> 8) & 0x0f)
	rm := int(opcode & 0x0f)

	s := arm.state.registers[rs]
	m := arm.state.registers[rm]

	var result uint64
	if signed {
		result = uint64(int64(int32(m)) * int64(int32(s)))
	} else {
		result = uint64(m) * uint64(s)
	}

	if accumulate {
		result += uint64(arm.state.registers[rdHi])<<32 | uint64(arm.state.registers[rdLo])
	}

	arm.state.registers[rdLo] = uint32(result)
	arm.state.registers[rdHi] = uint32(result >> 32)

	if setFlags {
		arm.state.status.setNZ64(result)
	}

	cycles := Cycles{Sequential: 1, Internal: multiplierCycles(s, signed) + 1}
	if accumulate && !signed {
		cycles.Internal++
	}

	return cycles
}
