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

import "github.com/jetsetilly/gopheradvance/curated"

// masks for the fields of the MSR instruction
const (
	psrFlagsField   = 0xff000000
	psrControlField = 0x000000ff
)

// "4.6 PSR Transfer (MRS, MSR)" in the "ARM7TDMI Data Sheet"
func (arm *ARM) executeMRS(opcode uint32) Cycles {
	useSPSR := opcode&0x00400000 == 0x00400000
	rd := int((opcode >> 12) & 0x0f)

	if useSPSR {
		v, ok := arm.spsr()
		if !ok {
			arm.setError(curated.Errorf(NoSPSR, arm.state.status.mode, arm.state.instructionPC))
			return Cycles{}
		}
		arm.state.registers[rd] = v
	} else {
		arm.state.registers[rd] = arm.state.status.Value()
	}

	return cyclesDataOp
}

func (arm *ARM) executeMSR(opcode uint32) Cycles {
	immediate := opcode&0x02000000 == 0x02000000
	useSPSR := opcode&0x00400000 == 0x00400000

	var operand uint32
	if immediate {
		operand, _ = rotatedImmediate(opcode, arm.state.status.carry)
	} else {
		operand = arm.readRegister(int(opcode & 0x0f))
	}

	var mask uint32
	if opcode&0x00080000 == 0x00080000 {
		mask |= psrFlagsField
	}

	// "In User mode, the control bits of the CPSR are protected from change,
	// so only the condition code flags of the CPSR can be changed."
	if opcode&0x00010000 == 0x00010000 && arm.state.status.mode != ModeUser {
		mask |= psrControlField
	}

	if useSPSR {
		spsr, ok := arm.spsr()
		if !ok {
			arm.setError(curated.Errorf(NoSPSR, arm.state.status.mode, arm.state.instructionPC))
			return Cycles{}
		}
		arm.setSPSR(spsr&^mask | operand&mask)
		return cyclesDataOp
	}

	// writing the control field may change the mode, which switches register
	// banks
	arm.setStatus(arm.state.status.Value()&^mask | operand&mask)

	return cyclesDataOp
}
