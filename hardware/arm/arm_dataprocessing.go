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

// data processing opcodes. "4.5 Data Processing" in the "ARM7TDMI Data Sheet"
const (
	opAND = iota
	opEOR
	opSUB
	opRSB
	opADD
	opADC
	opSBC
	opRSC
	opTST
	opTEQ
	opCMP
	opCMN
	opORR
	opMOV
	opBIC
	opMVN
)

// DataProcessingMnemonics are the names of the data processing opcodes in the
// order they are encoded.
var DataProcessingMnemonics = [16]string{
	"AND", "EOR", "SUB", "RSB", "ADD", "ADC", "SBC", "RSC",
	"TST", "TEQ", "CMP", "CMN", "ORR", "MOV", "BIC", "MVN",
}

// aluOperation performs the data processing operation and returns the result
// and the carry and overflow flags. logical operations return the carry of
// the shifter and leave the overflow flag unchanged
func (arm *ARM) aluOperation(op uint32, a, b uint32, shiftCarry bool) (result uint32, carry bool, overflow bool) {
	carry = shiftCarry
	overflow = arm.state.status.overflow

	switch op {
	case opAND, opTST:
		result = a & b
	case opEOR, opTEQ:
		result = a ^ b
	case opSUB, opCMP:
		result, carry, overflow = addWithCarry(a, ^b, true)
	case opRSB:
		result, carry, overflow = addWithCarry(b, ^a, true)
	case opADD, opCMN:
		result, carry, overflow = addWithCarry(a, b, false)
	case opADC:
		result, carry, overflow = addWithCarry(a, b, arm.state.status.carry)
	case opSBC:
		result, carry, overflow = addWithCarry(a, ^b, arm.state.status.carry)
	case opRSC:
		result, carry, overflow = addWithCarry(b, ^a, arm.state.status.carry)
	case opORR:
		result = a | b
	case opMOV:
		result = b
	case opBIC:
		result = a &^ b
	case opMVN:
		result = ^b
	}

	return result, carry, overflow
}

// the test operations set flags but do not write a result
func isTestOperation(op uint32) bool {
	return op >= opTST && op <= opCMN
}

func (arm *ARM) executeDataProcessing(opcode uint32) Cycles {
	immediate := opcode&0x02000000 == 0x02000000
	op := (opcode >> 21) & 0x0f
	setFlags := opcode&0x00100000 == 0x00100000
	rn := int((opcode >> 16) & 0x0f)
	rd := int((opcode >> 12) & 0x0f)

	var operand2 uint32
	var shiftCarry bool
	var regShift bool

	if immediate {
		operand2, shiftCarry = rotatedImmediate(opcode, arm.state.status.carry)
	} else {
		operand2, shiftCarry, regShift = arm.shiftedRegister(opcode)
	}

	var operand1 uint32
	if regShift {
		operand1 = arm.readRegisterAhead(rn)
	} else {
		operand1 = arm.readRegister(rn)
	}

	result, carry, overflow := arm.aluOperation(op, operand1, operand2, shiftCarry)

	cycles := cyclesDataOp
	if regShift {
		cycles = cycles.Add(cyclesRegShifted)
	}

	if isTestOperation(op) {
		// a test operation without the S bit that didn't decode as a PSR
		// transfer does nothing
		if setFlags {
			arm.state.status.setNZ(result)
			arm.state.status.setCarry(carry)
			arm.state.status.setOverflow(overflow)
		}
		return cycles
	}

	if rd == rPC {
		// "4.5.4 Writing to R15"
		//
		// "When Rd is R15 and the S flag is set the result of the operation
		// is placed in R15 and the SPSR corresponding to the current mode is
		// moved to the CPSR. This allows state changes which atomically
		// restore both PC and CPSR. This form of instruction should not be
		// used in User mode."
		if setFlags {
			arm.restoreStatus()
		}
		arm.branch(result)
		return cycles.Add(cyclesPCWritten)
	}

	arm.state.registers[rd] = result
	if setFlags {
		arm.state.status.setNZ(result)
		arm.state.status.setCarry(carry)
		arm.state.status.setOverflow(overflow)
	}

	return cycles
}
