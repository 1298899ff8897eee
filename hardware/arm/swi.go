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

import (
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/bios"
	"github.com/jetsetilly/gopheradvance/logger"
)

// softwareInterrupt services the SWI instruction. the comment field selects
// the BIOS routine
//
// "4.13 Software Interrupt (SWI)" in the "ARM7TDMI Data Sheet"
func (arm *ARM) softwareInterrupt(comment uint32) Cycles {
	if arm.logSWI {
		logger.Logf(arm.env, "ARM7", "SWI %02x %s (PC: %08x)", comment, bios.Name(comment), arm.state.instructionPC)
	}

	if !arm.useHLE {
		// "The software interrupt instruction is used to enter Supervisor
		// mode in a controlled manner. The instruction causes the software
		// interrupt trap to be taken, which effects the mode change. The PC
		// is then forced to a fixed value (0x08) and the CPSR is saved in
		// SPSR_svc."
		arm.exception(ModeSupervisor, vectorSWI, arm.state.registers[rPC])
		return cyclesException
	}

	regs := bios.Registers{
		arm.state.registers[0],
		arm.state.registers[1],
		arm.state.registers[2],
		arm.state.registers[3],
	}

	res, err := arm.hle.Call(comment, &regs, arm.mem)
	if err != nil {
		if curated.Is(err, bios.UnknownSelector) {
			arm.setError(curated.Errorf(UnmappedSWI, comment, arm.state.instructionPC))
		} else {
			arm.setError(curated.Errorf(SWIError, comment, err, arm.state.instructionPC))
		}
		return Cycles{}
	}

	copy(arm.state.registers[:4], regs[:])

	switch res.Action {
	case bios.Halt:
		arm.irq.Halt()
	case bios.Wait:
		// the SWI instruction is executed again once the CPU wakes up and any
		// interrupt has been serviced
		arm.irq.Halt()
		arm.branch(arm.state.instructionPC)
	case bios.SoftReset:
		arm.softReset(res.PC)
	}

	return cyclesException
}
