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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/logger"
)

// register names.
const (
	rSB = 9 + iota // static base
	rSL            // stack limit
	rFP            // frame pointer
	rIP            // intra-procedure-call scratch register
	rSP
	rLR
	rPC
	NumRegisters
)

// Exported names of the special registers.
const (
	SP = rSP
	LR = rLR
	PC = rPC
)

// each mode with banked registers has a bank index. user and system mode
// share the user bank
const (
	bankUser = iota
	bankFIQ
	bankSupervisor
	bankAbort
	bankIRQ
	bankUndefined
	numBanks
)

func (m Mode) bank() int {
	switch m {
	case ModeFIQ:
		return bankFIQ
	case ModeSupervisor:
		return bankSupervisor
	case ModeAbort:
		return bankAbort
	case ModeIRQ:
		return bankIRQ
	case ModeUndefined:
		return bankUndefined
	}
	return bankUser
}

// registerBanks contains the inactive copies of the banked registers. the
// active registers are always in ARMState.registers
type registerBanks struct {
	// r8 to r12 for every mode except FIQ
	usrHi [5]uint32

	// r8 to r12 for FIQ mode
	fiqHi [5]uint32

	// r13 and r14 for each bank
	spLR [numBanks][2]uint32

	// saved program status register for each bank. the user bank entry is
	// never used
	spsr [numBanks]uint32
}

// copy the active registers to the storage of the bank for the mode
func (arm *ARM) storeBank(m Mode) {
	b := m.bank()
	if b == bankFIQ {
		copy(arm.state.banks.fiqHi[:], arm.state.registers[8:13])
	} else {
		copy(arm.state.banks.usrHi[:], arm.state.registers[8:13])
	}
	arm.state.banks.spLR[b][0] = arm.state.registers[rSP]
	arm.state.banks.spLR[b][1] = arm.state.registers[rLR]
}

// copy the storage of the bank for the mode to the active registers
func (arm *ARM) loadBank(m Mode) {
	b := m.bank()
	if b == bankFIQ {
		copy(arm.state.registers[8:13], arm.state.banks.fiqHi[:])
	} else {
		copy(arm.state.registers[8:13], arm.state.banks.usrHi[:])
	}
	arm.state.registers[rSP] = arm.state.banks.spLR[b][0]
	arm.state.registers[rLR] = arm.state.banks.spLR[b][1]
}

// switchMode changes the processor mode and swaps the banked registers. the
// rest of the status register is unchanged
func (arm *ARM) switchMode(to Mode) bool {
	if !to.Valid() {
		logger.Logf(arm.env, "ARM7", "invalid mode %05b (PC: %08x)", uint32(to), arm.state.instructionPC)
		arm.setError(curated.Errorf(InvalidMode, uint32(to), arm.state.instructionPC))
		return false
	}

	from := arm.state.status.mode
	if from.bank() != to.bank() {
		arm.storeBank(from)
		arm.loadBank(to)
	}
	arm.state.status.mode = to

	return true
}

// setStatus replaces the entire CPSR, switching mode if necessary
func (arm *ARM) setStatus(v uint32) {
	if !arm.switchMode(Mode(v & statusMode)) {
		return
	}
	arm.state.status.SetValue(v)
}

// spsr returns the saved status register of the current mode. returns false
// if the mode has no SPSR
func (arm *ARM) spsr() (uint32, bool) {
	if !arm.state.status.mode.hasSPSR() {
		return 0, false
	}
	return arm.state.banks.spsr[arm.state.status.mode.bank()], true
}

// setSPSR sets the saved status register of the current mode. returns false
// if the mode has no SPSR
func (arm *ARM) setSPSR(v uint32) bool {
	if !arm.state.status.mode.hasSPSR() {
		return false
	}
	arm.state.banks.spsr[arm.state.status.mode.bank()] = v
	return true
}

// restoreStatus copies the SPSR to the CPSR. used by data processing
// instructions that write to the PC with the S bit set and by LDM with the S
// bit set and the PC in the register list
func (arm *ARM) restoreStatus() {
	spsr, ok := arm.spsr()
	if !ok {
		arm.setError(curated.Errorf(NoSPSR, arm.state.status.mode, arm.state.instructionPC))
		return
	}
	arm.setStatus(spsr)
}

// the amount added to the stored PC when it is read as an operand. the stored
// PC is the address of the instruction following the one being executed, so
// the result is the address of the executing instruction plus eight (or plus
// four in Thumb mode)
func (arm *ARM) prefetchOffset() uint32 {
	if arm.state.status.thumb {
		return 2
	}
	return 4
}

// readRegister returns the value of the register as seen by an instruction
// operand.
func (arm *ARM) readRegister(reg int) uint32 {
	if reg == rPC {
		return arm.state.registers[rPC] + arm.prefetchOffset()
	}
	return arm.state.registers[reg]
}

// readRegisterAhead returns the value of the register for instructions that
// see the PC one word further ahead. this happens for data processing
// instructions with a register specified shift and for STR/STM of the PC
func (arm *ARM) readRegisterAhead(reg int) uint32 {
	if reg == rPC {
		return arm.state.registers[rPC] + arm.prefetchOffset() + 4
	}
	return arm.state.registers[reg]
}

// writeRegister writes to the register. writing to the PC is a branch
func (arm *ARM) writeRegister(reg int, value uint32) {
	if reg == rPC {
		arm.branch(value)
		return
	}
	arm.state.registers[reg] = value
}

// branch sets the PC to the address. the address is aligned to the current
// instruction width
func (arm *ARM) branch(addr uint32) {
	if arm.state.status.thumb {
		addr &= 0xfffffffe
	} else {
		addr &= 0xfffffffc
	}
	arm.state.registers[rPC] = addr
	arm.state.prefetch.invalidate()
}

// isUserBank returns true if the register is shared with the user bank in
// the current mode
func (arm *ARM) isUserBank(reg int) bool {
	if reg < 8 || reg == rPC {
		return true
	}
	b := arm.state.status.mode.bank()
	if b == bankUser {
		return true
	}
	if reg < rSP {
		return b != bankFIQ
	}
	return false
}

// ReadUserRegister returns the value of the register in the user bank,
// regardless of the current mode. The PC is returned as stored.
func (arm *ARM) ReadUserRegister(reg int) uint32 {
	if arm.isUserBank(reg) {
		return arm.state.registers[reg]
	}
	if reg < rSP {
		return arm.state.banks.usrHi[reg-8]
	}
	return arm.state.banks.spLR[bankUser][reg-rSP]
}

// WriteUserRegister sets the value of the register in the user bank,
// regardless of the current mode. Writing to the PC is a branch.
func (arm *ARM) WriteUserRegister(reg int, value uint32) {
	if arm.isUserBank(reg) {
		arm.writeRegister(reg, value)
		return
	}
	if reg < rSP {
		arm.state.banks.usrHi[reg-8] = value
		return
	}
	arm.state.banks.spLR[bankUser][reg-rSP] = value
}

// setBankedSP sets the stack pointer of the bank belonging to mode. used by
// the SoftReset BIOS routine
func (arm *ARM) setBankedSP(m Mode, sp uint32) {
	if m.bank() == arm.state.status.mode.bank() {
		arm.state.registers[rSP] = sp
		return
	}
	arm.state.banks.spLR[m.bank()][0] = sp
}

// Registers returns a copy of the active registers. The PC is the address of
// the next instruction to be executed.
func (arm *ARM) Registers() [NumRegisters]uint32 {
	return arm.state.registers
}

// Register returns the value of a single active register. The PC is the
// address of the next instruction to be executed.
func (arm *ARM) Register(reg int) uint32 {
	if reg < 0 || reg >= NumRegisters {
		return 0
	}
	return arm.state.registers[reg]
}

// SetRegister sets the value of a single active register. Returns false if
// the register number is invalid. Setting the PC is a branch.
func (arm *ARM) SetRegister(reg int, value uint32) bool {
	if reg < 0 || reg >= NumRegisters {
		return false
	}
	arm.writeRegister(reg, value)
	return true
}

// Status returns a copy of the CPSR.
func (arm *ARM) Status() Status {
	return arm.state.status
}

// SetStatus replaces the CPSR, switching register banks if the mode changes.
// The value must contain a valid mode.
func (arm *ARM) SetStatus(v uint32) error {
	arm.state.err = nil
	arm.setStatus(v)
	return arm.state.err
}

// SPSR returns the saved status register of the current mode. Returns false
// if there is no SPSR in the current mode.
func (arm *ARM) SPSR() (uint32, bool) {
	return arm.spsr()
}

func (arm *ARM) String() string {
	s := strings.Builder{}
	for i, r := range arm.state.registers {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString("\t\t")
			}
		}
		s.WriteString(fmt.Sprintf("R%-2d: %08x", i, r))
	}
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("CPSR: %s", arm.state.status.String()))
	return s.String()
}
