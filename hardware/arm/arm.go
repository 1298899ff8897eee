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
	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/bios"
	"github.com/jetsetilly/gopheradvance/hardware/preferences"
)

// exception vectors. "3.9 Exceptions" in the "ARM7TDMI Data Sheet"
const (
	vectorReset    = 0x00000000
	vectorUndef    = 0x00000004
	vectorSWI      = 0x00000008
	vectorIRQ      = 0x00000018
	cartridgeEntry = 0x08000000
)

// ARMState is the state of the CPU that changes during execution.
type ARMState struct {
	registers [NumRegisters]uint32
	status    Status
	banks     registerBanks

	// the address and value of the instruction being executed
	instructionPC   uint32
	executingOpcode uint32

	// the first error encountered during the current instruction
	err error

	prefetch prefetch

	// total number of instructions and cycles since reset
	instructions uint64
	cycles       uint64
}

// Snapshot creates a copy of the ARM state. The prefetch cache is not part
// of the snapshot.
func (s *ARMState) Snapshot() *ARMState {
	n := *s
	n.prefetch = prefetch{}
	return &n
}

// ARM implements the ARM7TDMI processor.
type ARM struct {
	env   *environment.Environment
	prefs *preferences.ARMPreferences

	mem    Memory
	mapper RegionMapper
	irq    *Interrupts

	// the high-level BIOS implementation. used when the HLE preference is set
	hle *bios.HLE

	state *ARMState

	// copied from preferences when the CPU is reset
	usePrefetch bool
	useHLE      bool
	logSWI      bool
}

// NewARM is the preferred method of initialisation for the ARM type.
//
// If the Memory implementation also implements the RegionMapper interface
// then the prefetch cache will be used, subject to preferences.
func NewARM(env *environment.Environment, mem Memory, irq *Interrupts) *ARM {
	arm := &ARM{
		env:   env,
		prefs: env.Prefs.ARM,
		mem:   mem,
		irq:   irq,
		hle:   bios.NewHLE(),
		state: &ARMState{},
	}

	if m, ok := mem.(RegionMapper); ok {
		arm.mapper = m
	}

	arm.Reset()

	return arm
}

// updatePrefs copies the preference values to the ARM instance
func (arm *ARM) updatePrefs() {
	arm.usePrefetch = arm.mapper != nil && arm.prefs.PrefetchCache.Get().(bool)
	arm.useHLE = arm.prefs.HLE.Get().(bool)
	arm.logSWI = arm.prefs.LogSWI.Get().(bool)
}

// Reset the CPU to the power on state.
//
// When using the high-level BIOS the CPU starts in System mode at the start
// of the cartridge with the stack pointers set as they would be after the
// BIOS boot sequence. Otherwise the CPU starts in Supervisor mode at the
// reset vector with interrupts disabled.
func (arm *ARM) Reset() {
	arm.updatePrefs()

	*arm.state = ARMState{}
	arm.hle.Reset()

	if arm.useHLE {
		arm.state.status.mode = ModeSystem
		arm.setBankedSP(ModeSupervisor, bios.SupervisorStack)
		arm.setBankedSP(ModeIRQ, bios.IRQStack)
		arm.setBankedSP(ModeSystem, bios.UserStack)
		arm.state.registers[rPC] = cartridgeEntry
		return
	}

	// "3.10.1 Reset" in the "ARM7TDMI Data Sheet"
	//
	// "(2) Forces M[4:0] to 10011 (Supervisor mode), sets the I and F bits in
	// the CPSR, and clears the CPSR's T bit."
	arm.state.status.mode = ModeSupervisor
	arm.state.status.irqDisable = true
	arm.state.status.fiqDisable = true
	arm.state.registers[rPC] = vectorReset
}

// Snapshot the state of the CPU.
func (arm *ARM) Snapshot() *ARMState {
	return arm.state.Snapshot()
}

// Plumb a previously snapshotted state into the CPU.
func (arm *ARM) Plumb(state *ARMState) {
	arm.state = state
	arm.state.prefetch.invalidate()
	arm.updatePrefs()
}

// Instructions returns the number of instructions executed since reset.
func (arm *ARM) Instructions() uint64 {
	return arm.state.instructions
}

// Cycles returns the number of cycles consumed since reset.
func (arm *ARM) Cycles() uint64 {
	return arm.state.cycles
}

// InstructionPC returns the address of the most recently executed
// instruction.
func (arm *ARM) InstructionPC() uint32 {
	return arm.state.instructionPC
}

// Halted returns true if the CPU is waiting for an interrupt.
func (arm *ARM) Halted() bool {
	return arm.irq.Halted()
}

// Step executes a single instruction and returns the number of cycles
// consumed. Interrupts are checked before the instruction is fetched. If an
// interrupt is serviced then no instruction is executed.
//
// Errors are fatal. The state of the CPU is undefined after an error.
func (arm *ARM) Step() (int, error) {
	arm.state.err = nil

	if arm.irq.Halted() {
		if !arm.irq.wake() {
			return arm.account(arm.state.registers[rPC], cyclesHalted), nil
		}
	}

	// "3.9.5 Interrupt request" in the "ARM7TDMI Data Sheet"
	//
	// "The IRQ exception is a normal interrupt caused by a LOW level on the
	// nIRQ input. IRQ has a lower priority than FIQ and is masked out when a
	// FIQ sequence is entered. It may be disabled at any time by setting the
	// I bit in the CPSR, though this can only be done from a privileged
	// (non-User) mode."
	if !arm.state.status.irqDisable && arm.irq.service() {
		pc := arm.state.registers[rPC]
		arm.exception(ModeIRQ, vectorIRQ, pc+4)
		return arm.account(pc, cyclesException), arm.state.err
	}

	arm.state.instructionPC = arm.state.registers[rPC]

	var c Cycles

	if arm.state.status.thumb {
		opcode := arm.fetch16(arm.state.instructionPC)
		if arm.state.err != nil {
			return 0, arm.state.err
		}
		arm.state.executingOpcode = uint32(opcode)
		arm.state.registers[rPC] += 2
		c = thumbTable[opcode>>6].exec(arm, opcode)
	} else {
		opcode := arm.fetch32(arm.state.instructionPC)
		if arm.state.err != nil {
			return 0, arm.state.err
		}
		arm.state.executingOpcode = opcode
		arm.state.registers[rPC] += 4

		cond := opcode >> 28
		if cond == conditionReserved {
			arm.decodeError(ReservedCondition, opcode)
		} else if arm.state.status.condition(cond) {
			c = arm.executeARM(opcode)
		} else {
			c = cyclesSkipped
		}
	}

	if arm.state.err != nil {
		return 0, arm.state.err
	}

	arm.state.instructions++

	return arm.account(arm.state.instructionPC, c), nil
}

// convert cycle counts to clock cycles and add to the running total
func (arm *ARM) account(addr uint32, c Cycles) int {
	n := arm.mem.WaitCycles(addr, c)
	arm.state.cycles += uint64(n)
	return n
}

// exception enters the mode and jumps to the vector. the link register of the
// new mode is set to the value of lr
//
// "3.9.1 Action on entering an exception" in the "ARM7TDMI Data Sheet"
//
//	"1 Preserves the address of the next instruction in the appropriate
//	Link Register.
//	2 Copies the CPSR into the appropriate SPSR
//	3 Forces the CPSR mode bits to a value which depends on the exception
//	4 Forces the PC to fetch the next instruction from the relevant
//	exception vector"
//
// "It may also set the interrupt disable flags to prevent otherwise
// unmanageable nestings of exceptions."
func (arm *ARM) exception(mode Mode, vector uint32, lr uint32) {
	cpsr := arm.state.status.Value()
	if !arm.switchMode(mode) {
		return
	}
	arm.setSPSR(cpsr)
	arm.state.registers[rLR] = lr
	arm.state.status.irqDisable = true
	arm.state.status.thumb = false
	arm.branch(vector)
}

// softReset puts the CPU into the state expected after the SoftReset BIOS
// routine
func (arm *ARM) softReset(pc uint32) {
	arm.switchMode(ModeSystem)
	for i := 0; i < rSP; i++ {
		arm.state.registers[i] = 0
	}
	arm.state.status.SetValue(uint32(ModeSystem))
	arm.state.banks.spLR[bankSupervisor] = [2]uint32{bios.SupervisorStack, 0}
	arm.state.banks.spLR[bankIRQ] = [2]uint32{bios.IRQStack, 0}
	arm.state.banks.spsr[bankSupervisor] = 0
	arm.state.banks.spsr[bankIRQ] = 0
	arm.state.registers[rSP] = bios.UserStack
	arm.state.registers[rLR] = 0
	arm.branch(pc)
}
