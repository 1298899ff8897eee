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

package bios

import "encoding/binary"

// Size of the BIOS ROM.
const Size = 0x4000

// addresses of the code in the minimal BIOS image
const (
	resetRoutine = 0x000000e0
	stackTable   = 0x00000104
	irqRoutine   = 0x00000128
)

// the minimal BIOS image as a list of addresses and the instruction or data
// word at that address
var image = []struct {
	addr uint32
	word uint32
}{
	// exception vectors
	{addr: 0x00, word: 0xea000036}, // b resetRoutine
	{addr: 0x04, word: 0xeafffffe}, // b . (undefined instruction)
	{addr: 0x08, word: 0xe1b0f00e}, // movs pc, lr (software interrupt)
	{addr: 0x0c, word: 0xeafffffe}, // b . (prefetch abort)
	{addr: 0x10, word: 0xeafffffe}, // b . (data abort)
	{addr: 0x14, word: 0xeafffffe}, // b . (reserved)
	{addr: 0x18, word: 0xea000042}, // b irqRoutine
	{addr: 0x1c, word: 0xeafffffe}, // b . (fast interrupt)

	// reset. set the stack pointers for supervisor, IRQ and system modes and
	// jump to the cartridge in system mode
	{addr: 0xe0, word: 0xe321f0d3}, // msr cpsr_c, #0xd3
	{addr: 0xe4, word: 0xe59fd018}, // ldr sp, [pc, #0x18]
	{addr: 0xe8, word: 0xe321f0d2}, // msr cpsr_c, #0xd2
	{addr: 0xec, word: 0xe59fd014}, // ldr sp, [pc, #0x14]
	{addr: 0xf0, word: 0xe321f01f}, // msr cpsr_c, #0x1f
	{addr: 0xf4, word: 0xe59fd010}, // ldr sp, [pc, #0x10]
	{addr: 0xf8, word: 0xe3a0f408}, // mov pc, #0x08000000

	// stack table used by the reset routine
	{addr: 0x104, word: SupervisorStack},
	{addr: 0x108, word: IRQStack},
	{addr: 0x10c, word: UserStack},

	// IRQ dispatch. calls the user handler at UserHandler, which is reached
	// through the mirror of work RAM at 0x03fffffc
	{addr: 0x128, word: 0xe92d500f}, // stmfd sp!, {r0-r3, r12, lr}
	{addr: 0x12c, word: 0xe3a00301}, // mov r0, #0x04000000
	{addr: 0x130, word: 0xe28fe000}, // add lr, pc, #0
	{addr: 0x134, word: 0xe510f004}, // ldr pc, [r0, #-4]
	{addr: 0x138, word: 0xe8bd500f}, // ldmfd sp!, {r0-r3, r12, lr}
	{addr: 0x13c, word: 0xe25ef004}, // subs pc, lr, #4
}

// Image returns a minimal BIOS. The image contains the exception vectors, a
// reset routine and the IRQ dispatcher. It does not contain any of the BIOS
// routines called by the SWI instruction.
func Image() []byte {
	b := make([]byte, Size)
	for _, w := range image {
		binary.LittleEndian.PutUint32(b[w.addr:], w.word)
	}
	return b
}
