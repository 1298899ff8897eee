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

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/curated"
)

// Sentinal error patterns.
const (
	UnknownSelector = "bios: unknown selector %02x"
	DivideByZero    = "bios: division by zero"
	BusError        = "bios: %s: unmapped address %08x"
	BadHeader       = "bios: bad compression header %08x"
)

// Initial stack pointers set by the BIOS at boot and by SoftReset.
const (
	UserStack       = 0x03007f00
	IRQStack        = 0x03007fa0
	SupervisorStack = 0x03007fe0
)

// Addresses in work RAM used by the BIOS.
const (
	// IntrWait() waits for bits to be set here by the user interrupt handler
	IntrCheck = 0x03007ff8

	// SoftReset() boots from RAM if this byte is non-zero
	ResetFlag = 0x03007ffa

	// the address of the user interrupt handler
	UserHandler = 0x03007ffc
)

// Addresses of IO registers touched by the BIOS routines.
const (
	regIME       = 0x04000208
	regSOUNDBIAS = 0x04000088
)

// Bus is the interface to memory used by the routines. The read and write
// functions return false if the address is unmapped.
type Bus interface {
	Read8(addr uint32) (uint8, bool)
	Read16(addr uint32) (uint16, bool)
	Read32(addr uint32) (uint32, bool)
	Write8(addr uint32, val uint8) bool
	Write16(addr uint32, val uint16) bool
	Write32(addr uint32, val uint32) bool
}

// Registers are the values of r0 to r3. They are the arguments of a routine
// and contain the return values on completion.
type Registers [4]uint32

// Action tells the CPU what to do once a routine has completed.
type Action int

// List of valid Action values.
const (
	// continue with the instruction following the SWI
	Continue Action = iota

	// halt until an enabled interrupt is requested
	Halt

	// halt until an enabled interrupt is requested and then call the routine
	// again
	Wait

	// reset the CPU and jump to Result.PC
	SoftReset
)

// Result of a routine.
type Result struct {
	Action Action

	// the address to jump to after a SoftReset
	PC uint32
}

// HLE is the high-level BIOS. The only state is whether an interrupt wait is
// in progress.
type HLE struct {
	waiting bool
}

// NewHLE is the preferred method of initialisation for the HLE type.
func NewHLE() *HLE {
	return &HLE{}
}

// Reset the BIOS state.
func (h *HLE) Reset() {
	h.waiting = false
}

type routine struct {
	name string
	fn   func(h *HLE, r *Registers, bus Bus) (Result, error)
}

var routines = map[uint32]routine{
	0x00: {name: "SoftReset", fn: softReset},
	0x01: {name: "RegisterRamReset", fn: registerRAMReset},
	0x02: {name: "Halt", fn: halt},
	0x04: {name: "IntrWait", fn: intrWait},
	0x05: {name: "VBlankIntrWait", fn: vblankIntrWait},
	0x06: {name: "Div", fn: div},
	0x07: {name: "DivArm", fn: divArm},
	0x08: {name: "Sqrt", fn: sqrt},
	0x09: {name: "ArcTan", fn: arcTan},
	0x0a: {name: "ArcTan2", fn: arcTan2},
	0x0b: {name: "CpuSet", fn: cpuSet},
	0x0c: {name: "CpuFastSet", fn: cpuFastSet},
	0x0d: {name: "GetBiosChecksum", fn: getBiosChecksum},
	0x0f: {name: "ObjAffineSet", fn: objAffineSet},
	0x11: {name: "LZ77UnCompWram", fn: lz77Wram},
	0x12: {name: "LZ77UnCompVram", fn: lz77Vram},
	0x14: {name: "RLUnCompWram", fn: rlWram},
	0x15: {name: "RLUnCompVram", fn: rlVram},
	0x19: {name: "SoundBias", fn: soundBias},
}

// Name returns the name of the routine for the selector.
func Name(selector uint32) string {
	if r, ok := routines[selector]; ok {
		return r.name
	}
	return fmt.Sprintf("unknown (%02x)", selector)
}

// Call the routine for the selector. Returns an UnknownSelector error if
// there is no routine for the selector.
func (h *HLE) Call(selector uint32, r *Registers, bus Bus) (Result, error) {
	rt, ok := routines[selector]
	if !ok {
		return Result{}, curated.Errorf(UnknownSelector, selector)
	}
	return rt.fn(h, r, bus)
}

// the memory access functions return a BusError for unmapped addresses

func read8(bus Bus, addr uint32) (uint8, error) {
	v, ok := bus.Read8(addr)
	if !ok {
		return 0, curated.Errorf(BusError, "read 8bit", addr)
	}
	return v, nil
}

func read16(bus Bus, addr uint32) (uint16, error) {
	v, ok := bus.Read16(addr &^ 0x01)
	if !ok {
		return 0, curated.Errorf(BusError, "read 16bit", addr)
	}
	return v, nil
}

func read32(bus Bus, addr uint32) (uint32, error) {
	v, ok := bus.Read32(addr &^ 0x03)
	if !ok {
		return 0, curated.Errorf(BusError, "read 32bit", addr)
	}
	return v, nil
}

func write8(bus Bus, addr uint32, val uint8) error {
	if !bus.Write8(addr, val) {
		return curated.Errorf(BusError, "write 8bit", addr)
	}
	return nil
}

func write16(bus Bus, addr uint32, val uint16) error {
	if !bus.Write16(addr&^0x01, val) {
		return curated.Errorf(BusError, "write 16bit", addr)
	}
	return nil
}

func write32(bus Bus, addr uint32, val uint32) error {
	if !bus.Write32(addr&^0x03, val) {
		return curated.Errorf(BusError, "write 32bit", addr)
	}
	return nil
}

// fill a region of memory with zero. start and end must be word aligned
func clearRegion(bus Bus, start uint32, end uint32) error {
	for a := start; a < end; a += 4 {
		if err := write32(bus, a, 0); err != nil {
			return err
		}
	}
	return nil
}
