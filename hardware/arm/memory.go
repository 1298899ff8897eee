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
	"encoding/binary"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Memory is the interface to the bus of the console. Addresses are always
// aligned to the width of the access.
//
// The read and write functions return false if the address is not mapped.
// An unmapped access stops the CPU with a MemoryFault error.
type Memory interface {
	Read8(addr uint32) (uint8, bool)
	Read16(addr uint32) (uint16, bool)
	Read32(addr uint32) (uint32, bool)
	Write8(addr uint32, val uint8) bool
	Write16(addr uint32, val uint16) bool
	Write32(addr uint32, val uint32) bool

	// WaitCycles converts the cycle counts of an instruction executed at
	// the address to a number of clock cycles
	WaitCycles(addr uint32, c Cycles) int
}

// RegionMapper is an optional interface for Memory implementations. It returns
// the memory backing the address and the address of the first element of the
// returned slice. The slice is used by the CPU for instruction fetches until
// the PC leaves the slice.
type RegionMapper interface {
	MapRegion(addr uint32) ([]byte, uint32, bool)
}

// the prefetch cache holds the region of memory containing the PC
type prefetch struct {
	data   []byte
	origin uint32
	valid  bool
}

func (p *prefetch) invalidate() {
	p.valid = false
}

// returns the offset into data for the address. remaps the cache if necessary
func (arm *ARM) prefetchIndex(addr uint32, width uint32) (uint32, bool) {
	p := &arm.state.prefetch
	if p.valid {
		idx := addr - p.origin
		if idx <= uint32(len(p.data))-width {
			return idx, true
		}
	}

	p.data, p.origin, p.valid = arm.mapper.MapRegion(addr)
	if !p.valid || uint32(len(p.data)) < width {
		p.valid = false
		return 0, false
	}

	idx := addr - p.origin
	if idx > uint32(len(p.data))-width {
		p.valid = false
		return 0, false
	}
	return idx, true
}

func (arm *ARM) fetch32(addr uint32) uint32 {
	if arm.usePrefetch {
		if idx, ok := arm.prefetchIndex(addr, 4); ok {
			return binary.LittleEndian.Uint32(arm.state.prefetch.data[idx:])
		}
	}
	v, ok := arm.mem.Read32(addr)
	if !ok {
		arm.memoryFault("fetch 32bit", addr)
	}
	return v
}

func (arm *ARM) fetch16(addr uint32) uint16 {
	if arm.usePrefetch {
		if idx, ok := arm.prefetchIndex(addr, 2); ok {
			return binary.LittleEndian.Uint16(arm.state.prefetch.data[idx:])
		}
	}
	v, ok := arm.mem.Read16(addr)
	if !ok {
		arm.memoryFault("fetch 16bit", addr)
	}
	return v
}

// memoryFault records the fault. the CPU will stop at the end of the current
// instruction
func (arm *ARM) memoryFault(event string, addr uint32) {
	logger.Logf(arm.env, "ARM7", "memory fault: %s: %08x (PC: %08x)", event, addr, arm.state.instructionPC)
	arm.setError(curated.Errorf(MemoryFault, event, addr, arm.state.instructionPC))
}

// setError records the first error of an instruction
func (arm *ARM) setError(err error) {
	if arm.state.err == nil {
		arm.state.err = err
	}
}

func (arm *ARM) read8(addr uint32) uint8 {
	v, ok := arm.mem.Read8(addr)
	if !ok {
		arm.memoryFault("read 8bit", addr)
	}
	return v
}

// read16 forces the address to be halfword aligned
func (arm *ARM) read16(addr uint32) uint16 {
	addr &= 0xfffffffe
	v, ok := arm.mem.Read16(addr)
	if !ok {
		arm.memoryFault("read 16bit", addr)
	}
	return v
}

// read32 forces the address to be word aligned
func (arm *ARM) read32(addr uint32) uint32 {
	addr &= 0xfffffffc
	v, ok := arm.mem.Read32(addr)
	if !ok {
		arm.memoryFault("read 32bit", addr)
	}
	return v
}

// readRotated32 reads the word containing addr. if addr is not word aligned
// the word is rotated so that the addressed byte is in the low byte
//
// "4.9.3 Bytes and words" in the "ARM7TDMI Data Sheet"
//
// "A word load (LDR) should generate a word aligned address. An address
// offset from a word boundary will cause the data to be rotated into the
// register so that the addressed byte occupies bits 0 to 7."
func (arm *ARM) readRotated32(addr uint32) uint32 {
	v := arm.read32(addr)
	rot := (addr & 0x03) * 8
	return v>>rot | v<<(32-rot)
}

func (arm *ARM) write8(addr uint32, val uint8) {
	if !arm.mem.Write8(addr, val) {
		arm.memoryFault("write 8bit", addr)
	}
}

// write16 forces the address to be halfword aligned
func (arm *ARM) write16(addr uint32, val uint16) {
	addr &= 0xfffffffe
	if !arm.mem.Write16(addr, val) {
		arm.memoryFault("write 16bit", addr)
	}
}

// write32 forces the address to be word aligned
func (arm *ARM) write32(addr uint32, val uint32) {
	addr &= 0xfffffffc
	if !arm.mem.Write32(addr, val) {
		arm.memoryFault("write 32bit", addr)
	}
}
