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

package memory

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/arm"
	"github.com/jetsetilly/gopheradvance/hardware/bios"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Memory is the reference implementation of the GBA memory bus.
type Memory struct {
	env *environment.Environment
	irq *arm.Interrupts

	bios    []uint8
	ewram   []uint8
	iwram   []uint8
	io      []uint8
	palette []uint8
	vram    []uint8
	oam     []uint8
	rom     []uint8
	sram    []uint8

	// the decoded WAITCNT register
	waits waitStates
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The BIOS area contains the minimal image from the bios package until
// LoadBIOS() is called.
func NewMemory(env *environment.Environment, irq *arm.Interrupts) *Memory {
	mem := &Memory{
		env:     env,
		irq:     irq,
		bios:    make([]uint8, memorymap.SizeBIOS),
		ewram:   make([]uint8, memorymap.SizeEWRAM),
		iwram:   make([]uint8, memorymap.SizeIWRAM),
		io:      make([]uint8, memorymap.SizeIO),
		palette: make([]uint8, memorymap.SizePalette),
		vram:    make([]uint8, memorymap.SizeVRAM),
		oam:     make([]uint8, memorymap.SizeOAM),
		sram:    make([]uint8, memorymap.SizeSRAM),
	}
	copy(mem.bios, bios.Image())
	mem.Reset(false)
	return mem
}

// Reset clears all RAM and IO registers. The contents of the work RAM are
// randomised if the randomise argument is true. The ROM, BIOS and SRAM are
// not changed.
func (mem *Memory) Reset(randomise bool) {
	for _, m := range [][]uint8{mem.ewram, mem.iwram, mem.io, mem.palette, mem.vram, mem.oam} {
		clear(m)
	}

	if randomise {
		for _, m := range [][]uint8{mem.ewram, mem.iwram} {
			mem.env.Prefs.RandSrc.Read(m)
		}
	}

	mem.irq.Reset()
	mem.waits = decodeWaitCnt(0)
}

// LoadROM copies the data into the ROM area. The ROM can be no larger than
// 32MB.
func (mem *Memory) LoadROM(data []uint8) error {
	if len(data) > memorymap.SizeROM {
		return curated.Errorf(ROMTooLarge, len(data))
	}
	mem.rom = make([]uint8, len(data))
	copy(mem.rom, data)
	logger.Logf(mem.env, "memory", "loaded ROM (%d bytes)", len(data))
	return nil
}

// LoadBIOS replaces the BIOS area with the data. Images smaller than 16KB are
// padded with zero bytes.
func (mem *Memory) LoadBIOS(data []uint8) error {
	if len(data) > memorymap.SizeBIOS {
		return curated.Errorf(BIOSSize, len(data))
	}
	clear(mem.bios)
	copy(mem.bios, data)
	logger.Logf(mem.env, "memory", "loaded BIOS (%d bytes)", len(data))
	return nil
}

// ROMSize returns the number of bytes in the ROM.
func (mem *Memory) ROMSize() int {
	return len(mem.rom)
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(memorymap.Summary())
	s.WriteString(mem.WaitStates())
	return s.String()
}

// backing returns the slice of memory backing the area, along with the offset
// into that slice. the IO area has no backing slice that can be accessed
// directly. the ROM slice is nil until a ROM has been loaded
func (mem *Memory) backing(address uint32) ([]uint8, uint32, memorymap.Area) {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.BIOS:
		return mem.bios, offset, area
	case memorymap.EWRAM:
		return mem.ewram, offset, area
	case memorymap.IWRAM:
		return mem.iwram, offset, area
	case memorymap.Palette:
		return mem.palette, offset, area
	case memorymap.VRAM:
		return mem.vram, offset, area
	case memorymap.OAM:
		return mem.oam, offset, area
	case memorymap.ROM:
		return mem.rom, offset, area
	case memorymap.SRAM:
		return mem.sram, offset, area
	}
	return nil, offset, area
}

// MapRegion implements the arm.RegionMapper interface. Only the areas that
// are likely to contain code are mapped.
func (mem *Memory) MapRegion(address uint32) ([]uint8, uint32, bool) {
	data, offset, area := mem.backing(address)
	switch area {
	case memorymap.BIOS, memorymap.EWRAM, memorymap.IWRAM, memorymap.ROM:
		if offset >= uint32(len(data)) {
			return nil, 0, false
		}
		return data, address - offset, true
	}
	return nil, 0, false
}

// Read8 implements the arm.Memory interface.
func (mem *Memory) Read8(address uint32) (uint8, bool) {
	data, offset, area := mem.backing(address)
	switch area {
	case memorymap.Unmapped:
		return 0, false
	case memorymap.IO:
		return mem.ioRead8(offset), true
	}
	if offset >= uint32(len(data)) {
		return 0, false
	}
	return data[offset], true
}

// Read16 implements the arm.Memory interface.
func (mem *Memory) Read16(address uint32) (uint16, bool) {
	address &^= 0x01

	data, offset, area := mem.backing(address)
	switch area {
	case memorymap.Unmapped:
		return 0, false
	case memorymap.IO:
		return uint16(mem.ioRead8(offset)) | uint16(mem.ioRead8(offset+1))<<8, true
	case memorymap.SRAM:
		// the SRAM is on an 8bit bus. the byte is repeated across the width
		// of the read
		return uint16(data[offset]) * 0x0101, true
	}
	if offset+2 > uint32(len(data)) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(data[offset:]), true
}

// Read32 implements the arm.Memory interface.
func (mem *Memory) Read32(address uint32) (uint32, bool) {
	address &^= 0x03

	data, offset, area := mem.backing(address)
	switch area {
	case memorymap.Unmapped:
		return 0, false
	case memorymap.IO:
		var v uint32
		for i := uint32(0); i < 4; i++ {
			v |= uint32(mem.ioRead8(offset+i)) << (i * 8)
		}
		return v, true
	case memorymap.SRAM:
		return uint32(data[offset]) * 0x01010101, true
	}
	if offset+4 > uint32(len(data)) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[offset:]), true
}

// Write8 implements the arm.Memory interface.
func (mem *Memory) Write8(address uint32, data uint8) bool {
	d, offset, area := mem.backing(address)
	switch area {
	case memorymap.Unmapped:
		return false
	case memorymap.BIOS, memorymap.ROM:
		// writes are ignored
		return true
	case memorymap.IO:
		mem.ioWrite8(offset, data)
		return true
	case memorymap.Palette, memorymap.VRAM:
		// "Writing 8bit Data to Video Memory. Video Memory (BG, OBJ, OAM,
		// Palette) can be written to in 16bit and 32bit units only. Attempts
		// to write 8bit data (by STRB opcode) won't work"
		//
		// the value is written to both halves of the halfword
		offset &^= 0x01
		d[offset] = data
		d[offset+1] = data
		return true
	case memorymap.OAM:
		return true
	}
	d[offset] = data
	return true
}

// Write16 implements the arm.Memory interface.
func (mem *Memory) Write16(address uint32, data uint16) bool {
	address &^= 0x01

	d, offset, area := mem.backing(address)
	switch area {
	case memorymap.Unmapped:
		return false
	case memorymap.BIOS, memorymap.ROM:
		return true
	case memorymap.IO:
		mem.ioWrite8(offset, uint8(data))
		mem.ioWrite8(offset+1, uint8(data>>8))
		return true
	case memorymap.SRAM:
		d[offset] = uint8(data)
		return true
	}
	binary.LittleEndian.PutUint16(d[offset:], data)
	return true
}

// Write32 implements the arm.Memory interface.
func (mem *Memory) Write32(address uint32, data uint32) bool {
	address &^= 0x03

	d, offset, area := mem.backing(address)
	switch area {
	case memorymap.Unmapped:
		return false
	case memorymap.BIOS, memorymap.ROM:
		return true
	case memorymap.IO:
		for i := uint32(0); i < 4; i++ {
			mem.ioWrite8(offset+i, uint8(data>>(i*8)))
		}
		return true
	case memorymap.SRAM:
		d[offset] = uint8(data)
		return true
	}
	binary.LittleEndian.PutUint32(d[offset:], data)
	return true
}

// Snapshot returns a copy of the memory contents. The copy shares nothing with
// the original and should only be used as an argument to Plumb().
func (mem *Memory) Snapshot() *Memory {
	return &Memory{
		bios:    slices.Clone(mem.bios),
		ewram:   slices.Clone(mem.ewram),
		iwram:   slices.Clone(mem.iwram),
		io:      slices.Clone(mem.io),
		palette: slices.Clone(mem.palette),
		vram:    slices.Clone(mem.vram),
		oam:     slices.Clone(mem.oam),
		rom:     slices.Clone(mem.rom),
		sram:    slices.Clone(mem.sram),
		waits:   mem.waits,
	}
}

// Plumb replaces the memory contents with a copy of a snapshot. The
// environment and interrupts of the memory are not changed.
func (mem *Memory) Plumb(s *Memory) {
	n := s.Snapshot()
	n.env = mem.env
	n.irq = mem.irq
	*mem = *n
}
