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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case BIOS:
		return "BIOS"
	case EWRAM:
		return "EWRAM"
	case IWRAM:
		return "IWRAM"
	case IO:
		return "IO"
	case Palette:
		return "Palette"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	case ROM:
		return "ROM"
	case SRAM:
		return "SRAM"
	}

	return "unmapped"
}

// The different memory areas in the GBA.
const (
	Unmapped Area = iota
	BIOS
	EWRAM
	IWRAM
	IO
	Palette
	VRAM
	OAM
	ROM
	SRAM
)

// The origin and memory top for each area of memory. The memtop is the top of
// the area including all mirrors.
const (
	OriginBIOS    = uint32(0x00000000)
	MemtopBIOS    = uint32(0x00003fff)
	OriginEWRAM   = uint32(0x02000000)
	MemtopEWRAM   = uint32(0x02ffffff)
	OriginIWRAM   = uint32(0x03000000)
	MemtopIWRAM   = uint32(0x03ffffff)
	OriginIO      = uint32(0x04000000)
	MemtopIO      = uint32(0x040003ff)
	OriginPalette = uint32(0x05000000)
	MemtopPalette = uint32(0x05ffffff)
	OriginVRAM    = uint32(0x06000000)
	MemtopVRAM    = uint32(0x06ffffff)
	OriginOAM     = uint32(0x07000000)
	MemtopOAM     = uint32(0x07ffffff)
	OriginROM     = uint32(0x08000000)
	MemtopROM     = uint32(0x0dffffff)
	OriginSRAM    = uint32(0x0e000000)
	MemtopSRAM    = uint32(0x0fffffff)
)

// The size of the memory backing each area. An area larger than the size is
// made up of mirrors.
const (
	SizeBIOS    = 0x4000
	SizeEWRAM   = 0x40000
	SizeIWRAM   = 0x8000
	SizeIO      = 0x400
	SizePalette = 0x400
	SizeVRAM    = 0x18000
	SizeOAM     = 0x400
	SizeROM     = 0x2000000
	SizeSRAM    = 0x10000
)

// VRAM is mirrored every 128KB but there is only 96KB of it. The last 32KB of
// each mirror is a copy of the 32KB at 0x10000
const (
	vramMirror = 0x20000
	vramUpper  = 0x8000
)

// MapAddress translates the address to an area and the offset into the
// memory backing that area. The offset is meaningless if the area is
// Unmapped.
func MapAddress(address uint32) (uint32, Area) {
	switch address >> 24 {
	case 0x00:
		if address <= MemtopBIOS {
			return address, BIOS
		}
	case 0x02:
		return address & (SizeEWRAM - 1), EWRAM
	case 0x03:
		return address & (SizeIWRAM - 1), IWRAM
	case 0x04:
		if address <= MemtopIO {
			return address - OriginIO, IO
		}
	case 0x05:
		return address & (SizePalette - 1), Palette
	case 0x06:
		offset := address & (vramMirror - 1)
		if offset >= SizeVRAM {
			offset -= vramUpper
		}
		return offset, VRAM
	case 0x07:
		return address & (SizeOAM - 1), OAM
	case 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d:
		return address & (SizeROM - 1), ROM
	case 0x0e, 0x0f:
		return address & (SizeSRAM - 1), SRAM
	}

	return 0, Unmapped
}

// ROMWaitState returns the wait state (0, 1 or 2) used when accessing the ROM
// through the address. The ROM is visible three times in the address space,
// each with a different wait state setting in the WAITCNT register.
//
// The result is meaningless if the address is not in the ROM area.
func ROMWaitState(address uint32) int {
	return int((address - OriginROM) >> 25)
}
