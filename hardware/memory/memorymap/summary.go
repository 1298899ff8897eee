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

import (
	"fmt"
	"strings"
)

var areas = []struct {
	origin uint32
	memtop uint32
	area   Area
	size   uint32
}{
	{origin: OriginBIOS, memtop: MemtopBIOS, area: BIOS, size: SizeBIOS},
	{origin: OriginEWRAM, memtop: MemtopEWRAM, area: EWRAM, size: SizeEWRAM},
	{origin: OriginIWRAM, memtop: MemtopIWRAM, area: IWRAM, size: SizeIWRAM},
	{origin: OriginIO, memtop: MemtopIO, area: IO, size: SizeIO},
	{origin: OriginPalette, memtop: MemtopPalette, area: Palette, size: SizePalette},
	{origin: OriginVRAM, memtop: MemtopVRAM, area: VRAM, size: SizeVRAM},
	{origin: OriginOAM, memtop: MemtopOAM, area: OAM, size: SizeOAM},
	{origin: OriginROM, memtop: MemtopROM, area: ROM, size: SizeROM},
	{origin: OriginSRAM, memtop: MemtopSRAM, area: SRAM, size: SizeSRAM},
}

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	s := strings.Builder{}
	for _, a := range areas {
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s", a.origin, a.memtop, a.area.String()))
		if a.memtop-a.origin+1 > a.size {
			s.WriteString(fmt.Sprintf(" (%dKB mirrored)", a.size/1024))
		}
		s.WriteString("\n")
	}
	return s.String()
}
