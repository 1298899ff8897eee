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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/test"
)

const validMemMap = `00000000 -> 00003fff	BIOS
02000000 -> 02ffffff	EWRAM (256KB mirrored)
03000000 -> 03ffffff	IWRAM (32KB mirrored)
04000000 -> 040003ff	IO
05000000 -> 05ffffff	Palette (1KB mirrored)
06000000 -> 06ffffff	VRAM (96KB mirrored)
07000000 -> 07ffffff	OAM (1KB mirrored)
08000000 -> 0dffffff	ROM (32768KB mirrored)
0e000000 -> 0fffffff	SRAM (64KB mirrored)
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	for _, c := range []struct {
		address uint32
		offset  uint32
		area    memorymap.Area
	}{
		{address: 0x00000128, offset: 0x128, area: memorymap.BIOS},
		{address: 0x00004000, area: memorymap.Unmapped},
		{address: 0x01000000, area: memorymap.Unmapped},
		{address: 0x02000010, offset: 0x10, area: memorymap.EWRAM},
		{address: 0x02040010, offset: 0x10, area: memorymap.EWRAM},
		{address: 0x03007ffc, offset: 0x7ffc, area: memorymap.IWRAM},
		{address: 0x03fffffc, offset: 0x7ffc, area: memorymap.IWRAM},
		{address: 0x04000200, offset: 0x200, area: memorymap.IO},
		{address: 0x04000400, area: memorymap.Unmapped},
		{address: 0x05000400, offset: 0x000, area: memorymap.Palette},
		{address: 0x06017ffe, offset: 0x17ffe, area: memorymap.VRAM},
		{address: 0x06018000, offset: 0x10000, area: memorymap.VRAM},
		{address: 0x06020004, offset: 0x00004, area: memorymap.VRAM},
		{address: 0x070003fe, offset: 0x3fe, area: memorymap.OAM},
		{address: 0x08000000, offset: 0, area: memorymap.ROM},
		{address: 0x0a000100, offset: 0x100, area: memorymap.ROM},
		{address: 0x0dfffffe, offset: 0x1fffffe, area: memorymap.ROM},
		{address: 0x0e00ffff, offset: 0xffff, area: memorymap.SRAM},
		{address: 0x10000000, area: memorymap.Unmapped},
	} {
		offset, area := memorymap.MapAddress(c.address)
		test.ExpectEquality(t, area, c.area, c.address)
		if area != memorymap.Unmapped {
			test.ExpectEquality(t, offset, c.offset, c.address)
		}
	}
}

func TestROMWaitState(t *testing.T) {
	test.ExpectEquality(t, memorymap.ROMWaitState(0x08000000), 0)
	test.ExpectEquality(t, memorymap.ROMWaitState(0x09ffffff), 0)
	test.ExpectEquality(t, memorymap.ROMWaitState(0x0a000000), 1)
	test.ExpectEquality(t, memorymap.ROMWaitState(0x0c000000), 2)
	test.ExpectEquality(t, memorymap.ROMWaitState(0x0dffffff), 2)
}
