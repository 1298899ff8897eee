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
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/arm"
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// "4000204h - WAITCNT - Waitstate Control (R/W)"
//
// the first access (non-sequential) settings of SRAM and the three ROM wait
// states share the same encoding. the second access (sequential) settings
// differ for each ROM wait state
var (
	firstAccess  = [4]int{4, 3, 2, 8}
	secondAccess = [3][2]int{{2, 1}, {4, 1}, {8, 1}}
)

// accessTime is the number of clock cycles for an access to an area,
// including the one base cycle
type accessTime struct {
	nonSequential int
	sequential    int
}

func (a accessTime) String() string {
	return fmt.Sprintf("%d/%d", a.nonSequential, a.sequential)
}

// waitStates is the decoded form of the WAITCNT register
type waitStates struct {
	sram accessTime
	rom  [3]accessTime
}

func (w waitStates) String() string {
	return fmt.Sprintf("SRAM %s WS0 %s WS1 %s WS2 %s", w.sram, w.rom[0], w.rom[1], w.rom[2])
}

func decodeWaitCnt(v uint16) waitStates {
	var w waitStates

	s := firstAccess[v&0x03]
	w.sram = accessTime{nonSequential: 1 + s, sequential: 1 + s}

	for ws := range w.rom {
		first := firstAccess[(v>>(2+ws*3))&0x03]
		second := secondAccess[ws][(v>>(4+ws*3))&0x01]
		w.rom[ws] = accessTime{nonSequential: 1 + first, sequential: 1 + second}
	}

	return w
}

// access times of the areas that are not affected by WAITCNT
var (
	accessFast  = accessTime{nonSequential: 1, sequential: 1}
	accessEWRAM = accessTime{nonSequential: 3, sequential: 3}
)

func (mem *Memory) accessTime(address uint32) accessTime {
	_, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.EWRAM:
		return accessEWRAM
	case memorymap.ROM:
		return mem.waits.rom[memorymap.ROMWaitState(address)]
	case memorymap.SRAM:
		return mem.waits.sram
	}
	return accessFast
}

// WaitCycles implements the arm.Memory interface. The access time of the area
// containing the address is applied to the sequential and non-sequential
// cycles. Internal cycles always take one clock cycle.
func (mem *Memory) WaitCycles(address uint32, c arm.Cycles) int {
	t := mem.accessTime(address)
	return c.Sequential*t.sequential + c.NonSequential*t.nonSequential + c.Internal
}

// WaitStates returns a description of the current WAITCNT settings.
func (mem *Memory) WaitStates() string {
	return fmt.Sprintf("%s: %s", addresses.Registers[addresses.WAITCNT], mem.waits)
}
