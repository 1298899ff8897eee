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

package hardware

import (
	"github.com/jetsetilly/gopheradvance/hardware/arm"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
)

// State stores the GBA sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
type State struct {
	CPU *arm.ARMState
	Mem *memory.Memory
	IRQ *arm.Interrupts
}

// Snapshot creates a copy of a previously snapshotted GBA State.
func (s *State) Snapshot() *State {
	return &State{
		CPU: s.CPU.Snapshot(),
		Mem: s.Mem.Snapshot(),
		IRQ: s.IRQ.Snapshot(),
	}
}

// Snapshot the state of the GBA sub-systems.
func (gba *GBA) Snapshot() *State {
	return &State{
		CPU: gba.CPU.Snapshot(),
		Mem: gba.Mem.Snapshot(),
		IRQ: gba.IRQ.Snapshot(),
	}
}

// Plumb a previously snapshotted system. The state is copied so the same
// State can be plumbed more than once.
func (gba *GBA) Plumb(state *State) {
	gba.CPU.Plumb(state.CPU.Snapshot())
	gba.Mem.Plumb(state.Mem)
	gba.IRQ.Plumb(state.IRQ)
}
