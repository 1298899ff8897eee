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
	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/arm"
	"github.com/jetsetilly/gopheradvance/hardware/clocks"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/logger"
)

// GBA struct is the main container for the emulated components of the GBA.
type GBA struct {
	Env *environment.Environment

	CPU *arm.ARM
	Mem *memory.Memory
	IRQ *arm.Interrupts
}

// NewGBA creates a new GBA and everything associated with the hardware. It is
// used for all aspects of emulation: debugging sessions, scripted test
// harnesses and regular running.
func NewGBA(env *environment.Environment) *GBA {
	gba := &GBA{
		Env: env,
		IRQ: arm.NewInterrupts(),
	}
	gba.Mem = memory.NewMemory(env, gba.IRQ)
	gba.CPU = arm.NewARM(env, gba.Mem, gba.IRQ)
	return gba
}

// LoadROM copies the data into the ROM area and resets the machine.
func (gba *GBA) LoadROM(data []uint8) error {
	if err := gba.Mem.LoadROM(data); err != nil {
		return err
	}
	gba.Reset()
	return nil
}

// LoadBIOS replaces the BIOS image and resets the machine.
func (gba *GBA) LoadBIOS(data []uint8) error {
	if err := gba.Mem.LoadBIOS(data); err != nil {
		return err
	}
	gba.Reset()
	return nil
}

// Reset the memory and interrupt state and then the CPU. Where the CPU starts
// executing depends on the HLE preference.
func (gba *GBA) Reset() {
	gba.Mem.Reset(gba.Env.Prefs.RandomState.Get().(bool))
	gba.CPU.Reset()
	logger.Logf(gba.Env, "gba", "reset (PC: %08x)", gba.CPU.Register(arm.PC))
}

// Cycles returns the number of clock cycles since the last reset.
func (gba *GBA) Cycles() uint64 {
	return gba.CPU.Cycles()
}

func (gba *GBA) String() string {
	return gba.CPU.String()
}

// Summary returns a one line description of the work done since reset.
func (gba *GBA) Summary() string {
	c := gba.CPU.Cycles()
	return summary(gba.CPU.Instructions(), c, clocks.Duration(c))
}
