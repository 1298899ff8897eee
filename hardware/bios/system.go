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

// the region of work RAM cleared by SoftReset
const (
	softResetStart = 0x03007e00
	softResetEnd   = 0x03008000
)

// entry points chosen by SoftReset
const (
	entryROM   = 0x08000000
	entryEWRAM = 0x02000000
)

func softReset(_ *HLE, _ *Registers, bus Bus) (Result, error) {
	flag, err := read8(bus, ResetFlag)
	if err != nil {
		return Result{}, err
	}

	if err := clearRegion(bus, softResetStart, softResetEnd); err != nil {
		return Result{}, err
	}

	pc := uint32(entryROM)
	if flag != 0 {
		pc = entryEWRAM
	}

	return Result{Action: SoftReset, PC: pc}, nil
}

// the regions of memory cleared by RegisterRamReset. indexed by bit in the
// flags argument
var ramResetRegions = []struct {
	start uint32
	end   uint32
}{
	{start: 0x02000000, end: 0x02040000}, // EWRAM
	{start: 0x03000000, end: 0x03007e00}, // IWRAM excluding the stack area
	{start: 0x05000000, end: 0x05000400}, // palette
	{start: 0x06000000, end: 0x06018000}, // VRAM
	{start: 0x07000000, end: 0x07000400}, // OAM
}

func registerRAMReset(_ *HLE, r *Registers, bus Bus) (Result, error) {
	flags := r[0]
	for i, rg := range ramResetRegions {
		if flags&(1<<i) != 0 {
			if err := clearRegion(bus, rg.start, rg.end); err != nil {
				return Result{}, err
			}
		}
	}
	return Result{}, nil
}

func halt(_ *HLE, _ *Registers, _ Bus) (Result, error) {
	return Result{Action: Halt}, nil
}

// intrWait waits for one of the interrupts in r1 to be flagged in IntrCheck
// by the user interrupt handler. if r0 is non-zero then flags already set
// are discarded on the first call
func intrWait(h *HLE, r *Registers, bus Bus) (Result, error) {
	flags := uint16(r[1])

	// the BIOS enables interrupts in the master enable register
	if err := write16(bus, regIME, 1); err != nil {
		return Result{}, err
	}

	check, err := read16(bus, IntrCheck)
	if err != nil {
		return Result{}, err
	}

	if !h.waiting && r[0] != 0 {
		check &^= flags
		if err := write16(bus, IntrCheck, check); err != nil {
			return Result{}, err
		}
	}

	if check&flags != 0 {
		h.waiting = false
		if err := write16(bus, IntrCheck, check&^flags); err != nil {
			return Result{}, err
		}
		return Result{}, nil
	}

	h.waiting = true
	return Result{Action: Wait}, nil
}

func vblankIntrWait(h *HLE, r *Registers, bus Bus) (Result, error) {
	r[0] = 1
	r[1] = 1
	return intrWait(h, r, bus)
}

// the value returned by GetBiosChecksum for the GBA BIOS
const biosChecksum = 0xbaae187f

func getBiosChecksum(_ *HLE, r *Registers, _ Bus) (Result, error) {
	r[0] = biosChecksum
	return Result{}, nil
}

// soundBias sets the bias level of the SOUNDBIAS register. the real BIOS
// moves the level gradually. here the level is set immediately
func soundBias(_ *HLE, r *Registers, bus Bus) (Result, error) {
	v, err := read16(bus, regSOUNDBIAS)
	if err != nil {
		return Result{}, err
	}

	v &^= 0x03fe
	if r[0] != 0 {
		v |= 0x0200
	}

	return Result{}, write16(bus, regSOUNDBIAS, v)
}
