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

// bits of the control argument to CpuSet and CpuFastSet
const (
	setCountMask   = 0x001fffff
	setFixedSource = 1 << 24
	setWordSize    = 1 << 26
)

// cpuSet copies or fills memory in units of halfwords or words
func cpuSet(_ *HLE, r *Registers, bus Bus) (Result, error) {
	src := r[0]
	dest := r[1]
	control := r[2]

	count := control & setCountMask
	fixed := control&setFixedSource == setFixedSource

	if control&setWordSize == setWordSize {
		return Result{}, copyWords(bus, src, dest, count, fixed)
	}

	for i := uint32(0); i < count; i++ {
		v, err := read16(bus, src)
		if err != nil {
			return Result{}, err
		}
		if err := write16(bus, dest, v); err != nil {
			return Result{}, err
		}
		if !fixed {
			src += 2
		}
		dest += 2
	}

	return Result{}, nil
}

// cpuFastSet copies or fills memory in units of words. the real BIOS works
// in blocks of eight words so the count is rounded up
func cpuFastSet(_ *HLE, r *Registers, bus Bus) (Result, error) {
	src := r[0]
	dest := r[1]
	control := r[2]

	count := (control&setCountMask + 7) &^ 7
	fixed := control&setFixedSource == setFixedSource

	return Result{}, copyWords(bus, src, dest, count, fixed)
}

func copyWords(bus Bus, src uint32, dest uint32, count uint32, fixed bool) error {
	for i := uint32(0); i < count; i++ {
		v, err := read32(bus, src)
		if err != nil {
			return err
		}
		if err := write32(bus, dest, v); err != nil {
			return err
		}
		if !fixed {
			src += 4
		}
		dest += 4
	}
	return nil
}
