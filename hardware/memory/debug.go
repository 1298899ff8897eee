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

import "github.com/jetsetilly/gopheradvance/curated"

// Peek and Poke functions are for use by the debugger and scripting. Unlike
// the Read and Write functions, an unmapped address is reported as an error.
// Note that IO registers have the same side effects as they do for the CPU.

// Peek8 returns the byte at the address.
func (mem *Memory) Peek8(address uint32) (uint8, error) {
	v, ok := mem.Read8(address)
	if !ok {
		return 0, curated.Errorf(UnmappedAddress, address)
	}
	return v, nil
}

// Peek16 returns the halfword at the address. The address is aligned.
func (mem *Memory) Peek16(address uint32) (uint16, error) {
	v, ok := mem.Read16(address)
	if !ok {
		return 0, curated.Errorf(UnmappedAddress, address)
	}
	return v, nil
}

// Peek32 returns the word at the address. The address is aligned.
func (mem *Memory) Peek32(address uint32) (uint32, error) {
	v, ok := mem.Read32(address)
	if !ok {
		return 0, curated.Errorf(UnmappedAddress, address)
	}
	return v, nil
}

// Poke8 writes the byte to the address.
func (mem *Memory) Poke8(address uint32, value uint8) error {
	if !mem.Write8(address, value) {
		return curated.Errorf(UnmappedAddress, address)
	}
	return nil
}

// Poke16 writes the halfword to the address. The address is aligned.
func (mem *Memory) Poke16(address uint32, value uint16) error {
	if !mem.Write16(address, value) {
		return curated.Errorf(UnmappedAddress, address)
	}
	return nil
}

// Poke32 writes the word to the address. The address is aligned.
func (mem *Memory) Poke32(address uint32, value uint32) error {
	if !mem.Write32(address, value) {
		return curated.Errorf(UnmappedAddress, address)
	}
	return nil
}

// PeekRange returns a copy of length bytes starting at the address.
func (mem *Memory) PeekRange(address uint32, length int) ([]uint8, error) {
	d := make([]uint8, length)
	for i := range d {
		v, err := mem.Peek8(address + uint32(i))
		if err != nil {
			return nil, err
		}
		d[i] = v
	}
	return d, nil
}
