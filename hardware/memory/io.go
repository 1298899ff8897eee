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
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// the offsets of the IO registers with special behaviour
const (
	ioIE      = addresses.IE - memorymap.OriginIO
	ioIF      = addresses.IF - memorymap.OriginIO
	ioWAITCNT = addresses.WAITCNT - memorymap.OriginIO
	ioIME     = addresses.IME - memorymap.OriginIO
	ioHALTCNT = addresses.HALTCNT - memorymap.OriginIO
)

// ioRead8 reads a single byte of the IO area. wider reads are made up of
// byte reads
func (mem *Memory) ioRead8(offset uint32) uint8 {
	shift := (offset & 0x01) * 8

	switch offset &^ 0x01 {
	case ioIE:
		return uint8(mem.irq.IE() >> shift)
	case ioIF:
		return uint8(mem.irq.IF() >> shift)
	case ioIME:
		if shift == 0 && mem.irq.IME() {
			return 0x01
		}
		return 0x00
	}

	return mem.io[offset]
}

// ioWrite8 writes a single byte of the IO area. wider writes are made up of
// byte writes, which means that writing a halfword to IF only acknowledges the
// interrupts with a bit set in the written value
func (mem *Memory) ioWrite8(offset uint32, data uint8) {
	shift := (offset & 0x01) * 8

	switch offset &^ 0x01 {
	case ioIE:
		ie := mem.irq.IE()&^(0xff<<shift) | uint16(data)<<shift
		mem.irq.SetIE(ie)
		return
	case ioIF:
		// "Write 1 to acknowledge"
		mem.irq.Acknowledge(uint16(data) << shift)
		return
	case ioIME:
		if shift == 0 {
			mem.irq.SetIME(data&0x01 == 0x01)
		}
		return
	}

	mem.io[offset] = data

	switch offset {
	case ioWAITCNT, ioWAITCNT + 1:
		mem.waits = decodeWaitCnt(uint16(mem.io[ioWAITCNT]) | uint16(mem.io[ioWAITCNT+1])<<8)
	case ioHALTCNT:
		// bit 7 selects stop mode rather than halt mode. the difference is
		// not important to the CPU
		mem.irq.Halt()
	}
}
