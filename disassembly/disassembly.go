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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/arm"
)

// Peeker is the memory interface required by FromMemory(). Peeking must not
// cause side effects.
type Peeker interface {
	Peek16(address uint32) (uint16, error)
	Peek32(address uint32) (uint32, error)
}

// Disassembly is a sequence of entries.
type Disassembly struct {
	Entries []Entry
}

// Error patterns.
const (
	UnreadableMemory = "disassembly: %v"
	WriteError       = "disassembly: write: %v"
)

// FromMemory disassembles count instructions starting at the origin address.
// The thumb argument selects the instruction set.
//
// Disassembly stops early, without error, if the memory cannot be read after
// the first instruction.
func FromMemory(mem Peeker, origin uint32, count int, thumb bool) (*Disassembly, error) {
	dsm := &Disassembly{}

	addr := origin
	for len(dsm.Entries) < count {
		var e Entry

		if thumb {
			opcode, err := mem.Peek16(addr)
			if err != nil {
				if len(dsm.Entries) == 0 {
					return nil, curated.Errorf(UnreadableMemory, err)
				}
				break // for loop
			}

			e = Thumb(addr, opcode)

			// try to combine the two halves of a long branch with link
			if arm.ClassifyThumb(opcode) == arm.ThumbLongBranchWithLink && opcode&0x0800 == 0 {
				if lo, err := mem.Peek16(addr + 2); err == nil {
					if bl, ok := ThumbLongBranch(addr, opcode, lo); ok {
						e = bl
					}
				}
			}
		} else {
			opcode, err := mem.Peek32(addr)
			if err != nil {
				if len(dsm.Entries) == 0 {
					return nil, curated.Errorf(UnreadableMemory, err)
				}
				break // for loop
			}
			e = ARM(addr, opcode)
		}

		dsm.Entries = append(dsm.Entries, e)
		addr += uint32(e.Size)
	}

	return dsm, nil
}

// Write the disassembly to the io.Writer, one entry per line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := fmt.Fprintln(output, e.Line()); err != nil {
			return curated.Errorf(WriteError, err)
		}
	}
	return nil
}

// Next returns the address following the last entry in the disassembly.
func (dsm *Disassembly) Next() uint32 {
	if len(dsm.Entries) == 0 {
		return 0
	}
	last := dsm.Entries[len(dsm.Entries)-1]
	return last.Addr + uint32(last.Size)
}
