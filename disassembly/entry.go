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
	"strings"
)

// Entry is the disassembly of a single instruction.
type Entry struct {
	// the address of the instruction
	Addr uint32

	// the opcode. Thumb opcodes only use the lower 16 bits except for the
	// combined long branch with link, which has the first half in the upper
	// 16 bits
	Opcode uint32

	// true if the instruction is Thumb
	Thumb bool

	// the number of bytes taken by the instruction
	Size int

	// the class of instruction. this is the String() of the arm.Category or
	// arm.ThumbFormat value
	Class string

	Operator string
	Operand  string
}

// String returns the operator and operand.
func (e Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// Line returns the entry formatted for a listing. The opcode field is padded
// so that ARM and Thumb listings line up.
func (e Entry) Line() string {
	var opcode string
	switch e.Size {
	case 2:
		opcode = fmt.Sprintf("%04x", e.Opcode)
	default:
		opcode = fmt.Sprintf("%08x", e.Opcode)
	}
	return fmt.Sprintf("%08x  %-8s  %-8s %s", e.Addr, opcode, e.Operator, e.Operand)
}

// the string used in the Operator field for undefined instructions
const undefinedOperator = "???"

// formats a register list for the block transfer and push/pop instructions.
// runs of more than two registers are written as a range
func registerList(list uint32, count int) string {
	var s strings.Builder
	s.WriteRune('{')

	first := true
	for i := 0; i < count; i++ {
		if list&(1<<i) == 0 {
			continue
		}

		// the last register in the run starting at i
		j := i
		for j+1 < count && list&(1<<(j+1)) != 0 {
			j++
		}

		if !first {
			s.WriteString(", ")
		}
		first = false

		switch j - i {
		case 0:
			s.WriteString(registerName(i))
		case 1:
			s.WriteString(fmt.Sprintf("%s, %s", registerName(i), registerName(j)))
		default:
			s.WriteString(fmt.Sprintf("%s-%s", registerName(i), registerName(j)))
		}

		i = j
	}

	s.WriteRune('}')
	return s.String()
}

func registerName(reg int) string {
	switch reg {
	case 13:
		return "SP"
	case 14:
		return "LR"
	case 15:
		return "PC"
	}
	return fmt.Sprintf("R%d", reg)
}

// sign extend the value which has the specified number of bits
func signExtend(v uint32, bits int) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}
