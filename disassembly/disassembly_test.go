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

package disassembly_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/disassembly"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestARM(t *testing.T) {
	for _, c := range []struct {
		addr     uint32
		opcode   uint32
		operator string
		operand  string
	}{
		{opcode: 0xe3a00001, operator: "MOV", operand: "R0, #$1"},
		{opcode: 0xe3a004ff, operator: "MOV", operand: "R0, #$ff000000"},
		{opcode: 0xe0910002, operator: "ADDS", operand: "R0, R1, R2"},
		{opcode: 0xe1500001, operator: "CMP", operand: "R0, R1"},
		{opcode: 0x11a00102, operator: "MOVNE", operand: "R0, R2, LSL #2"},
		{addr: 0x18, opcode: 0xea000042, operator: "B", operand: "$00000128"},
		{addr: 0x100, opcode: 0xebfffffe, operator: "BL", operand: "$00000100"},
		{opcode: 0xe51f0004, operator: "LDR", operand: "R0, [PC, #-$4]"},
		{opcode: 0xe92d400f, operator: "STMDB", operand: "SP!, {R0-R3, LR}"},
		{opcode: 0xe0000291, operator: "MUL", operand: "R0, R1, R2"},
		{opcode: 0xe0810392, operator: "UMULL", operand: "R0, R1, R2, R3"},
		{opcode: 0xef050000, operator: "SWI", operand: "#$050000"},
		{opcode: 0xe12fff1e, operator: "BX", operand: "LR"},
		{opcode: 0xe10f0000, operator: "MRS", operand: "R0, CPSR"},
		{opcode: 0xe129f000, operator: "MSR", operand: "CPSR_cf, R0"},
		{opcode: 0xe1d000b2, operator: "LDRH", operand: "R0, [R0, #$2]"},
		{opcode: 0xf0000000, operator: "???", operand: ""},
	} {
		e := disassembly.ARM(c.addr, c.opcode)
		tag := fmt.Sprintf("%08x", c.opcode)
		test.ExpectEquality(t, e.Operator, c.operator, tag)
		test.ExpectEquality(t, e.Operand, c.operand, tag)
		test.ExpectEquality(t, e.Size, 4, tag)
		test.ExpectFailure(t, e.Thumb, tag)
	}
}

func TestThumb(t *testing.T) {
	for _, c := range []struct {
		addr     uint32
		opcode   uint16
		operator string
		operand  string
	}{
		{opcode: 0x2005, operator: "MOV", operand: "R0, #$05"},
		{opcode: 0x1888, operator: "ADD", operand: "R0, R1, R2"},
		{opcode: 0x4348, operator: "MUL", operand: "R0, R1"},
		{opcode: 0x4770, operator: "BX", operand: "LR"},
		{opcode: 0xb500, operator: "PUSH", operand: "{LR}"},
		{opcode: 0xbd01, operator: "POP", operand: "{R0, PC}"},
		{addr: 0x100, opcode: 0xd0fe, operator: "BEQ", operand: "$00000100"},
		{addr: 0x200, opcode: 0xe7fe, operator: "B", operand: "$00000200"},
		{opcode: 0xdf05, operator: "SWI", operand: "#$05"},
		{addr: 0x102, opcode: 0x4801, operator: "LDR", operand: "R0, [PC, #$4] ; $00000108"},
		{opcode: 0xde00, operator: "???", operand: ""},
		{opcode: 0xe800, operator: "???", operand: ""},
	} {
		e := disassembly.Thumb(c.addr, c.opcode)
		tag := fmt.Sprintf("%04x", c.opcode)
		test.ExpectEquality(t, e.Operator, c.operator, tag)
		test.ExpectEquality(t, e.Operand, c.operand, tag)
		test.ExpectEquality(t, e.Size, 2, tag)
		test.ExpectSuccess(t, e.Thumb, tag)
	}
}

func TestThumbLongBranch(t *testing.T) {
	e, ok := disassembly.ThumbLongBranch(0x100, 0xf000, 0xf802)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "BL $00000108")
	test.ExpectEquality(t, e.Size, 4)

	// halves in the wrong order
	_, ok = disassembly.ThumbLongBranch(0x100, 0xf802, 0xf000)
	test.ExpectFailure(t, ok)
}

func TestLine(t *testing.T) {
	e := disassembly.ARM(0x08000000, 0xe3a00001)
	test.ExpectEquality(t, e.Line(), "08000000  e3a00001  MOV      R0, #$1")

	e = disassembly.Thumb(0x08000000, 0x2005)
	test.ExpectEquality(t, e.Line(), "08000000  2005      MOV      R0, #$05")
}

// peeker is a sparse memory for testing
type peeker map[uint32]uint16

func (p peeker) Peek16(address uint32) (uint16, error) {
	if v, ok := p[address]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unmapped: %08x", address)
}

func (p peeker) Peek32(address uint32) (uint32, error) {
	lo, err := p.Peek16(address)
	if err != nil {
		return 0, err
	}
	hi, err := p.Peek16(address + 2)
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}

func TestFromMemory(t *testing.T) {
	mem := peeker{
		0x100: 0x2005,
		0x102: 0xf000,
		0x104: 0xf802,
		0x106: 0x4770,
	}

	dsm, err := disassembly.FromMemory(mem, 0x100, 10, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(dsm.Entries), 3)
	test.ExpectEquality(t, dsm.Entries[1].String(), "BL $0000010a")
	test.ExpectEquality(t, dsm.Entries[2].Addr, 0x106)
	test.ExpectEquality(t, dsm.Next(), 0x108)

	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, dsm.Write(tw))
	test.ExpectSuccess(t, tw.Compare(
		"00000100  2005      MOV      R0, #$05\n"+
			"00000102  f000f802  BL       $0000010a\n"+
			"00000106  4770      BX       LR\n"), tw.String())

	// ARM instructions from the same memory
	dsm, err = disassembly.FromMemory(mem, 0x100, 10, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(dsm.Entries), 2)

	_, err = disassembly.FromMemory(mem, 0x200, 1, false)
	test.ExpectSuccess(t, curated.Is(err, disassembly.UnreadableMemory))
}
