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

package arm

import (
	"math/bits"
	"testing"

	"github.com/jetsetilly/gopheradvance/test"
)

func TestShifter(t *testing.T) {
	for _, c := range []struct {
		name       string
		value      uint32
		typ        shiftType
		amount     uint32
		byRegister bool
		carryIn    bool
		result     uint32
		carry      bool
	}{
		{name: "LSL #0", value: 0x80000001, typ: shiftLSL, amount: 0, carryIn: true, result: 0x80000001, carry: true},
		{name: "LSL #1", value: 0x80000001, typ: shiftLSL, amount: 1, result: 0x00000002, carry: true},
		{name: "LSR #0 is LSR #32", value: 0x80000000, typ: shiftLSR, amount: 0, result: 0, carry: true},
		{name: "LSR #4", value: 0x000000f8, typ: shiftLSR, amount: 4, result: 0x0000000f, carry: true},
		{name: "ASR #0 is ASR #32", value: 0x80000000, typ: shiftASR, amount: 0, result: 0xffffffff, carry: true},
		{name: "ASR #4", value: 0x80000000, typ: shiftASR, amount: 4, result: 0xf8000000, carry: false},
		{name: "ROR #0 is RRX", value: 0x00000003, typ: shiftROR, amount: 0, carryIn: true, result: 0x80000001, carry: true},
		{name: "ROR #8", value: 0x000000ff, typ: shiftROR, amount: 8, result: 0xff000000, carry: true},
		{name: "reg LSL 0", value: 0x12345678, typ: shiftLSL, amount: 0, byRegister: true, carryIn: true, result: 0x12345678, carry: true},
		{name: "reg LSR 0", value: 0x12345678, typ: shiftLSR, amount: 0, byRegister: true, result: 0x12345678, carry: false},
		{name: "reg LSL 32", value: 0x00000001, typ: shiftLSL, amount: 32, byRegister: true, result: 0, carry: true},
		{name: "reg LSL 33", value: 0xffffffff, typ: shiftLSL, amount: 33, byRegister: true, result: 0, carry: false},
		{name: "reg LSR 32", value: 0x80000000, typ: shiftLSR, amount: 32, byRegister: true, result: 0, carry: true},
		{name: "reg ASR 40", value: 0x80000000, typ: shiftASR, amount: 40, byRegister: true, result: 0xffffffff, carry: true},
		{name: "reg ROR 32", value: 0x80000000, typ: shiftROR, amount: 32, byRegister: true, result: 0x80000000, carry: true},
		{name: "LSL #31", value: 0x00000003, typ: shiftLSL, amount: 31, result: 0x80000000, carry: true},
		{name: "LSR #1", value: 0x00000003, typ: shiftLSR, amount: 1, result: 0x00000001, carry: true},
		{name: "LSR #31", value: 0x80000000, typ: shiftLSR, amount: 31, result: 0x00000001, carry: false},
		{name: "ASR #1", value: 0x80000001, typ: shiftASR, amount: 1, result: 0xc0000000, carry: true},
		{name: "ASR #31", value: 0x40000000, typ: shiftASR, amount: 31, result: 0, carry: true},
		{name: "ROR #1", value: 0x00000001, typ: shiftROR, amount: 1, result: 0x80000000, carry: true},
		{name: "ROR #31", value: 0xc0000000, typ: shiftROR, amount: 31, result: 0x80000001, carry: true},
		{name: "reg LSL 1", value: 0x80000001, typ: shiftLSL, amount: 1, byRegister: true, result: 0x00000002, carry: true},
		{name: "reg LSL 31", value: 0x00000003, typ: shiftLSL, amount: 31, byRegister: true, result: 0x80000000, carry: true},
		{name: "reg LSR 1", value: 0x00000003, typ: shiftLSR, amount: 1, byRegister: true, result: 0x00000001, carry: true},
		{name: "reg LSR 31", value: 0x80000000, typ: shiftLSR, amount: 31, byRegister: true, result: 0x00000001, carry: false},
		{name: "reg LSR 33", value: 0xffffffff, typ: shiftLSR, amount: 33, byRegister: true, result: 0, carry: false},
		{name: "reg ASR 0", value: 0x80000000, typ: shiftASR, amount: 0, byRegister: true, carryIn: true, result: 0x80000000, carry: true},
		{name: "reg ASR 1", value: 0x80000001, typ: shiftASR, amount: 1, byRegister: true, result: 0xc0000000, carry: true},
		{name: "reg ASR 31", value: 0x40000000, typ: shiftASR, amount: 31, byRegister: true, result: 0, carry: true},
		{name: "reg ASR 32", value: 0x7fffffff, typ: shiftASR, amount: 32, byRegister: true, result: 0, carry: false},
		{name: "reg ASR 33", value: 0x80000000, typ: shiftASR, amount: 33, byRegister: true, result: 0xffffffff, carry: true},
		{name: "reg ROR 0", value: 0x80000000, typ: shiftROR, amount: 0, byRegister: true, result: 0x80000000, carry: false},
		{name: "reg ROR 1", value: 0x00000001, typ: shiftROR, amount: 1, byRegister: true, result: 0x80000000, carry: true},
		{name: "reg ROR 31", value: 0xc0000000, typ: shiftROR, amount: 31, byRegister: true, result: 0x80000001, carry: true},
		{name: "reg ROR 33", value: 0x00000003, typ: shiftROR, amount: 33, byRegister: true, result: 0x80000001, carry: true},
	} {
		r, carry := shift(c.value, c.typ, c.amount, c.byRegister, c.carryIn)
		test.ExpectEquality(t, r, c.result, c.name)
		test.ExpectEquality(t, carry, c.carry, c.name)
	}
}

func TestRotatedImmediate(t *testing.T) {
	v, c := rotatedImmediate(0x000000ff, true)
	test.ExpectEquality(t, v, 0xff)
	test.ExpectSuccess(t, c)

	v, c = rotatedImmediate(0x00000102, false)
	test.ExpectEquality(t, v, 0x80000000)
	test.ExpectSuccess(t, c)
}

func TestAddWithCarry(t *testing.T) {
	r, c, v := addWithCarry(0x7fffffff, 1, false)
	test.ExpectEquality(t, r, 0x80000000)
	test.ExpectFailure(t, c)
	test.ExpectSuccess(t, v)

	// subtraction is addition of the inverse with the carry set
	r, c, v = addWithCarry(5, ^uint32(3), true)
	test.ExpectEquality(t, r, 2)
	test.ExpectSuccess(t, c)
	test.ExpectFailure(t, v)

	r, c, _ = addWithCarry(3, ^uint32(5), true)
	test.ExpectEquality(t, r, 0xfffffffe)
	test.ExpectFailure(t, c)
}

func TestMultiplierCycles(t *testing.T) {
	test.ExpectEquality(t, multiplierCycles(0x000000ff, false), 1)
	test.ExpectEquality(t, multiplierCycles(0x0000ffff, false), 2)
	test.ExpectEquality(t, multiplierCycles(0x00ffffff, false), 3)
	test.ExpectEquality(t, multiplierCycles(0xffffffff, false), 4)
	test.ExpectEquality(t, multiplierCycles(0xffffffff, true), 1)
	test.ExpectEquality(t, multiplierCycles(0xffff8000, true), 2)
}

func TestDecodeTableOrder(t *testing.T) {
	for i := 1; i < len(armDecodeTable); i++ {
		a := bits.OnesCount32(armDecodeTable[i-1].mask)
		b := bits.OnesCount32(armDecodeTable[i].mask)
		test.ExpectSuccess(t, a >= b, i)
	}
	test.ExpectEquality(t, armDecodeTable[0].category, BranchAndExchange)

	// the source list is unchanged
	test.ExpectEquality(t, armPatterns[0].category, DataProcessing)
}

func TestThumbTable(t *testing.T) {
	tbl := buildThumbTable(nil)
	for _, e := range tbl {
		test.ExpectEquality(t, e.format, ThumbUndefined)
	}

	for i, e := range thumbTable {
		test.ExpectSuccess(t, e.exec != nil, i)
	}
}

func TestStatusValue(t *testing.T) {
	var sr Status
	sr.SetValue(0x600000bf)
	test.ExpectEquality(t, sr.String(), "nZCv IfT SYS")
	test.ExpectEquality(t, sr.Value(), 0x600000bf)
}
