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

package bios_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/bios"
	"github.com/jetsetilly/gopheradvance/test"
)

// testBus is a sparse memory. every address below 0x10000000 is mapped
type testBus struct {
	mem map[uint32]uint8
}

func newTestBus() *testBus {
	return &testBus{mem: make(map[uint32]uint8)}
}

func (b *testBus) mapped(addr uint32) bool {
	return addr < 0x10000000
}

func (b *testBus) Read8(addr uint32) (uint8, bool) {
	return b.mem[addr], b.mapped(addr)
}

func (b *testBus) Read16(addr uint32) (uint16, bool) {
	return uint16(b.mem[addr]) | uint16(b.mem[addr+1])<<8, b.mapped(addr)
}

func (b *testBus) Read32(addr uint32) (uint32, bool) {
	lo, _ := b.Read16(addr)
	hi, _ := b.Read16(addr + 2)
	return uint32(lo) | uint32(hi)<<16, b.mapped(addr)
}

func (b *testBus) Write8(addr uint32, val uint8) bool {
	b.mem[addr] = val
	return b.mapped(addr)
}

func (b *testBus) Write16(addr uint32, val uint16) bool {
	b.mem[addr] = uint8(val)
	b.mem[addr+1] = uint8(val >> 8)
	return b.mapped(addr)
}

func (b *testBus) Write32(addr uint32, val uint32) bool {
	b.Write16(addr, uint16(val))
	b.Write16(addr+2, uint16(val>>16))
	return b.mapped(addr)
}

func (b *testBus) load(addr uint32, data []byte) {
	for i, v := range data {
		b.mem[addr+uint32(i)] = v
	}
}

func (b *testBus) bytes(addr uint32, n int) []byte {
	d := make([]byte, n)
	for i := range d {
		d[i] = b.mem[addr+uint32(i)]
	}
	return d
}

func TestLZ77(t *testing.T) {
	compressed := []byte{
		0x10, 0x0b, 0x00, 0x00, 0x01, 0x61, 0x62, 0x72,
		0x61, 0x63, 0x61, 0x64, 0x10, 0x06, 0x00, 0x00,
	}

	for _, sel := range []uint32{0x11, 0x12} {
		bus := newTestBus()
		bus.load(0x08000000, compressed)

		h := bios.NewHLE()
		r := bios.Registers{0x08000000, 0x02000000}
		res, err := h.Call(sel, &r, bus)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, res.Action, bios.Continue)
		test.ExpectEquality(t, string(bus.bytes(0x02000000, 11)), "abracadabra")

		// the byte following the output is only touched by the halfword
		// writes, in which case it is padding
		test.ExpectEquality(t, bus.mem[0x0200000b], 0)
	}
}

func TestLZ77BadHeader(t *testing.T) {
	bus := newTestBus()
	bus.load(0x08000000, []byte{0x30, 0x04, 0x00, 0x00})

	h := bios.NewHLE()
	r := bios.Registers{0x08000000, 0x02000000}
	_, err := h.Call(0x11, &r, bus)
	test.ExpectSuccess(t, curated.Is(err, bios.BadHeader))
}

func TestRL(t *testing.T) {
	// three literal bytes followed by a run of five 'z'
	compressed := []byte{
		0x30, 0x08, 0x00, 0x00,
		0x02, 'a', 'b', 'c',
		0x82, 'z',
	}

	bus := newTestBus()
	bus.load(0x08000000, compressed)

	h := bios.NewHLE()
	r := bios.Registers{0x08000000, 0x02000000}
	_, err := h.Call(0x14, &r, bus)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(bus.bytes(0x02000000, 8)), "abczzzzz")
}

func TestDiv(t *testing.T) {
	h := bios.NewHLE()
	bus := newTestBus()

	r := bios.Registers{uint32(0xfffffff9), 2} // -7 / 2
	_, err := h.Call(0x06, &r, bus)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int32(r[0]), -3)
	test.ExpectEquality(t, int32(r[1]), -1)
	test.ExpectEquality(t, r[3], 3)

	// DivArm has the arguments swapped
	r = bios.Registers{2, 7}
	_, err = h.Call(0x07, &r, bus)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r[0], 3)
	test.ExpectEquality(t, r[1], 1)

	r = bios.Registers{10, 0}
	_, err = h.Call(0x06, &r, bus)
	test.ExpectSuccess(t, curated.Is(err, bios.DivideByZero))
}

func TestSqrt(t *testing.T) {
	h := bios.NewHLE()
	for _, c := range []struct{ in, out uint32 }{
		{0, 0}, {1, 1}, {15, 3}, {16, 4}, {1000000, 1000}, {0xffffffff, 0xffff},
	} {
		r := bios.Registers{c.in}
		_, err := h.Call(0x08, &r, nil)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, r[0], c.out, c.in)
	}
}

func TestArcTan2(t *testing.T) {
	h := bios.NewHLE()

	// along the positive y axis is a quarter turn
	r := bios.Registers{0, 0x4000}
	_, err := h.Call(0x0a, &r, nil)
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, int(r[0]), 0x4000, 0.001)

	// along the negative x axis is half a turn
	r = bios.Registers{uint32(0xc000), 0}
	_, err = h.Call(0x0a, &r, nil)
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, int(r[0]), 0x8000, 0.001)
}

func TestCpuSet(t *testing.T) {
	h := bios.NewHLE()
	bus := newTestBus()
	bus.load(0x02000000, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	// halfword copy of four halfwords
	r := bios.Registers{0x02000000, 0x03000000, 4}
	_, err := h.Call(0x0b, &r, bus)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(bus.bytes(0x03000000, 8)), string([]byte{1, 2, 3, 4, 5, 6, 7, 8}))

	// word fill of two words
	r = bios.Registers{0x02000000, 0x03000100, 2 | 1<<24 | 1<<26}
	_, err = h.Call(0x0b, &r, bus)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(bus.bytes(0x03000100, 8)), string([]byte{1, 2, 3, 4, 1, 2, 3, 4}))

	// fast set rounds the count up to eight words
	r = bios.Registers{0x02000000, 0x03000200, 1 | 1<<24}
	_, err = h.Call(0x0c, &r, bus)
	test.DemandSuccess(t, err)
	v, _ := bus.Read32(0x0300021c)
	test.ExpectEquality(t, v, 0x04030201)
}

func TestIntrWait(t *testing.T) {
	h := bios.NewHLE()
	bus := newTestBus()

	// a VBlank flag already set is discarded on the first call
	bus.Write16(bios.IntrCheck, 0x0001)
	r := bios.Registers{}
	res, err := h.Call(0x05, &r, bus)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Action, bios.Wait)

	// master enable is set by the routine
	ime, _ := bus.Read16(0x04000208)
	test.ExpectEquality(t, ime, 1)

	// the interrupt handler sets the flag and the routine is called again
	bus.Write16(bios.IntrCheck, 0x0001)
	res, err = h.Call(0x05, &r, bus)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Action, bios.Continue)

	// the flag has been acknowledged
	check, _ := bus.Read16(bios.IntrCheck)
	test.ExpectEquality(t, check, 0)
}

func TestSoftReset(t *testing.T) {
	h := bios.NewHLE()
	bus := newTestBus()
	bus.Write32(0x03007e00, 0xdeadbeef)

	r := bios.Registers{}
	res, err := h.Call(0x00, &r, bus)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Action, bios.SoftReset)
	test.ExpectEquality(t, res.PC, 0x08000000)

	v, _ := bus.Read32(0x03007e00)
	test.ExpectEquality(t, v, 0)

	// a non-zero reset flag boots from work RAM
	bus.Write8(bios.ResetFlag, 1)
	res, err = h.Call(0x00, &r, bus)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.PC, 0x02000000)
}

func TestObjAffineSet(t *testing.T) {
	h := bios.NewHLE()
	bus := newTestBus()

	// scale 1.0 in both directions with no rotation
	bus.Write16(0x02000000, 0x0100)
	bus.Write16(0x02000002, 0x0100)
	bus.Write16(0x02000004, 0x0000)

	r := bios.Registers{0x02000000, 0x07000006, 1, 8}
	_, err := h.Call(0x0f, &r, bus)
	test.DemandSuccess(t, err)

	pa, _ := bus.Read16(0x07000006)
	pb, _ := bus.Read16(0x0700000e)
	pc, _ := bus.Read16(0x07000016)
	pd, _ := bus.Read16(0x0700001e)
	test.ExpectEquality(t, pa, 0x0100)
	test.ExpectEquality(t, pb, 0)
	test.ExpectEquality(t, pc, 0)
	test.ExpectEquality(t, pd, 0x0100)
}

func TestUnknownSelector(t *testing.T) {
	h := bios.NewHLE()
	r := bios.Registers{}
	_, err := h.Call(0x03, &r, newTestBus())
	test.ExpectSuccess(t, curated.Is(err, bios.UnknownSelector))
	test.ExpectEquality(t, bios.Name(0x0b), "CpuSet")
}

func TestImage(t *testing.T) {
	img := bios.Image()
	test.ExpectEquality(t, len(img), bios.Size)

	// IRQ vector branches to the dispatcher
	test.ExpectEquality(t, binary.LittleEndian.Uint32(img[0x18:]), 0xea000042)

	stub := []byte{
		0x0f, 0x50, 0x2d, 0xe9, 0x01, 0x03, 0xa0, 0xe3,
		0x00, 0xe0, 0x8f, 0xe2, 0x04, 0xf0, 0x10, 0xe5,
		0x0f, 0x50, 0xbd, 0xe8, 0x04, 0xf0, 0x5e, 0xe2,
	}
	test.ExpectEquality(t, string(img[0x128:0x128+len(stub)]), string(stub))
}
