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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/arm"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/test"
)

func prepareTestMemory(t *testing.T) (*memory.Memory, *arm.Interrupts) {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	irq := arm.NewInterrupts()
	return memory.NewMemory(env, irq), irq
}

func TestImplements(t *testing.T) {
	mem, _ := prepareTestMemory(t)
	test.ExpectImplements[arm.Memory](t, mem)
	test.ExpectImplements[arm.RegionMapper](t, mem)
}

func TestMirrors(t *testing.T) {
	mem, _ := prepareTestMemory(t)

	test.ExpectSuccess(t, mem.Write32(0x03007ffc, 0x08000100))
	v, ok := mem.Read32(0x03fffffc)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x08000100)

	test.ExpectSuccess(t, mem.Write16(0x02000000, 0xbeef))
	h, ok := mem.Read16(0x02040000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, h, 0xbeef)
}

func TestUnmapped(t *testing.T) {
	mem, _ := prepareTestMemory(t)

	_, ok := mem.Read32(0x10000000)
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, mem.Write8(0x01000000, 0))

	// there is no ROM so the ROM area is unmapped
	_, ok = mem.Read16(0x08000000)
	test.ExpectFailure(t, ok)

	_, err := mem.Peek8(0x00004000)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))
}

func TestROM(t *testing.T) {
	mem, _ := prepareTestMemory(t)
	test.DemandSuccess(t, mem.LoadROM([]byte{0x01, 0x02, 0x03, 0x04}))

	for _, a := range []uint32{0x08000000, 0x0a000000, 0x0c000000} {
		v, ok := mem.Read32(a)
		test.ExpectSuccess(t, ok, a)
		test.ExpectEquality(t, v, 0x04030201, a)
	}

	// writes are ignored
	test.ExpectSuccess(t, mem.Write8(0x08000000, 0xff))
	b, _ := mem.Read8(0x08000000)
	test.ExpectEquality(t, b, 0x01)

	// reading past the end of the ROM
	_, ok := mem.Read32(0x08000004)
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, curated.Is(mem.LoadROM(make([]byte, 0x2000001)), memory.ROMTooLarge))
}

func TestBIOS(t *testing.T) {
	mem, _ := prepareTestMemory(t)

	// the minimal BIOS image is present by default
	v, ok := mem.Read32(0x00000018)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0xea000042)

	test.DemandSuccess(t, mem.LoadBIOS([]byte{0xaa, 0xbb}))
	v, _ = mem.Read32(0x00000000)
	test.ExpectEquality(t, v, 0x0000bbaa)
	v, _ = mem.Read32(0x00000018)
	test.ExpectEquality(t, v, 0)

	test.ExpectSuccess(t, curated.Is(mem.LoadBIOS(make([]byte, 0x4001)), memory.BIOSSize))
}

func TestInterruptRegisters(t *testing.T) {
	mem, irq := prepareTestMemory(t)

	test.ExpectSuccess(t, mem.Write16(0x04000200, 0x0009))
	test.ExpectEquality(t, irq.IE(), 0x0009)

	irq.Request(arm.VBlank | arm.VCount)
	v, _ := mem.Read16(0x04000202)
	test.ExpectEquality(t, v, 0x0005)

	// writing a one acknowledges the interrupt
	test.ExpectSuccess(t, mem.Write16(0x04000202, 0x0001))
	test.ExpectEquality(t, irq.IF(), 0x0004)

	// IE and IF read together as a word
	w, _ := mem.Read32(0x04000200)
	test.ExpectEquality(t, w, 0x00040009)

	test.ExpectSuccess(t, mem.Write32(0x04000208, 0xffffffff))
	test.ExpectSuccess(t, irq.IME())
	v, _ = mem.Read16(0x04000208)
	test.ExpectEquality(t, v, 0x0001)
}

func TestHaltRegister(t *testing.T) {
	mem, irq := prepareTestMemory(t)

	// writing POSTFLG alone does not halt
	test.ExpectSuccess(t, mem.Write8(0x04000300, 0x01))
	test.ExpectFailure(t, irq.Halted())

	test.ExpectSuccess(t, mem.Write8(0x04000301, 0x00))
	test.ExpectSuccess(t, irq.Halted())
}

func TestOtherIO(t *testing.T) {
	mem, _ := prepareTestMemory(t)

	test.ExpectSuccess(t, mem.Write16(0x04000088, 0x0200))
	v, _ := mem.Read16(0x04000088)
	test.ExpectEquality(t, v, 0x0200)

	test.ExpectSuccess(t, mem.Write32(0x04000000, 0x12345678))
	w, _ := mem.Read32(0x04000000)
	test.ExpectEquality(t, w, 0x12345678)
}

func TestWaitCycles(t *testing.T) {
	mem, _ := prepareTestMemory(t)
	c := arm.Cycles{Sequential: 2, NonSequential: 1, Internal: 1}

	test.ExpectEquality(t, mem.WaitCycles(0x03000000, c), 4)
	test.ExpectEquality(t, mem.WaitCycles(0x02000000, c), 10)

	// WS0 defaults to 4/2 wait states
	test.ExpectEquality(t, mem.WaitCycles(0x08000000, c), 2*3+5+1)

	// WS0 3/1, WS1 2/1
	test.ExpectSuccess(t, mem.Write16(0x04000204, 0x0014|0x00c0))
	test.ExpectEquality(t, mem.WaitCycles(0x08000000, c), 2*2+4+1)
	test.ExpectEquality(t, mem.WaitCycles(0x0a000000, c), 2*2+3+1)

	// WS2 has not been changed
	test.ExpectEquality(t, mem.WaitCycles(0x0c000000, c), 2*9+5+1)

	// SRAM 8 wait states
	test.ExpectSuccess(t, mem.Write16(0x04000204, 0x0003))
	test.ExpectEquality(t, mem.WaitCycles(0x0e000000, c), 3*9+1)

	// unmapped addresses cost the same as the fast areas
	test.ExpectEquality(t, mem.WaitCycles(0x10000000, c), 4)
}

func TestVideoByteWrites(t *testing.T) {
	mem, _ := prepareTestMemory(t)

	test.ExpectSuccess(t, mem.Write8(0x05000001, 0x3c))
	v, _ := mem.Read16(0x05000000)
	test.ExpectEquality(t, v, 0x3c3c)

	test.ExpectSuccess(t, mem.Write8(0x07000000, 0x3c))
	v, _ = mem.Read16(0x07000000)
	test.ExpectEquality(t, v, 0)
}

func TestSRAM(t *testing.T) {
	mem, _ := prepareTestMemory(t)

	test.ExpectSuccess(t, mem.Write16(0x0e000010, 0x1234))
	b, _ := mem.Read8(0x0e000010)
	test.ExpectEquality(t, b, 0x34)
	w, _ := mem.Read32(0x0e000010)
	test.ExpectEquality(t, w, 0x34343434)
}

func TestMapRegion(t *testing.T) {
	mem, _ := prepareTestMemory(t)
	test.DemandSuccess(t, mem.LoadROM(make([]byte, 0x100)))

	data, origin, ok := mem.MapRegion(0x0a000010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, origin, 0x0a000000)
	test.ExpectEquality(t, len(data), 0x100)

	data, origin, ok = mem.MapRegion(0x03ff8010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, origin, 0x03ff8000)
	test.ExpectEquality(t, len(data), 0x8000)

	_, _, ok = mem.MapRegion(0x06000000)
	test.ExpectFailure(t, ok)
	_, _, ok = mem.MapRegion(0x08000100)
	test.ExpectFailure(t, ok)
}

func TestReset(t *testing.T) {
	mem, irq := prepareTestMemory(t)
	test.ExpectSuccess(t, mem.Write32(0x03000000, 0xffffffff))
	test.ExpectSuccess(t, mem.Write32(0x0e000000, 0xaa))
	irq.SetIME(true)

	mem.Reset(false)
	v, _ := mem.Read32(0x03000000)
	test.ExpectEquality(t, v, 0)
	test.ExpectFailure(t, irq.IME())

	// SRAM survives a reset
	b, _ := mem.Read8(0x0e000000)
	test.ExpectEquality(t, b, 0xaa)

	data, err := mem.PeekRange(0x0e000000, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(data), 2)
}
