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

package scripting_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/scripting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counts from one in r0 forever
var program = []uint32{
	0xe3a00001, // 08000000: mov r0, #1
	0xe2800001, // 08000004: add r0, r0, #1
	0xeafffffd, // 08000008: b 08000004
}

func prepareScript(t *testing.T) (*hardware.GBA, *scripting.Script, *strings.Builder) {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	require.NoError(t, err)
	env.Normalise()

	rom := make([]byte, 0x100)
	for i, o := range program {
		binary.LittleEndian.PutUint32(rom[i*4:], o)
	}

	gba := hardware.NewGBA(env)
	require.NoError(t, gba.LoadROM(rom))

	out := &strings.Builder{}
	scr := scripting.NewScript(gba, out)
	t.Cleanup(scr.Close)

	return gba, scr, out
}

func TestStepAndRegisters(t *testing.T) {
	gba, scr, out := prepareScript(t)

	err := scr.RunString(`
		local c = step()
		if c <= 0 then error("no cycles consumed") end
		log("r0=" .. reg(0))
		step(2)
		log("r0=" .. reg(0))
		run(10)
		log("instructions=" .. instructions())
		run(5)
		log("instructions=" .. instructions())
		setreg(1, 0xdeadbeef)
	`)
	require.NoError(t, err)

	assert.Equal(t, "r0=1\nr0=2\ninstructions=13\ninstructions=18\n", out.String())
	assert.Equal(t, uint64(18), gba.CPU.Instructions())
	assert.Equal(t, uint32(0xdeadbeef), gba.CPU.Register(1))
	assert.NotZero(t, gba.Cycles())
}

func TestMemory(t *testing.T) {
	gba, scr, out := prepareScript(t)

	err := scr.RunString(`
		poke32(0x02000000, 0x12345678)
		poke16(0x02000004, 0xabcd)
		poke8(0x02000006, 0xef)
		log(string.format("%08x", peek32(0x02000000)))
		log(string.format("%02x", peek8(0x02000001)))
		log(string.format("%04x", peek16(0x08000000)))
	`)
	require.NoError(t, err)
	assert.Equal(t, "12345678\n56\n0001\n", out.String())

	v, err := gba.Mem.Peek32(0x02000004)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00efabcd), v)
}

func TestInterrupt(t *testing.T) {
	gba, scr, _ := prepareScript(t)

	require.NoError(t, scr.RunString(`interrupt(1)`))
	assert.Equal(t, uint16(1), gba.IRQ.IF())

	require.NoError(t, scr.RunString(`if halted() then error("halted") end`))
	require.NoError(t, scr.RunString(`if cpsr() % 32 ~= 0x1f then error("not system mode") end`))
}

func TestErrors(t *testing.T) {
	_, scr, _ := prepareScript(t)

	for _, src := range []string{
		`error("test failed")`,
		`peek8(0x10000000)`,
		`reg(16)`,
		`setreg(0, -1)`,
		`this is not lua`,
	} {
		err := scr.RunString(src)
		require.Error(t, err, src)
		assert.True(t, curated.Is(err, scripting.ScriptError), src)
	}
}

func TestRunFile(t *testing.T) {
	_, scr, out := prepareScript(t)

	filename := filepath.Join(t.TempDir(), "test.lua")
	require.NoError(t, os.WriteFile(filename, []byte(`step(3) log("r0=" .. reg(0))`), 0o600))

	require.NoError(t, scr.RunFile(filename))
	assert.Equal(t, "r0=2\n", out.String())

	err := scr.RunFile(filepath.Join(t.TempDir(), "missing.lua"))
	assert.Error(t, err)
}
