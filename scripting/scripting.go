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

package scripting

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/arm"
	"github.com/jetsetilly/gopheradvance/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern used for all errors returned by the package.
const ScriptError = "scripting: %v"

// Script is a Lua state connected to an instance of the GBA.
type Script struct {
	gba    *hardware.GBA
	output io.Writer
	state  *lua.LState
}

// NewScript creates a new Lua state for the GBA. Output from the log()
// function is written to the output writer, which can be nil.
func NewScript(gba *hardware.GBA, output io.Writer) *Script {
	scr := &Script{
		gba:    gba,
		output: output,
		state:  lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"step":         scr.step,
		"run":          scr.run,
		"reg":          scr.reg,
		"setreg":       scr.setreg,
		"cpsr":         scr.cpsr,
		"peek8":        scr.peek8,
		"peek16":       scr.peek16,
		"peek32":       scr.peek32,
		"poke8":        scr.poke8,
		"poke16":       scr.poke16,
		"poke32":       scr.poke32,
		"interrupt":    scr.interrupt,
		"halted":       scr.halted,
		"cycles":       scr.cycles,
		"instructions": scr.instructions,
		"log":          scr.log,
	} {
		scr.state.SetGlobal(name, scr.state.NewFunction(fn))
	}

	return scr
}

// Close the Lua state. The Script should not be used after Close().
func (scr *Script) Close() {
	scr.state.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(scr.gba.Env, "scripting", "running %s", filename)
	if err := scr.state.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.state.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// checks that argument n is a 32bit value
func checkUint32(L *lua.LState, n int) uint32 {
	v := L.CheckNumber(n)
	if v < 0 || v > 0xffffffff {
		L.ArgError(n, "not a 32bit value")
	}
	return uint32(v)
}

func checkRegister(L *lua.LState, n int) int {
	r := L.CheckInt(n)
	if r < 0 || r >= arm.NumRegisters {
		L.ArgError(n, "not a register")
	}
	return r
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	var cycles int
	for i := 0; i < n; i++ {
		c, err := scr.gba.Step()
		if err != nil {
			L.RaiseError("%v", err)
		}
		cycles += c
	}
	L.Push(lua.LNumber(cycles))
	return 1
}

func (scr *Script) run(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 {
		L.ArgError(1, "negative instruction count")
	}
	if n == 0 {
		return 0
	}
	err := scr.gba.RunForInstructionCount(scr.gba.CPU.Instructions()+uint64(n), nil)
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	r := checkRegister(L, 1)
	L.Push(lua.LNumber(scr.gba.CPU.Register(r)))
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	r := checkRegister(L, 1)
	v := checkUint32(L, 2)
	scr.gba.CPU.SetRegister(r, v)
	return 0
}

func (scr *Script) cpsr(L *lua.LState) int {
	L.Push(lua.LNumber(scr.gba.CPU.Status().Value()))
	return 1
}

func (scr *Script) peek8(L *lua.LState) int {
	v, err := scr.gba.Mem.Peek8(checkUint32(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) peek16(L *lua.LState) int {
	v, err := scr.gba.Mem.Peek16(checkUint32(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) peek32(L *lua.LState) int {
	v, err := scr.gba.Mem.Peek32(checkUint32(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke8(L *lua.LState) int {
	if err := scr.gba.Mem.Poke8(checkUint32(L, 1), uint8(checkUint32(L, 2))); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) poke16(L *lua.LState) int {
	if err := scr.gba.Mem.Poke16(checkUint32(L, 1), uint16(checkUint32(L, 2))); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) poke32(L *lua.LState) int {
	if err := scr.gba.Mem.Poke32(checkUint32(L, 1), checkUint32(L, 2)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) interrupt(L *lua.LState) int {
	mask := checkUint32(L, 1)
	scr.gba.IRQ.Request(arm.Source(mask))
	return 0
}

func (scr *Script) halted(L *lua.LState) int {
	L.Push(lua.LBool(scr.gba.CPU.Halted()))
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.gba.Cycles()))
	return 1
}

func (scr *Script) instructions(L *lua.LState) int {
	L.Push(lua.LNumber(scr.gba.CPU.Instructions()))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	msg := L.CheckString(1)
	logger.Log(scr.gba.Env, "script", msg)
	if scr.output != nil {
		fmt.Fprintln(scr.output, msg)
	}
	return 0
}
