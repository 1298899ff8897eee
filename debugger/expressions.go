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

package debugger

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Error patterns for expression evaluation.
const (
	ExpressionError = "expression: %v"
	NotAnInteger    = "expression: not an integer: %s"
)

// the name of the variable the result of an expression is assigned to
const resultName = "rc"

// the names that can be used in an expression. the register values are
// refreshed every time an expression is evaluated
func (dbg *Debugger) predeclared() starlark.StringDict {
	env := starlark.StringDict{}

	regs := dbg.gba.CPU.Registers()
	for i, r := range regs {
		env[fmt.Sprintf("r%d", i)] = starlark.MakeUint64(uint64(r))
	}
	env["sp"] = env["r13"]
	env["lr"] = env["r14"]
	env["pc"] = env["r15"]
	env["cpsr"] = starlark.MakeUint64(uint64(dbg.gba.CPU.Status().Value()))

	for _, n := range addresses.Names() {
		a, _ := addresses.Lookup(n)
		env[n] = starlark.MakeUint64(uint64(a))
	}

	env["peek8"] = starlark.NewBuiltin("peek8", dbg.peek(8))
	env["peek16"] = starlark.NewBuiltin("peek16", dbg.peek(16))
	env["peek32"] = starlark.NewBuiltin("peek32", dbg.peek(32))

	return env
}

// returns a builtin function that reads memory with the width in bits
func (dbg *Debugger) peek(width int) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var v starlark.Value
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
			return nil, err
		}

		addr, err := toUint32(v)
		if err != nil {
			return nil, err
		}

		var d uint32
		switch width {
		case 8:
			var r uint8
			r, err = dbg.gba.Mem.Peek8(addr)
			d = uint32(r)
		case 16:
			var r uint16
			r, err = dbg.gba.Mem.Peek16(addr)
			d = uint32(r)
		default:
			d, err = dbg.gba.Mem.Peek32(addr)
		}
		if err != nil {
			return nil, err
		}

		return starlark.MakeUint64(uint64(d)), nil
	}
}

// evaluate the expression and return the result
func (dbg *Debugger) evaluate(expr string) (starlark.Value, error) {
	thread := &starlark.Thread{Name: "debugger"}
	opts := syntax.FileOptions{}

	prog := fmt.Sprintf("%s = %s\n", resultName, expr)
	globals, err := starlark.ExecFileOptions(&opts, thread, "expression", prog, dbg.predeclared())
	if err != nil {
		return nil, curated.Errorf(ExpressionError, err)
	}

	rc, ok := globals[resultName]
	if !ok {
		return nil, curated.Errorf(ExpressionError, "no result")
	}

	return rc, nil
}

// evaluate the expression as a 32bit value. negative values wrap around
func (dbg *Debugger) evaluateUint32(expr string) (uint32, error) {
	v, err := dbg.evaluate(expr)
	if err != nil {
		return 0, err
	}
	return toUint32(v)
}

func toUint32(v starlark.Value) (uint32, error) {
	i, ok := v.(starlark.Int)
	if !ok {
		return 0, curated.Errorf(NotAnInteger, v.String())
	}
	if u, ok := i.Uint64(); ok {
		return uint32(u), nil
	}
	if s, ok := i.Int64(); ok {
		return uint32(s), nil
	}
	return 0, curated.Errorf(NotAnInteger, v.String())
}
