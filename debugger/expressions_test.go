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
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/arm"
	"github.com/jetsetilly/gopheradvance/test"
)

func prepareDebugger(t *testing.T) *Debugger {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	gba := hardware.NewGBA(env)
	gba.Reset()

	return &Debugger{gba: gba}
}

func TestEvaluate(t *testing.T) {
	dbg := prepareDebugger(t)
	dbg.gba.CPU.SetRegister(3, 0x1234)

	v, err := dbg.evaluateUint32("r3 + 1")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x1235)

	v, err = dbg.evaluateUint32("pc")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, dbg.gba.CPU.Register(arm.PC))

	v, err = dbg.evaluateUint32("sp")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x03007f00)

	// negative values wrap around
	v, err = dbg.evaluateUint32("-1")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xffffffff)

	// IO register names are addresses
	v, err = dbg.evaluateUint32("IE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x04000200)

	// memory can be peeked
	dbg.gba.IRQ.SetIE(0x0005)
	v, err = dbg.evaluateUint32("peek16(IE)")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x0005)

	v, err = dbg.evaluateUint32("peek8(IE+1)")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)

	_, err = dbg.evaluateUint32("'hello'")
	test.ExpectSuccess(t, curated.Is(err, NotAnInteger))

	_, err = dbg.evaluateUint32("r3 +")
	test.ExpectSuccess(t, curated.Is(err, ExpressionError))

	_, err = dbg.evaluateUint32("r16")
	test.ExpectSuccess(t, curated.Is(err, ExpressionError))

	_, err = dbg.evaluateUint32("peek32(0x10000000)")
	test.ExpectSuccess(t, curated.Is(err, ExpressionError))
}

func TestBreakpoints(t *testing.T) {
	dbg := prepareDebugger(t)
	dbg.gba.CPU.SetRegister(0, 10)

	var bp breakpoints
	test.ExpectSuccess(t, bp.isEmpty())
	test.ExpectEquality(t, bp.String(), "no breakpoints")

	bp.add("r0 == 5")
	bp.add("r0 > 5 and r0 < 20")
	test.ExpectFailure(t, bp.isEmpty())
	test.ExpectEquality(t, bp.String(), " 0: r0 == 5\n 1: r0 > 5 and r0 < 20")

	hit, err := bp.check(dbg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hit, "r0 > 5 and r0 < 20")

	dbg.gba.CPU.SetRegister(0, 30)
	hit, err = bp.check(dbg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hit, "")

	bp.clear()
	test.ExpectSuccess(t, bp.isEmpty())
}
