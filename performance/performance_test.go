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

package performance

import (
	"encoding/binary"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfile("cpu, TRACE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileAll)

	_, err = ParseProfile("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, UnknownProfile))
}

func TestCalcSpeed(t *testing.T) {
	mhz, accuracy := CalcSpeed(16777216, 1.0)
	test.ExpectApproximate(t, mhz, 16.777216, 0.0001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.0001)

	mhz, accuracy = CalcSpeed(16777216, 2.0)
	test.ExpectApproximate(t, mhz, 8.388608, 0.0001)
	test.ExpectApproximate(t, accuracy, 50.0, 0.0001)

	mhz, _ = CalcSpeed(100, 0)
	test.ExpectEquality(t, mhz, 0.0)
}

func TestRunProfiler(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	var ran bool
	err = RunProfiler(ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat("test_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat("test_cpu.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	Leadtime = 10 * time.Millisecond

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	gba := hardware.NewGBA(env)

	// b .
	rom := make([]byte, 4)
	binary.LittleEndian.PutUint32(rom, 0xeafffffe)
	test.DemandSuccess(t, gba.LoadROM(rom))

	var s strings.Builder
	test.DemandSuccess(t, Check(&s, ProfileNone, gba, "50ms"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "MHz"))
	test.ExpectSuccess(t, gba.Cycles() > 0)

}
