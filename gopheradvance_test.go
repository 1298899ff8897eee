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

package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/test"
	"github.com/jetsetilly/gopheradvance/version"
)

// writes a ROM that counts in r0 forever
func writeROM(t *testing.T) string {
	t.Helper()

	rom := make([]byte, 8)
	binary.LittleEndian.PutUint32(rom[0:], 0xe2800001) // add r0, r0, #1
	binary.LittleEndian.PutUint32(rom[4:], 0xeafffffd) // b 08000000

	fn := filepath.Join(t.TempDir(), "count.gba")
	test.DemandSuccess(t, os.WriteFile(fn, rom, 0o600))
	return fn
}

func TestVersion(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"VERSION"}, &s), exitOK)
	test.ExpectEquality(t, s.String(), version.String()+"\n")

	s.Reset()
	test.ExpectEquality(t, launch([]string{"VERSION", "-revision"}, &s), exitOK)
	test.ExpectEquality(t, s.String(), version.Current().Long())
}

func TestRunWithLimit(t *testing.T) {
	rom := writeROM(t)

	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"RUN", "-limit", "10", rom}, &s), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "10 instructions"))

	// RUN is the default mode
	s.Reset()
	test.ExpectEquality(t, launch([]string{"-limit", "4", rom}, &s), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "4 instructions"))
}

func TestDisasm(t *testing.T) {
	rom := writeROM(t)

	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"DISASM", rom}, &s), exitOK)

	lines := strings.Split(strings.TrimSpace(s.String()), "\n")
	test.ExpectEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "08000000  e2800001"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "08000004  eafffffd"))
}

func TestScript(t *testing.T) {
	rom := writeROM(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("step(3)\nlog(\"r0=\" .. reg(0))\n"), 0o600))

	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"SCRIPT", fn, rom}, &s), exitOK)
	test.ExpectEquality(t, s.String(), "r0=2\n")
}

func TestErrors(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"RUN"}, &s), exitModeError)
	test.ExpectSuccess(t, strings.Contains(s.String(), "GBA ROM required"))

	s.Reset()
	test.ExpectEquality(t, launch([]string{"RUN", filepath.Join(t.TempDir(), "missing.gba")}, &s), exitModeError)

	s.Reset()
	test.ExpectEquality(t, launch([]string{"SCRIPT"}, &s), exitModeError)
}

func TestHelp(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"-help"}, &s), exitOK)
	test.ExpectSuccess(t, strings.Contains(s.String(), "available sub-modes: RUN, DEBUG, DISASM, SCRIPT, PERFORMANCE, VERSION"))
}
