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

package disassembly

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/test"
)

func TestRegisterList(t *testing.T) {
	test.ExpectEquality(t, registerList(0b10110111, 8), "{R0-R2, R4, R5, R7}")
	test.ExpectEquality(t, registerList(0, 8), "{}")
	test.ExpectEquality(t, registerList(0xe000, 16), "{SP-PC}")
}

func TestSignExtend(t *testing.T) {
	test.ExpectEquality(t, signExtend(0xff, 8), -1)
	test.ExpectEquality(t, signExtend(0x7f, 8), 127)
	test.ExpectEquality(t, signExtend(0x800000, 24), -0x800000)
}
