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

package addresses

import (
	"sort"
	"strings"
)

// IO registers implemented by the reference memory. Other addresses in the IO
// area read back whatever was last written to them.
const (
	SOUNDBIAS = uint32(0x04000088)
	IE        = uint32(0x04000200)
	IF        = uint32(0x04000202)
	WAITCNT   = uint32(0x04000204)
	IME       = uint32(0x04000208)
	POSTFLG   = uint32(0x04000300)
	HALTCNT   = uint32(0x04000301)
)

// Registers maps the address of each implemented IO register to its canonical
// name.
var Registers = map[uint32]string{
	SOUNDBIAS: "SOUNDBIAS",
	IE:        "IE",
	IF:        "IF",
	WAITCNT:   "WAITCNT",
	IME:       "IME",
	POSTFLG:   "POSTFLG",
	HALTCNT:   "HALTCNT",
}

// the reverse of the Registers map. keys are upper case
var canonical map[string]uint32

func init() {
	canonical = make(map[string]uint32)
	for a, n := range Registers {
		canonical[n] = a
	}
}

// Lookup returns the address of the named register. The name is not case
// sensitive.
func Lookup(name string) (uint32, bool) {
	a, ok := canonical[strings.ToUpper(name)]
	return a, ok
}

// Names returns the names of all registers in address order.
func Names() []string {
	addrs := make([]uint32, 0, len(Registers))
	for a := range Registers {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	n := make([]string, len(addrs))
	for i, a := range addrs {
		n[i] = Registers[a]
	}
	return n
}
