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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// hexValue implements the flag.Value interface for 32bit addresses
type hexValue uint32

func (h *hexValue) String() string {
	return fmt.Sprintf("%#08x", uint32(*h))
}

func (h *hexValue) Set(s string) error {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("not a hexadecimal address: %s", s)
	}
	*h = hexValue(v)
	return nil
}

// ParseHex parses a 32bit hexadecimal address, with or without the 0x
// prefix. Used for arguments that are not flags.
func ParseHex(s string) (uint32, error) {
	var h hexValue
	if err := h.Set(s); err != nil {
		return 0, err
	}
	return uint32(h), nil
}
