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

package prefs

import "slices"

// preference keys that are no longer used. a key found in the file is
// forgotten and will not be written by the next Save()
var defunct = []string{
	// undefined instructions are always fatal
	"hardware.arm7.undefinedIsFatal",

	// replaced by hardware.arm7.prefetchCache
	"hardware.arm7.regionCache",
}

func isDefunct(key string) bool {
	return slices.Contains(defunct, key)
}
