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

//go:build !(linux || darwin)

package easyterm

import (
	"fmt"
	"os"
)

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// EasyTerm is not available on this platform. Initialise() always fails.
type EasyTerm struct{}

// Initialise always returns an error on this platform.
func (et *EasyTerm) Initialise(_, _ *os.File) error {
	return fmt.Errorf("easyterm: not available on this platform")
}

// CleanUp does nothing on this platform.
func (et *EasyTerm) CleanUp() {}

// TermPrint does nothing on this platform.
func (et *EasyTerm) TermPrint(_ string) {}

// Geometry returns an empty geometry on this platform.
func (et *EasyTerm) Geometry() TermGeometry {
	return TermGeometry{}
}

// CanonicalMode does nothing on this platform.
func (et *EasyTerm) CanonicalMode() {}

// CBreakMode does nothing on this platform.
func (et *EasyTerm) CBreakMode() {}

// Flush does nothing on this platform.
func (et *EasyTerm) Flush() error {
	return nil
}
