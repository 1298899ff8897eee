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

package translate_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/test"
	"github.com/jetsetilly/gopheradvance/translate"
)

func TestSprintf(t *testing.T) {
	translate.SetLanguage("en-US")
	test.ExpectEquality(t, translate.Sprintf("%d cycles", 16777216), "16,777,216 cycles")
	test.ExpectEquality(t, translate.Sprintf("%d", 100), "100")

	translate.SetLanguage("de")
	test.ExpectEquality(t, translate.Sprintf("%d", 1234567), "1.234.567")

	// an invalid tag falls back to American English
	translate.SetLanguage("not a language")
	test.ExpectEquality(t, translate.Sprintf("%d", 1234567), "1,234,567")
}
