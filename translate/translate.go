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

// Package translate formats numbers and messages for the user's locale. The
// locale is found when the package is initialised. American English is used
// if the locale can not be found.
//
// Only numbers are affected at the moment. For example, in an English locale:
//
//	translate.Sprintf("%d cycles", 16777216)
//
// produces "16,777,216 cycles".
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/jetsetilly/gopheradvance/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// the language used when no locale can be found
const fallback = "en-US"

var (
	crit    sync.Mutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		logger.Logf(logger.Allow, "translate", "locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{fallback}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage overrides the locale found when the package was initialised.
// The tag is a BCP 47 language tag, for example "en-GB" or "de". The
// fallback language is used if the tag isn't valid.
func SetLanguage(tag string) {
	t, err := language.Parse(tag)
	if err != nil {
		logger.Logf(logger.Allow, "translate", "language: %v", err)
		t = language.MustParse(fallback)
	}

	crit.Lock()
	defer crit.Unlock()
	printer = message.NewPrinter(t)
}

// Sprintf formats according to the format specifier for the current language.
func Sprintf(format string, args ...any) string {
	crit.Lock()
	defer crit.Unlock()
	return printer.Sprintf(format, args...)
}
