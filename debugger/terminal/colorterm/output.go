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

package colorterm

import (
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
)

// ANSI sequences used to colour the output
const (
	penReset  = "\033[0m"
	penBold   = "\033[1m"
	penDim    = "\033[2m"
	penRed    = "\033[31m"
	penYellow = "\033[33m"
	penPrompt = "\033[1;34m"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input has already been echoed as it was typed
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.EasyTerm.TermPrint(penDim)
	case terminal.StyleInstrument:
		ct.EasyTerm.TermPrint(penYellow)
	case terminal.StyleError:
		ct.EasyTerm.TermPrint(penBold + penRed)
		s = "* " + s
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(penReset)
	ct.EasyTerm.TermPrint("\n")
}
