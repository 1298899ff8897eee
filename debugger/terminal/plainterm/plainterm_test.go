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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestPlainTerminal(t *testing.T) {
	tw := &test.CompareWriter{}
	pt := &plainterm.PlainTerminal{
		Input:  strings.NewReader("STEP 2\r\nREGS"),
		Output: tw,
	}
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead("> ", nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "STEP 2")

	// final line without a newline
	s, err = pt.TermRead("> ", nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "REGS")

	_, err = pt.TermRead("> ", nil)
	test.ExpectEquality(t, err, io.EOF)

	// the prompt is not written for input that isn't a terminal
	test.ExpectEquality(t, tw.String(), "")

	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectSuccess(t, tw.Compare("feedback\n* error\n"), tw.String())

	tw.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectSuccess(t, tw.Compare("* error\n"), tw.String())
}
