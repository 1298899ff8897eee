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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/test"
)

type lines struct {
	styles []terminal.Style
	output []string
}

func (l *lines) TermPrintLine(sty terminal.Style, s string) {
	l.styles = append(l.styles, sty)
	l.output = append(l.output, s)
}

func TestWriter(t *testing.T) {
	l := &lines{}
	w := &terminal.Writer{Output: l, Style: terminal.StyleHelp}

	n, err := w.Write([]byte("one\ntw"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 6)
	test.DemandEquality(t, len(l.output), 1)
	test.ExpectEquality(t, l.output[0], "one")
	test.ExpectEquality(t, l.styles[0], terminal.StyleHelp)

	_, _ = w.Write([]byte("o\nthree"))
	test.DemandEquality(t, len(l.output), 2)
	test.ExpectEquality(t, l.output[1], "two")

	w.Flush()
	test.DemandEquality(t, len(l.output), 3)
	test.ExpectEquality(t, l.output[2], "three")

	// nothing more to flush
	w.Flush()
	test.ExpectEquality(t, len(l.output), 3)
}
