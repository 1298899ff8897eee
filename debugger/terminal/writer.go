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

package terminal

import (
	"strings"
)

// Writer adapts an Output implementation to the io.Writer interface. Each
// line written becomes a call to TermPrintLine() with the Style. Incomplete
// lines are held until the next newline or until Flush() is called.
type Writer struct {
	Output Output
	Style  Style
	buffer strings.Builder
}

func (w *Writer) Write(p []byte) (int, error) {
	w.buffer.Write(p)

	s := w.buffer.String()
	lines := strings.Split(s, "\n")
	for _, l := range lines[:len(lines)-1] {
		w.Output.TermPrintLine(w.Style, l)
	}

	w.buffer.Reset()
	w.buffer.WriteString(lines[len(lines)-1])

	return len(p), nil
}

// Flush any incomplete line.
func (w *Writer) Flush() {
	if w.buffer.Len() > 0 {
		w.Output.TermPrintLine(w.Style, w.buffer.String())
		w.buffer.Reset()
	}
}
