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

// Package colorterm implements the Terminal interface for the debugger. It
// puts the terminal into cbreak mode and handles the input a character at a
// time. This allows the space bar to step the CPU without the return key being
// pressed. Output is coloured according to the style of the line.
package colorterm

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/debugger/terminal/colorterm/easyterm"
	"golang.org/x/term"
)

// StepCommand is the input returned by TermRead() when the space bar is
// pressed on an empty line.
const StepCommand = "STEP"

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader   *bufio.Reader
	silenced bool
}

// Available returns true if stdin and stdout are both terminals. The
// ColorTerminal will not work otherwise.
func Available() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	if !Available() {
		return curated.Errorf("colorterm: stdin and stdout must be a terminal")
	}

	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.reader = bufio.NewReader(os.Stdin)
	ct.EasyTerm.CBreakMode()

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint(penReset)
	_ = ct.EasyTerm.Flush()
	ct.EasyTerm.CleanUp()
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string, events *terminal.ReadEvents) (string, error) {
	ct.EasyTerm.TermPrint(penPrompt + prompt + penReset)

	var input strings.Builder

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				return "", curated.Errorf(terminal.UserAbort)
			}
			return "", curated.Errorf("colorterm: %v", err)
		}

		if events != nil {
			select {
			case <-events.Signal:
				ct.EasyTerm.TermPrint("\n")
				return "", curated.Errorf(terminal.UserInterrupt)
			default:
			}
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOT:
			if input.Len() == 0 {
				ct.EasyTerm.TermPrint("\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.EasyTerm.TermPrint("\n")
			return input.String(), nil

		case easyterm.KeySpace:
			if input.Len() == 0 {
				ct.EasyTerm.TermPrint(StepCommand + "\n")
				return StepCommand, nil
			}
			input.WriteRune(r)
			ct.EasyTerm.TermPrint(" ")

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if input.Len() > 0 {
				s := []rune(input.String())
				input.Reset()
				input.WriteString(string(s[:len(s)-1]))
				ct.EasyTerm.TermPrint("\b \b")
			}

		default:
			if unicode.IsPrint(r) {
				input.WriteRune(r)
				ct.EasyTerm.TermPrint(string(r))
			}
		}
	}
}
