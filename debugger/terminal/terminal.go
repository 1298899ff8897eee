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

// Package terminal defines the operations required by the debugger's command
// line interface. Implementations are found in the plainterm and colorterm
// sub-packages.
package terminal

import "os"

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a single line of input with the trailing newline
	// removed. The prompt is displayed if the implementation is interactive.
	//
	// The Signal channel in ReadEvents should be checked if possible while
	// waiting for input.
	TermRead(prompt string, events *ReadEvents) (string, error)

	// IsInteractive returns true for implementations that expect the input
	// to be typed by a user.
	IsInteractive() bool
}

// Sentinal errors returned by TermRead() if caught whilst waiting for input.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// ReadEvents should be monitored during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal chan os.Signal
}

// Style is used to describe the purpose of a line of output. Implementations
// are free to ignore the style.
type Style int

// List of Style values.
const (
	// the input as it was typed. not echoed by most implementations
	StyleEcho Style = iota

	// information returned in response to a command
	StyleFeedback

	// information about the instruction that has just been executed or is
	// about to be executed
	StyleInstrument

	// help messages
	StyleHelp

	// error messages. should be displayed even when the terminal has been
	// silenced
	StyleError
)

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. Not all implementations need to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
