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

package debugger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/disassembly"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/arm"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	gba  *hardware.GBA
	term terminal.Terminal

	// events monitored by the terminal while waiting for input and by the
	// RUN command
	events *terminal.ReadEvents

	breakpoints breakpoints

	// the address following the most recent DISASM command. used if the
	// next DISASM command does not specify an address
	disasmNext  uint32
	disasmValid bool

	// the state saved by the SNAPSHOT command
	snapshot *hardware.State

	// set by the QUIT command
	quit bool
}

// NewDebugger creates and initialises everything required for a new
// debugging session. Start() should be called to start the session.
func NewDebugger(gba *hardware.GBA, term terminal.Terminal) (*Debugger, error) {
	if gba == nil {
		return nil, curated.Errorf("debugger: no machine to debug")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: no terminal")
	}

	dbg := &Debugger{
		gba:  gba,
		term: term,
		events: &terminal.ReadEvents{
			Signal: make(chan os.Signal, 1),
		},
	}

	return dbg, nil
}

// Start the main debugger sequence. Returns when the QUIT command is entered
// or the input ends.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.events.Signal, os.Interrupt)
	defer signal.Stop(dbg.events.Signal)

	logger.Log(dbg.gba.Env, "debugger", "starting debugging session")
	dbg.printInstruction()

	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.prompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				continue // for loop
			}
			if curated.Is(err, terminal.UserAbort) || errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		err = dbg.parseCommand(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

func (dbg *Debugger) prompt() string {
	if dbg.gba.CPU.Halted() {
		return fmt.Sprintf("[%08x halted] > ", dbg.gba.CPU.Register(arm.PC))
	}
	set := "ARM"
	if dbg.gba.CPU.Status().Thumb() {
		set = "Thumb"
	}
	return fmt.Sprintf("[%08x %s] > ", dbg.gba.CPU.Register(arm.PC), set)
}

func (dbg *Debugger) printLine(sty terminal.Style, format string, args ...interface{}) {
	dbg.term.TermPrintLine(sty, fmt.Sprintf(format, args...))
}

// prints each line of a multiline string
func (dbg *Debugger) printLines(sty terminal.Style, s string) {
	for _, l := range strings.Split(s, "\n") {
		dbg.term.TermPrintLine(sty, l)
	}
}

// print the disassembly of the instruction at the PC
func (dbg *Debugger) printInstruction() {
	pc := dbg.gba.CPU.Register(arm.PC)
	dsm, err := disassembly.FromMemory(dbg.gba.Mem, pc, 1, dbg.gba.CPU.Status().Thumb())
	if err != nil {
		dbg.printLine(terminal.StyleError, "%v", err)
		return
	}
	dbg.printLine(terminal.StyleInstrument, "%s", dsm.Entries[0].Line())
}
