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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/disassembly"
	"github.com/jetsetilly/gopheradvance/hardware/arm"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/translate"
)

// Error patterns for command parsing.
const (
	UnknownCommand = "unknown command: %s"
	IncorrectArgs  = "%s: %s"
	CommandError   = "%s: %v"
)

// limits and defaults for command arguments
const (
	maxMemoryLength  = 4096
	maxStepCount     = 1000000
	defaultMemLength = 64
	defaultDisasmLen = 8
)

// definition of a debugger command
type command struct {
	// the arguments summary shown by the HELP command
	args string
	help string

	// the minimum and maximum number of arguments. a maximum of -1 means the
	// arguments are not counted
	minArgs int
	maxArgs int

	// the arguments are the fields of the input after the command. rest is
	// the input after the command with the surrounding space removed
	fn func(dbg *Debugger, args []string, rest string) error
}

// the list of commands. initialised in init() because the HELP command refers
// to the list
var commands map[string]command

func init() {
	commands = map[string]command{
		"STEP":     {args: "[n]", help: "step one or more instructions", maxArgs: 1, fn: (*Debugger).cmdStep},
		"RUN":      {help: "run until a breakpoint or an interrupt signal", fn: (*Debugger).cmdRun},
		"REGS":     {help: "show the CPU registers and interrupt state", fn: (*Debugger).cmdRegs},
		"MEM":      {args: "addr [len]", help: "show memory as hex", minArgs: 1, maxArgs: 2, fn: (*Debugger).cmdMem},
		"BREAK":    {args: "[expr | CLEAR]", help: "add, list or clear breakpoints", maxArgs: -1, fn: (*Debugger).cmdBreak},
		"DISASM":   {args: "[addr] [n]", help: "disassemble memory", maxArgs: 2, fn: (*Debugger).cmdDisasm},
		"GRAPH":    {args: "[file]", help: "write a graphviz description of the CPU state", maxArgs: 1, fn: (*Debugger).cmdGraph},
		"SAMPLES":  {args: "addr len [file]", help: "write signed 8bit sample memory as a WAV file", minArgs: 2, maxArgs: 3, fn: (*Debugger).cmdSamples},
		"LOG":      {args: "[n]", help: "show the log, or the last n entries", maxArgs: 1, fn: (*Debugger).cmdLog},
		"RESET":    {help: "reset the machine", fn: (*Debugger).cmdReset},
		"SNAPSHOT": {help: "remember the state of the machine", fn: (*Debugger).cmdSnapshot},
		"RESTORE":  {help: "return the machine to the SNAPSHOT state", fn: (*Debugger).cmdRestore},
		"HELP":     {help: "list commands", fn: (*Debugger).cmdHelp},
		"QUIT":     {help: "leave the debugger", fn: (*Debugger).cmdQuit},
	}
}

// parseCommand tokenises the input and runs the command. empty input does
// nothing
func (dbg *Debugger) parseCommand(input string) error {
	input = strings.TrimSpace(input)
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}

	name := strings.ToUpper(fields[0])
	cmd, ok := commands[name]
	if !ok {
		return curated.Errorf(UnknownCommand, fields[0])
	}

	args := fields[1:]
	if len(args) < cmd.minArgs {
		return curated.Errorf(IncorrectArgs, name, "too few arguments")
	}
	if cmd.maxArgs >= 0 && len(args) > cmd.maxArgs {
		return curated.Errorf(IncorrectArgs, name, "too many arguments")
	}

	rest := strings.TrimSpace(input[len(fields[0]):])

	err := cmd.fn(dbg, args, rest)
	if err != nil {
		return curated.Errorf(CommandError, name, err)
	}
	return nil
}

func (dbg *Debugger) cmdStep(args []string, _ string) error {
	n := 1
	if len(args) > 0 {
		v, err := dbg.evaluateUint32(args[0])
		if err != nil {
			return err
		}
		if v == 0 || v > maxStepCount {
			return curated.Errorf("step count must be between 1 and %d", maxStepCount)
		}
		n = int(v)
	}

	var cycles int
	for i := 0; i < n; i++ {
		c, err := dbg.gba.Step()
		cycles += c
		if err != nil {
			return err
		}
	}

	if n > 1 {
		dbg.printLine(terminal.StyleFeedback, "%s instructions in %s cycles",
			translate.Sprintf("%d", n), translate.Sprintf("%d", cycles))
	}
	dbg.printInstruction()

	return nil
}

func (dbg *Debugger) cmdRun(_ []string, _ string) error {
	// drain any stale interrupt signal
	select {
	case <-dbg.events.Signal:
	default:
	}

	startCycles := dbg.gba.Cycles()

	var hit string
	var interrupted bool

	err := dbg.gba.Run(func(_ int) (bool, error) {
		select {
		case <-dbg.events.Signal:
			interrupted = true
			return false, nil
		default:
		}

		if !dbg.breakpoints.isEmpty() {
			var err error
			hit, err = dbg.breakpoints.check(dbg)
			if err != nil {
				return false, err
			}
			if hit != "" {
				return false, nil
			}
		}

		return true, nil
	})

	if err != nil {
		return err
	}

	switch {
	case hit != "":
		dbg.printLine(terminal.StyleFeedback, "break on: %s", hit)
	case interrupted:
		dbg.printLine(terminal.StyleFeedback, "interrupted")
	}

	dbg.printLine(terminal.StyleFeedback, "%s cycles", translate.Sprintf("%d", dbg.gba.Cycles()-startCycles))
	dbg.printInstruction()

	return nil
}

func (dbg *Debugger) cmdRegs(_ []string, _ string) error {
	dbg.printLines(terminal.StyleFeedback, dbg.gba.CPU.String())
	if spsr, ok := dbg.gba.CPU.SPSR(); ok {
		var sr arm.Status
		sr.SetValue(spsr)
		dbg.printLine(terminal.StyleFeedback, "SPSR: %s", sr.String())
	}
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.gba.IRQ.String())
	return nil
}

func (dbg *Debugger) cmdMem(args []string, _ string) error {
	addr, err := dbg.evaluateUint32(args[0])
	if err != nil {
		return err
	}

	length := defaultMemLength
	if len(args) > 1 {
		v, err := dbg.evaluateUint32(args[1])
		if err != nil {
			return err
		}
		if v == 0 || v > maxMemoryLength {
			return curated.Errorf("length must be between 1 and %d", maxMemoryLength)
		}
		length = int(v)
	}

	data, err := dbg.gba.Mem.PeekRange(addr, length)
	if err != nil {
		return err
	}

	for i := 0; i < len(data); i += 16 {
		j := min(i+16, len(data))
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%08x ", addr+uint32(i)))
		for _, d := range data[i:j] {
			s.WriteString(fmt.Sprintf(" %02x", d))
		}
		dbg.printLine(terminal.StyleFeedback, "%s", s.String())
	}

	return nil
}

func (dbg *Debugger) cmdBreak(args []string, rest string) error {
	if len(args) == 0 {
		dbg.printLines(terminal.StyleFeedback, dbg.breakpoints.String())
		return nil
	}

	if len(args) == 1 && strings.ToUpper(args[0]) == "CLEAR" {
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		return nil
	}

	// make sure the expression can be evaluated before adding it
	_, err := dbg.evaluate(rest)
	if err != nil {
		return err
	}

	dbg.breakpoints.add(rest)
	dbg.printLine(terminal.StyleFeedback, "breakpoint added: %s", rest)

	return nil
}

func (dbg *Debugger) cmdDisasm(args []string, _ string) error {
	addr := dbg.gba.CPU.Register(arm.PC)
	if dbg.disasmValid {
		addr = dbg.disasmNext
	}

	if len(args) > 0 {
		v, err := dbg.evaluateUint32(args[0])
		if err != nil {
			return err
		}
		addr = v
	}

	n := defaultDisasmLen
	if len(args) > 1 {
		v, err := dbg.evaluateUint32(args[1])
		if err != nil {
			return err
		}
		if v == 0 || v > maxMemoryLength {
			return curated.Errorf("count must be between 1 and %d", maxMemoryLength)
		}
		n = int(v)
	}

	dsm, err := disassembly.FromMemory(dbg.gba.Mem, addr, n, dbg.gba.CPU.Status().Thumb())
	if err != nil {
		return err
	}

	for _, e := range dsm.Entries {
		dbg.printLine(terminal.StyleFeedback, "%s", e.Line())
	}

	dbg.disasmNext = dsm.Next()
	dbg.disasmValid = true

	return nil
}

func (dbg *Debugger) cmdLog(args []string, _ string) error {
	w := &terminal.Writer{Output: dbg.term, Style: terminal.StyleFeedback}
	defer w.Flush()

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return curated.Errorf("not a valid number of entries: %s", args[0])
		}
		logger.Tail(w, n)
		return nil
	}

	if !logger.Write(w) {
		dbg.printLine(terminal.StyleFeedback, "log is empty")
	}

	return nil
}

func (dbg *Debugger) cmdReset(_ []string, _ string) error {
	dbg.gba.Reset()
	dbg.disasmValid = false
	dbg.printInstruction()
	return nil
}

func (dbg *Debugger) cmdSnapshot(_ []string, _ string) error {
	dbg.snapshot = dbg.gba.Snapshot()
	dbg.printLine(terminal.StyleFeedback, "snapshot taken at %08x", dbg.gba.CPU.Register(arm.PC))
	return nil
}

func (dbg *Debugger) cmdRestore(_ []string, _ string) error {
	if dbg.snapshot == nil {
		return curated.Errorf("no snapshot to restore")
	}
	dbg.gba.Plumb(dbg.snapshot)
	dbg.disasmValid = false
	dbg.printInstruction()
	return nil
}

func (dbg *Debugger) cmdHelp(_ []string, _ string) error {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		c := commands[n]
		dbg.printLine(terminal.StyleHelp, "%-24s %s", strings.TrimSpace(n+" "+c.args), c.help)
	}
	return nil
}

func (dbg *Debugger) cmdQuit(_ []string, _ string) error {
	dbg.quit = true
	return nil
}
