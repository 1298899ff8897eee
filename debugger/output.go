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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/hardware/arm"
	"github.com/jetsetilly/gopheradvance/paths"
	"github.com/jetsetilly/gopheradvance/wavwriter"
)

// the parts of the machine described by the GRAPH command
type graphCPU struct {
	Registers []uint32
	CPSR      string
	SPSR      string
	Halted    bool
	IRQ       *graphIRQ
}

type graphIRQ struct {
	IE  string
	IF  string
	IME bool
}

// filename to use when the user has not supplied one
func outputFilename(args []string, idx int, prepend string, ext string) string {
	if len(args) > idx {
		return args[idx]
	}
	return paths.UniqueFilename(prepend, "") + ext
}

// write a graphviz description of the CPU state and the interrupt state
func (dbg *Debugger) cmdGraph(args []string, _ string) (rerr error) {
	fn := outputFilename(args, 0, "graph", ".dot")

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = err
		}
	}()

	regs := dbg.gba.CPU.Registers()
	g := &graphCPU{
		Registers: regs[:],
		CPSR:      dbg.gba.CPU.Status().String(),
		Halted:    dbg.gba.CPU.Halted(),
		IRQ: &graphIRQ{
			IE:  arm.Source(dbg.gba.IRQ.IE()).String(),
			IF:  arm.Source(dbg.gba.IRQ.IF()).String(),
			IME: dbg.gba.IRQ.IME(),
		},
	}
	if spsr, ok := dbg.gba.CPU.SPSR(); ok {
		var sr arm.Status
		sr.SetValue(spsr)
		g.SPSR = sr.String()
	}

	memviz.Map(f, g)
	dbg.printLine(terminal.StyleFeedback, "graph written to %s", fn)

	return nil
}

// write memory as a sequence of signed 8bit samples, which is the format
// used by the Direct Sound channels
func (dbg *Debugger) cmdSamples(args []string, _ string) error {
	addr, err := dbg.evaluateUint32(args[0])
	if err != nil {
		return err
	}

	length, err := dbg.evaluateUint32(args[1])
	if err != nil {
		return err
	}
	if length == 0 || length > maxSamplesLength {
		return curated.Errorf("length must be between 1 and %d", maxSamplesLength)
	}

	data, err := dbg.gba.Mem.PeekRange(addr, int(length))
	if err != nil {
		return err
	}

	fn := outputFilename(args, 2, "samples", ".wav")

	aw, err := wavwriter.New(fn, wavwriter.SampleRate)
	if err != nil {
		return err
	}
	aw.AddSigned8(data)

	err = aw.Write()
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "%d samples written to %s", aw.Len(), fn)

	return nil
}

// the largest sample memory that can be written. the size of EWRAM
const maxSamplesLength = 0x40000
