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

// Package debugger implements a single-step debugger for the GBA. Commands
// are read from an implementation of the terminal.Terminal interface and the
// results are printed to the same terminal.
//
// The commands are:
//
//	STEP [n]                  step one or more instructions
//	RUN                       run until a breakpoint or an interrupt signal
//	REGS                      show the CPU registers and interrupt state
//	MEM addr [len]            show memory as hex
//	BREAK [expr | CLEAR]      add, list or clear breakpoints
//	DISASM [addr] [n]         disassemble memory
//	GRAPH [file]              write a graphviz description of the CPU state
//	SAMPLES addr len [file]   write signed 8bit sample memory as a WAV file
//	LOG [n]                   show the log, or the last n entries
//	RESET                     reset the machine
//	SNAPSHOT                  remember the state of the machine
//	RESTORE                   return the machine to the SNAPSHOT state
//	HELP                      list commands
//	QUIT                      leave the debugger
//
// Commands are not case sensitive.
//
// Arguments that are addresses or numbers are Starlark expressions. The
// expressions can refer to the registers with the names r0 to r15, sp, lr and
// pc. The status register is called cpsr. The names of the IO registers are
// also available and have the value of the register's address. The
// peek8(), peek16() and peek32() functions read memory. For example:
//
//	MEM pc-8 16
//	BREAK r0 == 0x55 and peek16(IF) & 1
//
// Arguments other than the BREAK expression are separated by spaces so those
// expressions must not contain any spaces.
package debugger
