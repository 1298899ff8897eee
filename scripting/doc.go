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

// Package scripting allows the emulation to be driven by Lua scripts. It is
// intended for test harnesses that run a test ROM and then inspect the state
// of the machine.
//
// The following functions are available to scripts:
//
//	step([n])           execute n instructions (default 1). returns cycles consumed
//	run(n)              execute a further n instructions
//	reg(n)              value of register n. 15 is the PC
//	setreg(n, v)        set register n. setting the PC is a branch
//	cpsr()              value of the CPSR
//	peek8(addr)         read memory without side effects
//	peek16(addr)
//	peek32(addr)
//	poke8(addr, v)      write memory without side effects
//	poke16(addr, v)
//	poke32(addr, v)
//	interrupt(mask)     request the interrupts in the mask
//	halted()            true if the CPU is waiting for an interrupt
//	cycles()            number of cycles since reset
//	instructions()      number of instructions since reset
//	log(msg)            add a message to the log and the script output
//
// Errors raised by the emulation stop the script. Scripts can use the Lua
// error() function to indicate failure.
package scripting
