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

// Package disassembly produces a readable form of ARM and Thumb instructions.
//
// Single instructions are disassembled with the ARM() and Thumb() functions.
// Instructions are classified with the same tables that the CPU in the arm
// package uses to decide how an instruction is executed. Because of this the
// disassembly and the execution of an opcode can never disagree about what
// sort of instruction it is.
//
// FromMemory() disassembles a sequence of instructions from anything that
// implements the Peeker interface. The memory package in the hardware
// directory is the usual Peeker. The Thumb long branch with link, which is two
// 16bit instructions, is combined into a single entry when both halves are
// found together.
package disassembly
