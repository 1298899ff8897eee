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

// Package arm implements the ARM7TDMI processor as found in the Game Boy
// Advance. Both the 32bit ARM instruction set and the 16bit Thumb instruction
// set are supported.
//
// The CPU talks to the rest of the console through the Memory interface and
// the Interrupts type. Step() executes a single instruction (or services an
// interrupt, or idles while halted) and returns the number of cycles consumed.
// The number of cycles is decided by the Memory implementation from the
// sequential, non-sequential and internal cycle counts of the instruction.
//
// Software interrupts are serviced by the high-level BIOS routines in the
// bios package by default. See the hardware/preferences package for the
// option to disable this.
//
// Information about the ARM7TDMI comes from the "ARM7TDMI-S Technical
// Reference Manual r4p3" and the "ARM7TDMI Data Sheet" (ARM DDI 0029E). Quoted
// sections in the code refer to these documents.
package arm
