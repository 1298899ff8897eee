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

// Package bios is a high-level implementation of the GBA BIOS routines. The
// routines are called by the CPU when it executes a SWI instruction, instead
// of running the BIOS code itself.
//
// The routines access memory through the Bus interface. The CPU passes
// registers r0 to r3 in and out of the routine with the Registers type.
//
// The package also contains a minimal BIOS image. The image contains only the
// reset and IRQ vectors, and the IRQ dispatcher that calls the user interrupt
// handler. This is enough for programs that use the high-level routines.
package bios
