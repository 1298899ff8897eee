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

// Package hardware is the base package for the GBA emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// CPU and the parts of the machine that the CPU depends on.
//
// The GBA type is the root of the emulation and contains external references
// to all the sub-systems. From here, the emulation can either be started in
// a continuous running mode with the Run() function or stepped one
// instruction at a time with the Step() function.
//
// The CPU does not know about the GBA type. It is given only the memory bus
// and the interrupt state when it is created. Other parts of the machine
// (peripherals, in the future, or test harnesses today) request interrupts
// through the IRQ field of the GBA type.
package hardware
