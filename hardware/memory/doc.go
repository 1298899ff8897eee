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

// Package memory is the reference memory bus of the GBA. It implements the
// Memory and RegionMapper interfaces of the arm package, which is everything
// the CPU needs to run a program end to end.
//
// The memory is divided into areas, defined in the memorymap package:
//
//	                   ---- BIOS
//	                  |---- EWRAM / IWRAM
//	    CPU ---- * ---|---- IO ---- Interrupts
//	                  |---- Palette / VRAM / OAM
//	                   -<-- ROM / SRAM
//
// The asterisk indicates that addresses used by the CPU are first mapped to an
// area and an offset. Mirrors are handled at that point.
//
// Only the IO registers that the CPU itself needs are implemented. These are
// the interrupt registers (IE, IF and IME), which are backed by the
// arm.Interrupts type, the HALTCNT register, the WAITCNT register and the
// SOUNDBIAS register. The remainder of the IO area is plain memory.
//
// Access times are decided by the area and, for the ROM and SRAM, the
// WAITCNT register. The WaitCycles() function applies the access time of an
// area to the cycle counts returned by the CPU.
package memory
