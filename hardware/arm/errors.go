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

package arm

// Sentinal error patterns. Errors returned by Step() are curated errors
// created with one of these patterns.
//
// The UndefinedInstruction, ReservedCondition and CoprocessorInstruction
// errors are always wrapped by a DecodeError.
const (
	DecodeError            = "arm7: decode error: %v"
	UndefinedInstruction   = "undefined instruction %08x (PC: %08x)"
	ReservedCondition      = "reserved condition in instruction %08x (PC: %08x)"
	CoprocessorInstruction = "coprocessor instruction %08x (PC: %08x)"
	UnmappedSWI            = "arm7: unmapped SWI %02x (PC: %08x)"
	SWIError               = "arm7: SWI %02x: %v (PC: %08x)"
	MemoryFault            = "arm7: memory fault: %s: %08x (PC: %08x)"
	NoSPSR                 = "arm7: no SPSR in %s mode (PC: %08x)"
	InvalidMode            = "arm7: invalid mode %05b (PC: %08x)"
)
