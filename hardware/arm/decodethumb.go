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

// ThumbFormat is one of the 19 Thumb instruction formats.
type ThumbFormat int

// List of Thumb formats. See figure 5-1 "THUMB instruction set formats" in
// the "ARM7TDMI Data Sheet".
const (
	ThumbUndefined ThumbFormat = iota
	ThumbMoveShiftedRegister
	ThumbAddSubtract
	ThumbMovCmpAddSubImm
	ThumbALUOperations
	ThumbHiRegisterOps
	ThumbPCRelativeLoad
	ThumbLoadStoreRegisterOffset
	ThumbLoadStoreSignExtended
	ThumbLoadStoreImmOffset
	ThumbLoadStoreHalfword
	ThumbSPRelativeLoadStore
	ThumbLoadAddress
	ThumbAddOffsetToSP
	ThumbPushPopRegisters
	ThumbMultipleLoadStore
	ThumbConditionalBranch
	ThumbSoftwareInterrupt
	ThumbUnconditionalBranch
	ThumbLongBranchWithLink
)

func (f ThumbFormat) String() string {
	switch f {
	case ThumbMoveShiftedRegister:
		return "move shifted register"
	case ThumbAddSubtract:
		return "add/subtract"
	case ThumbMovCmpAddSubImm:
		return "move/compare/add/subtract immediate"
	case ThumbALUOperations:
		return "ALU operations"
	case ThumbHiRegisterOps:
		return "hi register operations/branch exchange"
	case ThumbPCRelativeLoad:
		return "PC-relative load"
	case ThumbLoadStoreRegisterOffset:
		return "load/store with register offset"
	case ThumbLoadStoreSignExtended:
		return "load/store sign-extended byte/halfword"
	case ThumbLoadStoreImmOffset:
		return "load/store with immediate offset"
	case ThumbLoadStoreHalfword:
		return "load/store halfword"
	case ThumbSPRelativeLoadStore:
		return "SP-relative load/store"
	case ThumbLoadAddress:
		return "load address"
	case ThumbAddOffsetToSP:
		return "add offset to stack pointer"
	case ThumbPushPopRegisters:
		return "push/pop registers"
	case ThumbMultipleLoadStore:
		return "multiple load/store"
	case ThumbConditionalBranch:
		return "conditional branch"
	case ThumbSoftwareInterrupt:
		return "software interrupt"
	case ThumbUnconditionalBranch:
		return "unconditional branch"
	case ThumbLongBranchWithLink:
		return "long branch with link"
	}
	return "undefined"
}

// a routine that executes a Thumb instruction
type thumbFunction func(arm *ARM, opcode uint16) Cycles

type thumbPattern struct {
	mask     uint16
	expected uint16
	format   ThumbFormat
	exec     thumbFunction
}

// the order of the list is important. the first matching pattern is used so
// more specific patterns must come before the less specific patterns that
// would also match
var thumbPatterns = []thumbPattern{
	{mask: 0xf000, expected: 0xf000, format: ThumbLongBranchWithLink, exec: thumbLongBranchWithLink},
	{mask: 0xf800, expected: 0xe000, format: ThumbUnconditionalBranch, exec: thumbUnconditionalBranch},
	{mask: 0xff00, expected: 0xdf00, format: ThumbSoftwareInterrupt, exec: thumbSoftwareInterrupt},
	{mask: 0xf000, expected: 0xd000, format: ThumbConditionalBranch, exec: thumbConditionalBranch},
	{mask: 0xf000, expected: 0xc000, format: ThumbMultipleLoadStore, exec: thumbMultipleLoadStore},
	{mask: 0xf600, expected: 0xb400, format: ThumbPushPopRegisters, exec: thumbPushPopRegisters},
	{mask: 0xff00, expected: 0xb000, format: ThumbAddOffsetToSP, exec: thumbAddOffsetToSP},
	{mask: 0xf000, expected: 0xa000, format: ThumbLoadAddress, exec: thumbLoadAddress},
	{mask: 0xf000, expected: 0x9000, format: ThumbSPRelativeLoadStore, exec: thumbSPRelativeLoadStore},
	{mask: 0xf000, expected: 0x8000, format: ThumbLoadStoreHalfword, exec: thumbLoadStoreHalfword},
	{mask: 0xe000, expected: 0x6000, format: ThumbLoadStoreImmOffset, exec: thumbLoadStoreImmOffset},
	{mask: 0xf200, expected: 0x5200, format: ThumbLoadStoreSignExtended, exec: thumbLoadStoreSignExtended},
	{mask: 0xf200, expected: 0x5000, format: ThumbLoadStoreRegisterOffset, exec: thumbLoadStoreRegisterOffset},
	{mask: 0xf800, expected: 0x4800, format: ThumbPCRelativeLoad, exec: thumbPCRelativeLoad},
	{mask: 0xfc00, expected: 0x4400, format: ThumbHiRegisterOps, exec: thumbHiRegisterOps},
	{mask: 0xfc00, expected: 0x4000, format: ThumbALUOperations, exec: thumbALUOperations},
	{mask: 0xe000, expected: 0x2000, format: ThumbMovCmpAddSubImm, exec: thumbMovCmpAddSubImm},
	{mask: 0xf800, expected: 0x1800, format: ThumbAddSubtract, exec: thumbAddSubtract},
	{mask: 0xe000, expected: 0x0000, format: ThumbMoveShiftedRegister, exec: thumbMoveShiftedRegister},
}

// the number of entries in the Thumb lookup table. the table is indexed by
// the top ten bits of the opcode, which is enough to identify the format and
// the ALU operation
const thumbTableSize = 1024

type thumbEntry struct {
	format ThumbFormat
	exec   thumbFunction
}

// buildThumbTable creates the lookup table from the list of patterns. entries
// that match no pattern execute as undefined instructions
func buildThumbTable(patterns []thumbPattern) [thumbTableSize]thumbEntry {
	var t [thumbTableSize]thumbEntry
	for i := range t {
		opcode := uint16(i << 6)
		t[i] = thumbEntry{format: ThumbUndefined, exec: thumbUndefined}
		for _, p := range patterns {
			if opcode&p.mask == p.expected {
				t[i] = thumbEntry{format: p.format, exec: p.exec}
				break
			}
		}
	}
	return t
}

// the Thumb lookup table. it is never modified after initialisation
var thumbTable [thumbTableSize]thumbEntry

func init() {
	thumbTable = buildThumbTable(thumbPatterns)
}

// ClassifyThumb returns the format of the 16bit Thumb instruction.
func ClassifyThumb(opcode uint16) ThumbFormat {
	return thumbTable[opcode>>6].format
}
