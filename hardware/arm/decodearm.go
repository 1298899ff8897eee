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

import (
	"math/bits"
	"sort"

	"github.com/jetsetilly/gopheradvance/curated"
)

// Category is the instruction class of a 32bit ARM instruction.
type Category int

// List of instruction categories. See figure 4-1 "ARM instruction set
// formats" in the "ARM7TDMI Data Sheet".
const (
	DataProcessing Category = iota
	PSRTransferMRS
	PSRTransferMSR
	Multiply
	MultiplyLong
	SingleDataSwap
	BranchAndExchange
	HalfwordTransferReg
	HalfwordTransferImm
	SingleDataTransfer
	Undefined
	BlockDataTransfer
	Branch
	CoprocessorDataTransfer
	CoprocessorDataOperation
	CoprocessorRegisterTransfer
	SoftwareInterrupt
)

func (c Category) String() string {
	switch c {
	case DataProcessing:
		return "data processing"
	case PSRTransferMRS:
		return "MRS"
	case PSRTransferMSR:
		return "MSR"
	case Multiply:
		return "multiply"
	case MultiplyLong:
		return "multiply long"
	case SingleDataSwap:
		return "single data swap"
	case BranchAndExchange:
		return "branch and exchange"
	case HalfwordTransferReg:
		return "halfword transfer (register offset)"
	case HalfwordTransferImm:
		return "halfword transfer (immediate offset)"
	case SingleDataTransfer:
		return "single data transfer"
	case Undefined:
		return "undefined"
	case BlockDataTransfer:
		return "block data transfer"
	case Branch:
		return "branch"
	case CoprocessorDataTransfer:
		return "coprocessor data transfer"
	case CoprocessorDataOperation:
		return "coprocessor data operation"
	case CoprocessorRegisterTransfer:
		return "coprocessor register transfer"
	case SoftwareInterrupt:
		return "software interrupt"
	}
	return "unknown"
}

// an instruction belongs to the category if opcode&mask == expected. the
// condition field is never part of the mask
type decodeEntry struct {
	mask     uint32
	expected uint32
	category Category
}

// the unsorted list of instruction patterns. some categories need more than
// one entry
var armPatterns = []decodeEntry{
	{mask: 0x0c000000, expected: 0x00000000, category: DataProcessing},
	{mask: 0x0fbf0fff, expected: 0x010f0000, category: PSRTransferMRS},
	{mask: 0x0fb0fff0, expected: 0x0120f000, category: PSRTransferMSR},
	{mask: 0x0fb0f000, expected: 0x0320f000, category: PSRTransferMSR},
	{mask: 0x0fc000f0, expected: 0x00000090, category: Multiply},
	{mask: 0x0f8000f0, expected: 0x00800090, category: MultiplyLong},
	{mask: 0x0fb00ff0, expected: 0x01000090, category: SingleDataSwap},
	{mask: 0x0ffffff0, expected: 0x012fff10, category: BranchAndExchange},

	// the halfword transfers are split by the SH field so that the multiply
	// and swap instructions (SH == 00) never match
	{mask: 0x0e400ff0, expected: 0x000000b0, category: HalfwordTransferReg},
	{mask: 0x0e400ff0, expected: 0x000000d0, category: HalfwordTransferReg},
	{mask: 0x0e400ff0, expected: 0x000000f0, category: HalfwordTransferReg},
	{mask: 0x0e4000f0, expected: 0x004000b0, category: HalfwordTransferImm},
	{mask: 0x0e4000f0, expected: 0x004000d0, category: HalfwordTransferImm},
	{mask: 0x0e4000f0, expected: 0x004000f0, category: HalfwordTransferImm},

	{mask: 0x0c000000, expected: 0x04000000, category: SingleDataTransfer},
	{mask: 0x0e000010, expected: 0x06000010, category: Undefined},
	{mask: 0x0e000000, expected: 0x08000000, category: BlockDataTransfer},
	{mask: 0x0e000000, expected: 0x0a000000, category: Branch},
	{mask: 0x0e000000, expected: 0x0c000000, category: CoprocessorDataTransfer},
	{mask: 0x0f000010, expected: 0x0e000000, category: CoprocessorDataOperation},
	{mask: 0x0f000010, expected: 0x0e000010, category: CoprocessorRegisterTransfer},
	{mask: 0x0f000000, expected: 0x0f000000, category: SoftwareInterrupt},
}

// sortDecodeTable returns a copy of the patterns ordered so that the most
// specific pattern (the one with the most bits in the mask) is tested first.
// the sort is stable so patterns of equal specificity keep their relative
// order
func sortDecodeTable(patterns []decodeEntry) []decodeEntry {
	t := make([]decodeEntry, len(patterns))
	copy(t, patterns)
	sort.SliceStable(t, func(i, j int) bool {
		return bits.OnesCount32(t[i].mask) > bits.OnesCount32(t[j].mask)
	})
	return t
}

// the sorted decode table. it is never modified after initialisation
var armDecodeTable = sortDecodeTable(armPatterns)

// ClassifyARM returns the category of the 32bit ARM instruction. Opcodes that
// match no pattern are Undefined.
func ClassifyARM(opcode uint32) Category {
	for _, e := range armDecodeTable {
		if opcode&e.mask == e.expected {
			return e.category
		}
	}
	return Undefined
}

// executeARM runs the instruction. the condition field has already been
// checked
func (arm *ARM) executeARM(opcode uint32) Cycles {
	switch ClassifyARM(opcode) {
	case DataProcessing:
		return arm.executeDataProcessing(opcode)
	case PSRTransferMRS:
		return arm.executeMRS(opcode)
	case PSRTransferMSR:
		return arm.executeMSR(opcode)
	case Multiply:
		return arm.executeMultiply(opcode)
	case MultiplyLong:
		return arm.executeMultiplyLong(opcode)
	case SingleDataSwap:
		return arm.executeSwap(opcode)
	case BranchAndExchange:
		return arm.executeBranchAndExchange(opcode)
	case HalfwordTransferReg, HalfwordTransferImm:
		return arm.executeHalfwordTransfer(opcode)
	case SingleDataTransfer:
		return arm.executeSingleDataTransfer(opcode)
	case BlockDataTransfer:
		return arm.executeBlockDataTransfer(opcode)
	case Branch:
		return arm.executeBranch(opcode)
	case SoftwareInterrupt:
		return arm.softwareInterrupt((opcode >> 16) & 0xff)
	case CoprocessorDataTransfer, CoprocessorDataOperation, CoprocessorRegisterTransfer:
		// there are no coprocessors in the GBA
		arm.decodeError(CoprocessorInstruction, opcode)
		return Cycles{}
	}

	arm.decodeError(UndefinedInstruction, opcode)
	return Cycles{}
}

// decodeError records an error that is wrapped by DecodeError
func (arm *ARM) decodeError(pattern string, opcode uint32) {
	arm.setError(curated.Errorf(DecodeError, curated.Errorf(pattern, opcode, arm.state.instructionPC)))
}
