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

package hardware

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called after every instruction with the number of cycles
// consumed by the instruction. Running stops when it returns false or an
// error.
//
// A nil continueCheck() runs until the CPU reports an error.
func (gba *GBA) Run(continueCheck func(cycles int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	cont := true
	for cont {
		c, err := gba.CPU.Step()
		if err != nil {
			return err
		}

		cont, err = continueCheck(c)
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForInstructionCount runs the emulation until the number of instructions
// have been executed, counting from reset. Steps where the CPU is halted are
// not instructions.
func (gba *GBA) RunForInstructionCount(count uint64, continueCheck func(cycles int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	return gba.Run(func(cycles int) (bool, error) {
		if gba.CPU.Instructions() >= count {
			return false, nil
		}
		return continueCheck(cycles)
	})
}
