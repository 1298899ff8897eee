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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/clocks"
	"github.com/jetsetilly/gopheradvance/translate"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Leadtime is the period the emulation runs for before measurement begins.
var Leadtime = 2 * time.Second

// CalcSpeed takes the number of cycles emulated and the duration (in seconds)
// and returns the effective clock speed in MHz and the accuracy of that value
// as a percentage of the real hardware.
func CalcSpeed(cycles uint64, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	mhz = float64(cycles) / duration / 1000000
	accuracy = 100 * mhz / clocks.GBA
	return mhz, accuracy
}

// Check the performance of the emulator. The GBA should already have been
// loaded with the ROM to run.
//
// Emulation will run for the specified duration (after the Leadtime) and
// optionally be run through the profiler.
func Check(output io.Writer, profile Profile, gba *hardware.GBA, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startCycles := gba.Cycles()
	startInstructions := gba.CPU.Instructions()

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 1)

		time.AfterFunc(Leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for end of measurement period every PerformanceBrake CPU
		// instructions. checking the timerChan is relatively expensive
		performanceBrake := 0

		return gba.Run(func(_ int) (bool, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return false, timedOut
					}
					startCycles = gba.Cycles()
					startInstructions = gba.CPU.Instructions()
				default:
				}
			}
			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	cycles := gba.Cycles() - startCycles
	instructions := gba.CPU.Instructions() - startInstructions

	mhz, accuracy := CalcSpeed(cycles, dur.Seconds())
	_, err = io.WriteString(output, fmt.Sprintf("%.2f MHz (%s instructions in %.2f seconds) %.1f%%\n",
		mhz, translate.Sprintf("%d", instructions), dur.Seconds(), accuracy))
	return err
}
