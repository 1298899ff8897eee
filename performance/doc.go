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

// Package performance is used to test the performance of the emulator. The
// Check() function runs the emulation for a fixed duration and reports the
// effective clock speed of the emulated CPU, with the option of running the
// emulation through the CPU and memory profilers.
//
// The RunProfiler() function can be used to profile any function, not just
// the performance check. The DEBUG mode for instance can be run through the
// profiler.
package performance
