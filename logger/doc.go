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

// Package logger is the central log repository for the emulation. Log entries
// are made with a tag and a detail string. The tag is usually the name of the
// component making the entry:
//
//	logger.Log(logger.Allow, "ARM7", "switched to IRQ mode")
//	logger.Logf(env, "ARM7", "SWI %02x (PC: %08x)", swi, pc)
//
// The first argument is a Permission. The logging request is only honoured if
// the Permission allows it. The Environment type in the environment package
// implements the Permission interface, which allows an emulation to control
// whether it can add entries to the central log. The Allow value can be used
// when an entry should always be made.
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count.
//
// Instances of the Logger type can be created with NewLogger() for cases
// where a separate log is required. Testing is one example.
package logger
