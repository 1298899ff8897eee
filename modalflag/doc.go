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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select a mode of operation, with each mode having its own
// flags and arguments.
//
// The arguments are given to NewArgs() and each layer of the command line is
// then parsed with Parse(). Flags added between the two calls belong to that
// layer. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		origin := md.AddHex("origin", 0x08000000, "address of first instruction")
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not the name of a sub-mode. Sub-mode names are not case sensitive.
//
// The -help flag is handled automatically. The flags and sub-modes of the
// current layer are printed to the Output writer and Parse() returns
// ParseHelp.
//
// Path() returns the modes that have been selected so far, separated by a
// slash. It is useful for messages and for the help banner.
package modalflag
