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

// Package test bundles functions useful for testing purposes, particularly in
// conjunction with the standard go test harness.
//
// The Expect*() functions test a value and report failure with t.Errorf().
// The Demand*() functions are the same but with t.Fatalf(), for when a failed
// value would make the rest of the test meaningless.
//
// Success and failure are judged by the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// The nil type is considered a success and consequently will cause
// ExpectFailure() to fail and ExpectSuccess() to succeed. This is because of
// how errors usually work (nil to indicate no error).
//
// All the functions accept optional tags. The tags are printed at the start of
// any failure message and help to identify which iteration of a table driven
// test has failed.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The CompareWriter.Compare() function can then be
// used to test for equality.
package test
