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

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
)

// a breakpoint is an expression that halts the RUN command when it is true
type breakpoints struct {
	exprs []string
}

func (bp *breakpoints) add(expr string) {
	bp.exprs = append(bp.exprs, expr)
}

func (bp *breakpoints) clear() {
	bp.exprs = bp.exprs[:0]
}

func (bp *breakpoints) isEmpty() bool {
	return len(bp.exprs) == 0
}

func (bp *breakpoints) String() string {
	if len(bp.exprs) == 0 {
		return "no breakpoints"
	}

	s := strings.Builder{}
	for i, e := range bp.exprs {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("% 2d: %s", i, e))
	}
	return s.String()
}

// check each breakpoint in turn. returns the first expression that is true.
// returns the empty string if no breakpoint is true
func (bp *breakpoints) check(dbg *Debugger) (string, error) {
	for _, e := range bp.exprs {
		v, err := dbg.evaluate(e)
		if err != nil {
			return "", curated.Errorf("breakpoint: %v", err)
		}
		if v.Truth() {
			return e, nil
		}
	}
	return "", nil
}
