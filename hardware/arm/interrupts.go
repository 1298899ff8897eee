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

import "strings"

// Source is an interrupt source. The value is the bit in the IE and IF
// registers.
type Source uint16

// List of interrupt sources.
const (
	VBlank Source = 1 << iota
	HBlank
	VCount
	Timer0
	Timer1
	Timer2
	Timer3
	Serial
	DMA0
	DMA1
	DMA2
	DMA3
	Keypad
	GamePak
)

// mask of the bits that are used in IE and IF
const sourceMask = 0x3fff

var sourceNames = [...]string{
	"VBlank", "HBlank", "VCount",
	"Timer0", "Timer1", "Timer2", "Timer3",
	"Serial",
	"DMA0", "DMA1", "DMA2", "DMA3",
	"Keypad", "GamePak",
}

func (s Source) String() string {
	var n []string
	for i, name := range sourceNames {
		if s&(1<<i) != 0 {
			n = append(n, name)
		}
	}
	if len(n) == 0 {
		return "none"
	}
	return strings.Join(n, "|")
}

// Interrupts is the state of the interrupt controller. It is shared between
// the CPU and the memory bus, which maps the IE, IF, IME and HALTCNT
// registers onto it.
type Interrupts struct {
	// interrupt enable
	ie uint16

	// interrupt request flags
	iflags uint16

	// interrupt master enable
	ime bool

	// the CPU is halted until an enabled interrupt is requested
	halted bool
}

// NewInterrupts is the preferred method of initialisation for the Interrupts
// type.
func NewInterrupts() *Interrupts {
	return &Interrupts{}
}

// Reset the interrupt controller.
func (irq *Interrupts) Reset() {
	*irq = Interrupts{}
}

func (irq *Interrupts) String() string {
	s := strings.Builder{}
	s.WriteString("IE: ")
	s.WriteString(Source(irq.ie).String())
	s.WriteString(" IF: ")
	s.WriteString(Source(irq.iflags).String())
	if irq.ime {
		s.WriteString(" IME")
	}
	if irq.halted {
		s.WriteString(" (halted)")
	}
	return s.String()
}

// Request an interrupt. The bit in the IF register is set whether or not
// the source is enabled.
func (irq *Interrupts) Request(src Source) {
	irq.iflags |= uint16(src) & sourceMask
}

// Acknowledge clears the bits set in v from the IF register. This is the
// behaviour of a write to IF.
func (irq *Interrupts) Acknowledge(v uint16) {
	irq.iflags &^= v
}

// IE returns the value of the interrupt enable register.
func (irq *Interrupts) IE() uint16 {
	return irq.ie
}

// SetIE sets the value of the interrupt enable register.
func (irq *Interrupts) SetIE(v uint16) {
	irq.ie = v & sourceMask
}

// IF returns the value of the interrupt request register.
func (irq *Interrupts) IF() uint16 {
	return irq.iflags
}

// IME returns the state of the master enable.
func (irq *Interrupts) IME() bool {
	return irq.ime
}

// SetIME sets the master enable.
func (irq *Interrupts) SetIME(v bool) {
	irq.ime = v
}

// Halt the CPU until an enabled interrupt is requested.
func (irq *Interrupts) Halt() {
	irq.halted = true
}

// Halted returns true if the CPU is halted.
func (irq *Interrupts) Halted() bool {
	return irq.halted
}

// Pending returns true if an enabled interrupt has been requested. The
// state of IME is not considered.
func (irq *Interrupts) Pending() bool {
	return irq.ie&irq.iflags != 0
}

// wake ends the halt state if an interrupt is pending. returns true if the
// CPU is no longer halted
func (irq *Interrupts) wake() bool {
	if irq.halted && irq.Pending() {
		irq.halted = false
	}
	return !irq.halted
}

// service returns true if the CPU should take the IRQ exception. the CPSR I
// bit is checked by the CPU
func (irq *Interrupts) service() bool {
	return irq.ime && irq.Pending()
}

// Snapshot returns a copy of the interrupt state.
func (irq *Interrupts) Snapshot() *Interrupts {
	n := *irq
	return &n
}

// Plumb replaces the interrupt state with a copy of a previous snapshot. The
// pointer held by the CPU and memory remains valid.
func (irq *Interrupts) Plumb(s *Interrupts) {
	*irq = *s
}
