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

package preferences

import (
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/prefs"
)

// ARMPreferences are the preferences for the ARM7TDMI.
type ARMPreferences struct {
	dsk *prefs.Disk

	// software interrupts call into a high-level implementation of the BIOS
	// routine rather than taking the SWI exception and running BIOS code
	HLE prefs.Bool

	// fetch instructions directly from the memory region backing the PC
	// rather than through the Read functions of the memory interface. the
	// result is the same but the cache is quicker
	PrefetchCache prefs.Bool

	// write an entry to the log for every SWI. noisy
	LogSWI prefs.Bool
}

func (p *ARMPreferences) String() string {
	return p.dsk.String()
}

func newARMPreferences(pth string) (*ARMPreferences, error) {
	p := &ARMPreferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.arm7.hle", &p.HLE)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.arm7.prefetchCache", &p.PrefetchCache)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.arm7.logSWI", &p.LogSWI)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(false)
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *ARMPreferences) SetDefaults() {
	p.HLE.Set(true)
	p.PrefetchCache.Set(true)
	p.LogSWI.Set(false)
}

// Load current arm preference from disk.
func (p *ARMPreferences) Load() error {
	return p.dsk.Load(false)
}

// Save current arm preferences to disk.
func (p *ARMPreferences) Save() error {
	return p.dsk.Save()
}
