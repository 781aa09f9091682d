// This file is part of Pim65.
//
// Pim65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pim65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pim65.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences collates the preference values used by the simulator.
// Preferences are stored on disk with the prefs package and provide the
// default values for the equivalent command line flags.
package preferences

import (
	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/prefs"
)

// DefaultMaxInstructions is the instruction limit used when there is no
// preference on disk.
const DefaultMaxInstructions = 1000

// Preferences defines and collates all the preference values used by the
// simulator.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of instructions to run before giving up
	MaxInstructions prefs.Int

	// record a trace of every instruction executed
	Trace prefs.Bool

	// stop the simulation on a BRK instruction followed by a zero byte
	BrkAbort prefs.Bool

	// dump the text screen when the simulation ends
	Screen prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The preferences file at path is created if it doesn't exist.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pim65.maxinstructions", &p.MaxInstructions)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pim65.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pim65.brkabort", &p.BrkAbort)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pim65.screen", &p.Screen)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	// ignoring errors. setting values of the correct type can't fail
	_ = p.MaxInstructions.Set(DefaultMaxInstructions)
	_ = p.Trace.Set(false)
	_ = p.BrkAbort.Set(false)
	_ = p.Screen.Set(false)
}

// Reset all preferences to the default values.
func (p *Preferences) Reset() error {
	err := p.dsk.Reset()
	if err != nil {
		return err
	}
	p.SetDefaults()
	return nil
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
