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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pim65/hardware/preferences"
	"github.com/jetsetilly/pim65/prefs"
	"github.com/jetsetilly/pim65/test"
)

func TestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferences(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.MaxInstructions.Get().(int), preferences.DefaultMaxInstructions)
	test.ExpectFailure(t, p.Trace.Get().(bool))
	test.ExpectFailure(t, p.BrkAbort.Get().(bool))
	test.ExpectFailure(t, p.Screen.Get().(bool))

	// missing preferences file is created
	_, err = os.Stat(path)
	test.ExpectSuccess(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferences(path)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.MaxInstructions.Set(50000))
	test.DemandSuccess(t, p.Screen.Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.MaxInstructions.Get().(int), 50000)
	test.ExpectSuccess(t, q.Screen.Get().(bool))
	test.ExpectFailure(t, q.Trace.Get().(bool))

	test.DemandSuccess(t, q.Reset())
	test.ExpectEquality(t, q.MaxInstructions.Get().(int), preferences.DefaultMaxInstructions)
	test.ExpectFailure(t, q.Screen.Get().(bool))

	// reloading from disk restores the saved values
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.MaxInstructions.Get().(int), 50000)
}

func TestCommandLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prefs.PushCommandLineStack("pim65.trace::true; pim65.maxinstructions::20")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences(path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Trace.Get().(bool))
	test.ExpectEquality(t, p.MaxInstructions.Get().(int), 20)
}
