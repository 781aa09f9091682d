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

//go:build unix

package easyterm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pim65/test"
	"github.com/jetsetilly/pim65/userinput/easyterm"
)

func TestNotATerminal(t *testing.T) {
	_, err := easyterm.NewTerminal(nil)
	test.ExpectFailure(t, err)

	// termios attributes cannot be read from a regular file
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	test.DemandSuccess(t, err)
	defer f.Close()

	_, err = easyterm.NewTerminal(f)
	test.ExpectFailure(t, err)
}
