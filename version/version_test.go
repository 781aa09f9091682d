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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/jetsetilly/pim65/test"
)

func TestVCSInfo(t *testing.T) {
	vcs, rev, modified := vcsInfo(nil)
	test.ExpectFailure(t, vcs)
	test.ExpectEquality(t, rev, "")
	test.ExpectFailure(t, modified)

	vcs, rev, modified = vcsInfo([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectSuccess(t, vcs)
	test.ExpectEquality(t, rev, "abc123")
	test.ExpectSuccess(t, modified)
}

func TestString(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(String(), ApplicationName))

	// no number is set with the linker during testing
	_, _, release := Version()
	test.ExpectFailure(t, release)
}
