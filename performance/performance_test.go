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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/pim65/performance"
	"github.com/jetsetilly/pim65/setup"
	"github.com/jetsetilly/pim65/test"
)

func config(t *testing.T, program ...uint8) *setup.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(path, program, 0o644))
	return &setup.Config{
		Binaries:  []setup.Binary{{File: path, LoadAddr: 0x0800}},
		StartAddr: 0x0800,
	}
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestMeasure(t *testing.T) {
	// infinite loop
	cfg := config(t, 0x4c, 0x00, 0x08) // JMP $0800

	res, err := performance.Measure(cfg, 50*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, res.Instructions > 0)
	test.ExpectSuccess(t, res.Runs > 0)
	test.ExpectSuccess(t, res.MIPS() > 0)

	// program halts immediately so it is reloaded many times
	cfg = config(t, 0x4c, 0xf9, 0xff) // JMP $FFF9

	res, err = performance.Measure(cfg, 20*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, res.Runs > 1)
}

func TestMeasureError(t *testing.T) {
	cfg := config(t, 0x02) // invalid opcode

	_, err := performance.Measure(cfg, 20*time.Millisecond)
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	cfg := config(t, 0x4c, 0x00, 0x08)

	s := &strings.Builder{}
	test.ExpectSuccess(t, performance.Check(s, performance.ProfileNone, cfg, "20ms"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "MIPS"))

	test.ExpectFailure(t, performance.Check(s, performance.ProfileNone, cfg, "soon"))
}
