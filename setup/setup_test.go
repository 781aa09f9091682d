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

package setup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/setup"
	"github.com/jetsetilly/pim65/test"
)

func TestParseAddress(t *testing.T) {
	good := map[string]uint16{
		"0x0800":   0x0800,
		"0XFFFF":   0xffff,
		"$c000":    0xc000,
		"$C000":    0xc000,
		"2048":     2048,
		"  $0800 ": 0x0800,
		"0":        0,
		"010":      10,
	}
	for s, v := range good {
		a, err := setup.ParseAddress(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, a, v, s)
	}

	bad := []string{"", "$", "0x", "zz", "$10000", "65536", "-1", "0x12g4"}
	for _, s := range bad {
		_, err := setup.ParseAddress(s)
		test.ExpectFailure(t, err, s)
	}

	_, err := setup.ParseAddress("65536")
	test.ExpectSuccess(t, curated.Is(err, setup.AddressRange))
	_, err = setup.ParseAddress("zz")
	test.ExpectSuccess(t, curated.Is(err, setup.BadAddress))
}

func TestParse(t *testing.T) {
	data := []byte(`{
		"binaries": [
			{"file": "boot.bin", "load_addr": "$0800"},
			{"file": "/opt/rom.bin", "load_addr": 53248}
		],
		"start_addr": "0x0800"
	}`)

	cfg, err := setup.Parse(data, "/home/user/programs")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.StartAddr, 0x0800)
	test.DemandEquality(t, len(cfg.Binaries), 2)
	test.ExpectEquality(t, cfg.Binaries[0].File, filepath.Join("/home/user/programs", "boot.bin"))
	test.ExpectEquality(t, cfg.Binaries[0].LoadAddr, 0x0800)
	test.ExpectEquality(t, cfg.Binaries[1].File, "/opt/rom.bin")
	test.ExpectEquality(t, cfg.Binaries[1].LoadAddr, 0xd000)
	test.ExpectEquality(t, cfg.Path, "")

	// no binaries is allowed
	cfg, err = setup.Parse([]byte(`{"start_addr": 512}`), ".")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cfg.Binaries), 0)
	test.ExpectEquality(t, cfg.StartAddr, 0x0200)
}

func TestParseErrors(t *testing.T) {
	var err error

	_, err = setup.Parse([]byte(`{"binaries": []}`), ".")
	test.ExpectSuccess(t, curated.Is(err, setup.MissingStart))

	_, err = setup.Parse([]byte(`{"start_addr": null}`), ".")
	test.ExpectSuccess(t, curated.Is(err, setup.MissingStart))

	_, err = setup.Parse([]byte(`{"binaries": [{"load_addr": 0}], "start_addr": 0}`), ".")
	test.ExpectSuccess(t, curated.Is(err, setup.MissingFile))

	_, err = setup.Parse([]byte(`{"binaries": [{"file": "a.bin"}], "start_addr": 0}`), ".")
	test.ExpectSuccess(t, curated.Is(err, setup.MissingLoad))

	_, err = setup.Parse([]byte(`{"start_addr": "nonsense"}`), ".")
	test.ExpectSuccess(t, curated.Has(err, setup.BadAddress))

	_, err = setup.Parse([]byte(`{"start_addr": 70000}`), ".")
	test.ExpectSuccess(t, curated.Has(err, setup.AddressRange))

	_, err = setup.Parse([]byte(`{"start_addr": 2048.5}`), ".")
	test.ExpectSuccess(t, curated.Has(err, setup.BadAddress))

	_, err = setup.Parse([]byte(`{"start_addr": true}`), ".")
	test.ExpectFailure(t, err)

	_, err = setup.Parse([]byte(`{"start_addr": `), ".")
	test.ExpectSuccess(t, curated.Is(err, setup.ConfigError))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	err := os.WriteFile(path, []byte(`{"binaries": [{"file": "prog.bin", "load_addr": "$0300"}], "start_addr": "$0300"}`), 0o644)
	test.DemandSuccess(t, err)

	cfg, err := setup.Load(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Path, path)
	test.ExpectEquality(t, cfg.StartAddr, 0x0300)
	test.DemandEquality(t, len(cfg.Binaries), 1)
	test.ExpectEquality(t, cfg.Binaries[0].File, filepath.Join(dir, "prog.bin"))

	files := cfg.Files()
	test.DemandEquality(t, len(files), 2)
	test.ExpectEquality(t, files[0], path)
	test.ExpectEquality(t, files[1], filepath.Join(dir, "prog.bin"))

	_, err = setup.Load(filepath.Join(dir, "missing.json"))
	test.ExpectSuccess(t, curated.Is(err, setup.ConfigNotFound))
}

func TestAddressString(t *testing.T) {
	test.ExpectEquality(t, setup.Address(0x800).String(), "$0800")
	test.ExpectEquality(t, setup.Address(0xc00a).String(), "$C00A")
}
