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

package setup

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/logger"
)

// Binary is a file to be loaded into the address space.
type Binary struct {
	File     string
	LoadAddr uint16
}

// Config is the complete description of what is to be loaded.
type Config struct {
	// the file the configuration was loaded from. empty if the configuration
	// was not loaded from a file
	Path string

	Binaries  []Binary
	StartAddr uint16
}

// the configuration as it appears in the JSON file. pointers are used so that
// missing fields can be detected.
type jsonConfig struct {
	Binaries []struct {
		File     string   `json:"file"`
		LoadAddr *Address `json:"load_addr"`
	} `json:"binaries"`
	StartAddr *Address `json:"start_addr"`
}

// Load the configuration from a JSON file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(ConfigNotFound, path)
		}
		return nil, curated.Errorf(ConfigError, err)
	}

	cfg, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	cfg.Path = path

	logger.Logf(logger.Allow, "setup", "loaded %s (%d binaries, start %s)", path, len(cfg.Binaries), Address(cfg.StartAddr))

	return cfg, nil
}

// Parse the JSON configuration. Relative binary paths are resolved against
// dir.
func Parse(data []byte, dir string) (*Config, error) {
	var j jsonConfig
	if err := json.Unmarshal(data, &j); err != nil {
		if curated.IsAny(err) {
			return nil, err
		}
		return nil, curated.Errorf(ConfigError, err)
	}

	if j.StartAddr == nil {
		return nil, curated.Errorf(MissingStart)
	}

	cfg := &Config{
		StartAddr: uint16(*j.StartAddr),
	}

	for i, b := range j.Binaries {
		if b.File == "" {
			return nil, curated.Errorf(MissingFile, i)
		}
		if b.LoadAddr == nil {
			return nil, curated.Errorf(MissingLoad, i)
		}

		file := b.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}

		cfg.Binaries = append(cfg.Binaries, Binary{
			File:     file,
			LoadAddr: uint16(*b.LoadAddr),
		})
	}

	return cfg, nil
}

// Files returns the configuration file (if there is one) and the binary files
// named by the configuration.
func (cfg *Config) Files() []string {
	var files []string
	if cfg.Path != "" {
		files = append(files, cfg.Path)
	}
	for _, b := range cfg.Binaries {
		files = append(files, b.File)
	}
	return files
}
