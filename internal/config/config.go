// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package config loads the hm.toml configuration file of the command-line harness.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileName is the name of the configuration file looked up in the working directory.
const FileName = "hm.toml"

// Config holds defaults for the command-line harness. Flags override these values.
type Config struct {
	// Debug enables debug logging.
	Debug bool `toml:"debug,omitempty"`

	// Check reports examples whose inferred type or error does not match their expectation,
	// and fails the run if any do.
	Check bool `toml:"check,omitempty"`

	// Fixtures lists the fixture files run when no files are given on the command line.
	// Relative paths are resolved against the directory of the configuration file.
	Fixtures []string `toml:"fixtures,omitempty"`
}

// Load decodes the configuration file at path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, errors.Errorf("parsing %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	dir := filepath.Dir(path)
	for i, fixture := range cfg.Fixtures {
		if !filepath.IsAbs(fixture) {
			cfg.Fixtures[i] = filepath.Join(dir, fixture)
		}
	}
	return &cfg, nil
}

// LoadDefault loads hm.toml from dir. A missing file yields an empty configuration.
func LoadDefault(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	return Load(path)
}
