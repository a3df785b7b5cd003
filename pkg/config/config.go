//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads scribe settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds user settings. Fields missing from the file keep their defaults.
type Config struct {
	LogFile     string `toml:"log_file"`     // where log output goes while the screen is open
	WrapBuffers bool   `toml:"wrap_buffers"` // buffer switching wraps around the ends
	Theme       string `toml:"theme"`        // chroma style name
	TabText     string `toml:"tab_text"`     // inserted for the tab key
	ScrollLines int    `toml:"scroll_lines"` // rows scrolled per wheel step

	FormatOnSave bool `toml:"format_on_save"` // gofmt .go files when they are saved
}

func Default() Config {
	home := os.Getenv("HOME")
	return Config{
		LogFile:     filepath.Join(home, ".scribelog"),
		WrapBuffers: true,
		Theme:       "monokai",
		TabText:     "\t",
		ScrollLines: 1,

		FormatOnSave: true,
	}
}

// DefaultPath returns the config file read when none is named.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".scribe.toml")
}

// Load reads the file at path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data, c)
}

// Parse decodes TOML data over base.
func Parse(data []byte, base Config) (Config, error) {
	c := base
	if err := toml.Unmarshal(data, &c); err != nil {
		return base, fmt.Errorf("parsing config: %w", err)
	}
	if c.ScrollLines < 1 {
		c.ScrollLines = 1
	}
	return c, nil
}
