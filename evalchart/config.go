// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalchart

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	dfltQueries = 10000
	dfltPreset  = "default"
	dfltDPI     = 300
)

// Config holds the run constants of a report: the expected query
// count, the panel set, and the output artifacts. Historically these
// were literals in the report script; here they come from an optional
// JSON file and flags.
type Config struct {
	// Queries is the expected query count per run, the denominator
	// of the per-query metrics.
	Queries int `json:"queries"`

	// Preset names the panel set (see Preset). Ignored when Panels
	// is given explicitly.
	Preset string      `json:"preset"`
	Panels []PanelSpec `json:"panels"`

	// OutDir receives the figure artifacts; SVG and PNG select the
	// output formats.
	OutDir string `json:"outDir"`
	SVG    bool   `json:"svg"`
	PNG    bool   `json:"png"`
	DPI    int    `json:"dpi"`
}

// LoadConfig reads a JSON config file. An empty path yields a zero
// Config, which ValidateAndDefaults fills in.
func LoadConfig(path string) (*Config, error) {
	var conf Config
	if path == "" {
		return &conf, nil
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	if err := json.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("cannot load config %s: %w", path, err)
	}
	return &conf, nil
}

// ValidateAndDefaults fills unset fields with defaults and resolves
// the panel set. Invalid panel specifications are configuration
// errors.
func (c *Config) ValidateAndDefaults() error {
	if c.Queries == 0 {
		c.Queries = dfltQueries
		log.Warn().Msgf("queries not specified, using default: %d", dfltQueries)
	}
	if c.Queries < 0 {
		return fmt.Errorf("queries must be positive, have %d", c.Queries)
	}
	if len(c.Panels) == 0 {
		if c.Preset == "" {
			c.Preset = dfltPreset
		}
		panels, err := Preset(c.Preset)
		if err != nil {
			return err
		}
		c.Panels = panels
	}
	for i := range c.Panels {
		if err := c.Panels[i].Check(); err != nil {
			return fmt.Errorf("panel %d: %w", i, err)
		}
	}
	if c.OutDir == "" {
		c.OutDir = "."
	}
	if !c.SVG && !c.PNG {
		c.SVG, c.PNG = true, true
	}
	if c.DPI == 0 {
		c.DPI = dfltDPI
	}
	return nil
}
