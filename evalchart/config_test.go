// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalchart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, conf.ValidateAndDefaults())

	assert.Equal(t, 10000, conf.Queries)
	assert.Equal(t, "default", conf.Preset)
	assert.Len(t, conf.Panels, 3)
	assert.Equal(t, ".", conf.OutDir)
	assert.True(t, conf.SVG)
	assert.True(t, conf.PNG)
	assert.Equal(t, 300, conf.DPI)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	src := `{
		"queries": 5000,
		"preset": "memory",
		"outDir": "reports",
		"png": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, conf.ValidateAndDefaults())

	assert.Equal(t, 5000, conf.Queries)
	assert.Len(t, conf.Panels, 4)
	assert.Equal(t, "reports", conf.OutDir)
	assert.False(t, conf.SVG, "an explicit format selection is kept")
	assert.True(t, conf.PNG)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	t.Run("negativeQueries", func(t *testing.T) {
		conf := Config{Queries: -1}
		assert.Error(t, conf.ValidateAndDefaults())
	})

	t.Run("unknownPreset", func(t *testing.T) {
		conf := Config{Preset: "bogus"}
		assert.Error(t, conf.ValidateAndDefaults())
	})

	t.Run("badPanel", func(t *testing.T) {
		conf := Config{Panels: []PanelSpec{{Primary: "bogus"}}}
		assert.Error(t, conf.ValidateAndDefaults())
	})

	t.Run("explicitPanelsWinOverPreset", func(t *testing.T) {
		panels, err := Preset("default")
		require.NoError(t, err)
		conf := Config{Preset: "memory", Panels: panels[:1]}
		require.NoError(t, conf.ValidateAndDefaults())
		assert.Len(t, conf.Panels, 1)
	})
}
