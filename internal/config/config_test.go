// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
lenient = true
log_level = "debug"
export_scale = 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Lenient)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2, cfg.ExportScale)
	// unset keys keep their defaults
	assert.Equal(t, 16, cfg.SheetColumns)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `lenient = "yes"`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `export_scale = 0`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `color = "sometimes"`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `log_level = "loud"`))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("INFO")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = ParseLevel(" warn ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
