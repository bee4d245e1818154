// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config loads the optional ticart configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// RelPath is the location of the config file below the XDG config dirs.
var RelPath = filepath.Join("ticart", "config.toml")

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	// Lenient keeps whatever decoded cleanly from damaged cartridges
	// instead of refusing them.
	Lenient      bool   `toml:"lenient"`
	LogLevel     string `toml:"log_level"`
	ExportScale  int    `toml:"export_scale"`
	SheetColumns int    `toml:"sheet_columns"`
	Color        string `toml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Lenient:      false,
		LogLevel:     "warn",
		ExportScale:  4,
		SheetColumns: 16,
		Color:        ColorAuto,
	}
}

// Load reads the config file at path over the defaults.  An empty path
// searches the XDG config directories; not finding a file there is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		found, err := xdg.SearchConfigFile(RelPath)
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, fmt.Errorf("toml.DecodeFile(%s): %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.ExportScale < 1 || c.ExportScale > 64 {
		return fmt.Errorf("export_scale must be between 1 and 64, got %d", c.ExportScale)
	}
	if c.SheetColumns < 1 {
		return fmt.Errorf("sheet_columns must be positive, got %d", c.SheetColumns)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never; got %q", c.Color)
	}
	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Logger builds the stderr logger for the configured level.
func (c Config) Logger() *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
