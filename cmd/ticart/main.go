// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command ticart inspects and edits the graphics of cartridge files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bpowers/ticart"
	"github.com/bpowers/ticart/internal/config"
)

type app struct {
	configPath string
	logLevel   string
	lenient    bool
	colorMode  string

	cfg    config.Config
	logger *slog.Logger
	out    io.Writer
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("lenient") {
		cfg.Lenient = a.lenient
	}
	if flags.Changed("color") {
		cfg.Color = a.colorMode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.Logger()
	a.out = cmd.OutOrStdout()

	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		fd := os.Stdout.Fd()
		color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	}
	return nil
}

func (a *app) open(path string) (*ticart.Cartridge, error) {
	return ticart.Open(path,
		ticart.WithLogger(a.logger),
		ticart.WithLenient(a.cfg.Lenient))
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "ticart",
		Short:         "Inspect and edit the palette, tiles and sprites of cartridge files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/"+config.RelPath+")")
	pf.StringVar(&a.logLevel, "log-level", "warn", "debug, info, warn or error")
	pf.BoolVar(&a.lenient, "lenient", false, "tolerate truncated cartridges and partial palette colours")
	pf.StringVar(&a.colorMode, "color", config.ColorAuto, "auto, always or never")

	root.AddCommand(
		newChunksCmd(a),
		newPaletteCmd(a),
		newShowCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newPaintCmd(a),
		newResaveCmd(a),
		newLsCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ticart: %s\n", err)
		os.Exit(1)
	}
}
