// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bpowers/ticart/internal/cartfile"
	"github.com/bpowers/ticart/internal/chunk"
	"github.com/bpowers/ticart/internal/sheet"
)

func (a *app) imageOptions(columns, scale int) sheet.ImageOptions {
	opts := sheet.ImageOptions{Columns: a.cfg.SheetColumns, Scale: a.cfg.ExportScale}
	if columns > 0 {
		opts.Columns = columns
	}
	if scale > 0 {
		opts.Scale = scale
	}
	return opts
}

func newExportCmd(a *app) *cobra.Command {
	var (
		kind           kindValue
		columns, scale int
	)
	cmd := &cobra.Command{
		Use:   "export FILE OUT.png",
		Short: "Write tiles or sprites to a PNG sheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := a.open(args[0])
			if err != nil {
				return err
			}
			s, err := cart.Sheet()
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := s.ExportPNG(&buf, chunk.Kind(kind), a.imageOptions(columns, scale)); err != nil {
				return err
			}
			return cartfile.Write(args[1], buf.Bytes())
		},
	}
	addKindFlag(cmd.Flags(), &kind)
	cmd.Flags().IntVar(&columns, "columns", 0, "blocks per row (default from config)")
	cmd.Flags().IntVar(&scale, "scale", 0, "image pixels per block pixel (default from config)")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var (
		kind           kindValue
		columns, scale int
		out            string
	)
	cmd := &cobra.Command{
		Use:   "import FILE IN.png",
		Short: "Replace tiles or sprites with the contents of a PNG sheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := a.open(args[0])
			if err != nil {
				return err
			}
			s, err := cart.Sheet()
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			if err := s.ImportPNG(f, chunk.Kind(kind), a.imageOptions(columns, scale)); err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			if err := cart.Apply(s); err != nil {
				return err
			}
			return cart.Save(out)
		},
	}
	addKindFlag(cmd.Flags(), &kind)
	cmd.Flags().IntVar(&columns, "columns", 0, "blocks per row (default from config)")
	cmd.Flags().IntVar(&scale, "scale", 0, "image pixels per block pixel (default from config)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to this file instead of FILE")
	return cmd
}

func newPaintCmd(a *app) *cobra.Command {
	var (
		kind        kindValue
		block, x, y int
		index       uint8
		out         string
	)
	cmd := &cobra.Command{
		Use:   "paint FILE",
		Short: "Set one pixel of a tile or sprite to a palette index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := a.open(args[0])
			if err != nil {
				return err
			}
			s, err := cart.Sheet()
			if err != nil {
				return err
			}
			if err := s.SetPixel(chunk.Kind(kind), block, x, y, index); err != nil {
				return err
			}
			if err := cart.Apply(s); err != nil {
				return err
			}
			return cart.Save(out)
		},
	}
	addKindFlag(cmd.Flags(), &kind)
	cmd.Flags().IntVar(&block, "block", 0, "block number")
	cmd.Flags().IntVar(&x, "x", 0, "pixel column, 0-7")
	cmd.Flags().IntVar(&y, "y", 0, "pixel row, 0-7")
	cmd.Flags().Uint8Var(&index, "index", 0, "palette index to paint with")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to this file instead of FILE")
	return cmd
}

func newResaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resave FILE [OUT]",
		Short: "Decode and re-encode a cartridge, reporting whether the bytes changed",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := cartfile.Read(args[0])
			if err != nil {
				return err
			}
			cart, err := a.open(args[0])
			if err != nil {
				return err
			}
			data, err := cart.Bytes()
			if err != nil {
				return err
			}
			if bytes.Equal(original, data) {
				fmt.Fprintf(a.out, "%s: identical (%d bytes)\n", args[0], len(data))
			} else {
				fmt.Fprintf(a.out, "%s: changed (%d -> %d bytes)\n", args[0], len(original), len(data))
			}
			if len(args) == 2 {
				return cart.Save(args[1])
			}
			return nil
		},
	}
}
