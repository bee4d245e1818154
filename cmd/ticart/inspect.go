// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bpowers/ticart/internal/chunk"
)

func newChunksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chunks FILE",
		Short: "List the chunks of a cartridge in file order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := a.open(args[0])
			if err != nil {
				return err
			}
			return writeChunkTable(a.out, cart.Chunks())
		},
	}
}

func newPaletteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette FILE",
		Short: "Show the palette of a cartridge",
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
			writePalette(a.out, s.Palette)
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var (
		kind  kindValue
		block int
	)
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Draw tiles or sprites in the terminal",
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
			k := chunk.Kind(kind)
			if block >= 0 {
				return writeBlock(a.out, s, k, block)
			}
			blocks, err := s.Blocks(k)
			if err != nil {
				return err
			}
			for i := range blocks {
				fmt.Fprintf(a.out, "%s %d\n", k, i)
				if err := writeBlock(a.out, s, k, i); err != nil {
					return err
				}
				fmt.Fprintln(a.out)
			}
			return nil
		},
	}
	addKindFlag(cmd.Flags(), &kind)
	cmd.Flags().IntVar(&block, "block", -1, "only draw this block")
	return cmd
}
