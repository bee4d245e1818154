// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/bpowers/ticart/internal/chunk"
	"github.com/bpowers/ticart/internal/palette"
	"github.com/bpowers/ticart/internal/pixel"
	"github.com/bpowers/ticart/internal/sheet"
)

// kindValue is a --kind flag restricted to the block kinds.
type kindValue chunk.Kind

var _ pflag.Value = (*kindValue)(nil)

func (k *kindValue) String() string {
	return chunk.Kind(*k).String()
}

func (k *kindValue) Set(s string) error {
	kind, ok := chunk.ParseKind(s)
	if !ok || (kind != chunk.Tiles && kind != chunk.Sprites) {
		return fmt.Errorf("want tiles or sprites, got %q", s)
	}
	*k = kindValue(kind)
	return nil
}

func (k *kindValue) Type() string {
	return "kind"
}

func addKindFlag(fs *pflag.FlagSet, k *kindValue) {
	*k = kindValue(chunk.Tiles)
	fs.Var(k, "kind", "tiles or sprites")
}

func writeChunkTable(w io.Writer, chunks []chunk.Chunk) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tCODE\tBANK\tSIZE\tFINGERPRINT")
	for i, c := range chunks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%016x\n",
			i, c.Kind, uint8(c.Kind), c.Bank, humanize.Bytes(uint64(len(c.Payload))), c.Fingerprint())
	}
	return tw.Flush()
}

func swatch(c palette.Color, text string) string {
	return color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint(text)
}

func writePalette(w io.Writer, colors []palette.Color) {
	for i, c := range colors {
		if color.NoColor {
			fmt.Fprintf(w, "%2d  %s\n", i, c.Hex())
			continue
		}
		fmt.Fprintf(w, "%2d %s %s\n", i, swatch(c, "    "), color.RGB(int(c.R), int(c.G), int(c.B)).Sprint(c.Hex()))
	}
}

// writeBlock draws one block, two columns per pixel.  Without colour
// support every pixel is shown as its palette index in hex.
func writeBlock(w io.Writer, s *sheet.Sheet, kind chunk.Kind, i int) error {
	b, err := s.Block(kind, i)
	if err != nil {
		return err
	}
	var sb strings.Builder
	for y := 0; y < pixel.BlockSide; y++ {
		for x := 0; x < pixel.BlockSide; x++ {
			idx := b.At(x, y)
			if color.NoColor {
				fmt.Fprintf(&sb, "%x ", idx)
				continue
			}
			c, err := s.ColorAt(kind, i, x, y)
			if err != nil {
				return err
			}
			sb.WriteString(swatch(c, "  "))
		}
		sb.WriteString("\n")
	}
	_, err = io.WriteString(w, sb.String())
	return err
}
