// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/gift"

	"github.com/bpowers/ticart/internal/chunk"
	"github.com/bpowers/ticart/internal/palette"
	"github.com/bpowers/ticart/internal/pixel"
)

const DefaultColumns = 16

var ErrImageSize = errors.New("image size is not a whole number of blocks")

// ImageOptions controls the block grid of exported and imported images.
type ImageOptions struct {
	// Columns is the number of blocks per row; 0 means DefaultColumns.
	Columns int
	// Scale is the size in image pixels of one block pixel; 0 means 1.
	Scale int
}

func (o ImageOptions) normalize() ImageOptions {
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	return o
}

// Image renders the blocks of one kind as a grid, row-major, at one image
// pixel per block pixel.  The last row is filled out with empty blocks.
func (s *Sheet) Image(kind chunk.Kind, columns int) (*image.Paletted, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	blocks, err := s.Blocks(kind)
	if err != nil {
		return nil, err
	}
	if columns <= 0 {
		columns = DefaultColumns
	}
	if len(s.Palette) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrPaletteIndexOutOfRange)
	}

	rows := (len(blocks) + columns - 1) / columns
	if rows == 0 {
		rows = 1
	}
	bounds := image.Rect(0, 0, columns*pixel.BlockSide, rows*pixel.BlockSide)
	img := image.NewPaletted(bounds, palette.ToColorPalette(s.Palette))
	for i := range blocks {
		ox := (i % columns) * pixel.BlockSide
		oy := (i / columns) * pixel.BlockSide
		for y := 0; y < pixel.BlockSide; y++ {
			for x := 0; x < pixel.BlockSide; x++ {
				img.SetColorIndex(ox+x, oy+y, blocks[i].At(x, y))
			}
		}
	}
	return img, nil
}

// ExportPNG writes the blocks of one kind to w as a PNG sheet.
func (s *Sheet) ExportPNG(w io.Writer, kind chunk.Kind, opts ImageOptions) error {
	opts = opts.normalize()
	img, err := s.Image(kind, opts.Columns)
	if err != nil {
		return err
	}
	var out image.Image = img
	if opts.Scale > 1 {
		b := img.Bounds()
		g := gift.New(gift.Resize(b.Dx()*opts.Scale, b.Dy()*opts.Scale, gift.NearestNeighborResampling))
		scaled := image.NewNRGBA(g.Bounds(b))
		g.Draw(scaled, img)
		out = scaled
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	return nil
}

// ImportPNG replaces the blocks of one kind with the contents of a PNG
// sheet laid out as ExportPNG writes it.  Each pixel takes the nearest
// palette colour.  Trailing empty blocks beyond the current block count
// are not added.
func (s *Sheet) ImportPNG(r io.Reader, kind chunk.Kind, opts ImageOptions) error {
	opts = opts.normalize()
	if _, err := s.blocks(kind); err != nil {
		return err
	}
	if len(s.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrPaletteIndexOutOfRange)
	}
	src, err := png.Decode(r)
	if err != nil {
		return fmt.Errorf("png.Decode: %w", err)
	}

	b := src.Bounds()
	cell := pixel.BlockSide * opts.Scale
	if b.Dx() != opts.Columns*cell || b.Dy()%cell != 0 {
		return fmt.Errorf("%w: %dx%d for %d columns at scale %d", ErrImageSize, b.Dx(), b.Dy(), opts.Columns, opts.Scale)
	}

	var img image.Image = src
	if opts.Scale > 1 {
		g := gift.New(gift.Resize(b.Dx()/opts.Scale, b.Dy()/opts.Scale, gift.NearestNeighborResampling))
		small := image.NewNRGBA(g.Bounds(b))
		g.Draw(small, src)
		img = small
	}

	choices := s.Palette
	if len(choices) > pixel.MaxIndex+1 {
		choices = choices[:pixel.MaxIndex+1]
	}

	ib := img.Bounds()
	rows := ib.Dy() / pixel.BlockSide
	blocks := make([]pixel.Block, opts.Columns*rows)
	for i := range blocks {
		ox := ib.Min.X + (i%opts.Columns)*pixel.BlockSide
		oy := ib.Min.Y + (i/opts.Columns)*pixel.BlockSide
		for y := 0; y < pixel.BlockSide; y++ {
			for x := 0; x < pixel.BlockSide; x++ {
				idx := palette.Nearest(choices, img.At(ox+x, oy+y))
				blocks[i].Set(x, y, uint8(idx))
			}
		}
	}

	current, _ := s.Blocks(kind)
	n := len(blocks)
	for n > len(current) && blocks[n-1] == (pixel.Block{}) {
		n--
	}
	if n > MaxBlocks {
		return fmt.Errorf("%w: %d", ErrBlockOutOfRange, n)
	}

	dst, _ := s.blocks(kind)
	*dst = blocks[:n]
	return nil
}
