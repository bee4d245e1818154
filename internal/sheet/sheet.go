// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package sheet holds the decoded, editable assets of a cartridge: the
// palette and the tile and sprite blocks indexing into it.
package sheet

import (
	"errors"
	"fmt"

	"github.com/bpowers/ticart/internal/chunk"
	"github.com/bpowers/ticart/internal/palette"
	"github.com/bpowers/ticart/internal/pixel"
)

var (
	ErrPaletteIndexOutOfRange = errors.New("pixel index outside of palette")
	ErrNotBlockKind           = errors.New("only tiles and sprites hold blocks")
	ErrBlockOutOfRange        = errors.New("block number out of range")
	ErrPixelOutOfRange        = errors.New("pixel coordinate outside the 8x8 block")
)

// MaxBlocks is the most blocks of one kind a single bank can hold.
const MaxBlocks = chunk.MaxPayloadLen / pixel.BlockBytes

// Sheet is what an editing surface receives and hands back.  Index 0 of the
// palette is the background colour.
type Sheet struct {
	Palette []palette.Color
	Tiles   []pixel.Block
	Sprites []pixel.Block
}

// Clone returns a deep copy of s.
func (s *Sheet) Clone() *Sheet {
	return &Sheet{
		Palette: append([]palette.Color(nil), s.Palette...),
		Tiles:   append([]pixel.Block(nil), s.Tiles...),
		Sprites: append([]pixel.Block(nil), s.Sprites...),
	}
}

func (s *Sheet) blocks(kind chunk.Kind) (*[]pixel.Block, error) {
	switch kind {
	case chunk.Tiles:
		return &s.Tiles, nil
	case chunk.Sprites:
		return &s.Sprites, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotBlockKind, kind)
	}
}

// Blocks returns the tiles or sprites of s.
func (s *Sheet) Blocks(kind chunk.Kind) ([]pixel.Block, error) {
	blocks, err := s.blocks(kind)
	if err != nil {
		return nil, err
	}
	return *blocks, nil
}

// Block returns block i of the given kind.  Positions past the end read as
// an all-zero block, the same as an unused slot in the editor grid.
func (s *Sheet) Block(kind chunk.Kind, i int) (pixel.Block, error) {
	blocks, err := s.blocks(kind)
	if err != nil {
		return pixel.Block{}, err
	}
	if i < 0 || i >= MaxBlocks {
		return pixel.Block{}, fmt.Errorf("%w: %d", ErrBlockOutOfRange, i)
	}
	if i >= len(*blocks) {
		return pixel.Block{}, nil
	}
	return (*blocks)[i], nil
}

// SetBlock stores b at position i.  Writing past the end first appends
// all-zero blocks for every skipped position.
func (s *Sheet) SetBlock(kind chunk.Kind, i int, b pixel.Block) error {
	blocks, err := s.blocks(kind)
	if err != nil {
		return err
	}
	if i < 0 || i >= MaxBlocks {
		return fmt.Errorf("%w: %d", ErrBlockOutOfRange, i)
	}
	if err := s.checkBlock(b); err != nil {
		return fmt.Errorf("%s block %d: %w", kind, i, err)
	}
	for len(*blocks) <= i {
		*blocks = append(*blocks, pixel.Block{})
	}
	(*blocks)[i] = b
	return nil
}

// SetPixel paints a single pixel of block i with palette index idx.
func (s *Sheet) SetPixel(kind chunk.Kind, i, x, y int, idx uint8) error {
	if x < 0 || x >= pixel.BlockSide || y < 0 || y >= pixel.BlockSide {
		return fmt.Errorf("%w: (%d, %d)", ErrPixelOutOfRange, x, y)
	}
	b, err := s.Block(kind, i)
	if err != nil {
		return err
	}
	b.Set(x, y, idx)
	return s.SetBlock(kind, i, b)
}

// ColorAt resolves a pixel of block i to its palette colour.
func (s *Sheet) ColorAt(kind chunk.Kind, i, x, y int) (palette.Color, error) {
	if x < 0 || x >= pixel.BlockSide || y < 0 || y >= pixel.BlockSide {
		return palette.Color{}, fmt.Errorf("%w: (%d, %d)", ErrPixelOutOfRange, x, y)
	}
	b, err := s.Block(kind, i)
	if err != nil {
		return palette.Color{}, err
	}
	return s.color(b.At(x, y))
}

func (s *Sheet) color(idx uint8) (palette.Color, error) {
	if int(idx) >= len(s.Palette) {
		return palette.Color{}, fmt.Errorf("%w: index %d, palette has %d colours",
			ErrPaletteIndexOutOfRange, idx, len(s.Palette))
	}
	return s.Palette[idx], nil
}

func (s *Sheet) checkBlock(b pixel.Block) error {
	m := b.Max()
	if m > pixel.MaxIndex {
		return fmt.Errorf("%w: %d", pixel.ErrIndexOutOfRange, m)
	}
	if int(m) >= len(s.Palette) {
		return fmt.Errorf("%w: index %d, palette has %d colours", ErrPaletteIndexOutOfRange, m, len(s.Palette))
	}
	return nil
}

// Validate checks that every pixel of every block indexes into the palette.
func (s *Sheet) Validate() error {
	for _, kind := range []chunk.Kind{chunk.Tiles, chunk.Sprites} {
		blocks, _ := s.Blocks(kind)
		if len(blocks) > MaxBlocks {
			return fmt.Errorf("%w: %d %s", ErrBlockOutOfRange, len(blocks), kind)
		}
		for i, b := range blocks {
			if err := s.checkBlock(b); err != nil {
				return fmt.Errorf("%s block %d: %w", kind, i, err)
			}
		}
	}
	return nil
}
