// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package ticart

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bpowers/ticart/internal/cartfile"
	"github.com/bpowers/ticart/internal/chunk"
	"github.com/bpowers/ticart/internal/palette"
	"github.com/bpowers/ticart/internal/pixel"
	"github.com/bpowers/ticart/internal/sheet"
)

type (
	Chunk = chunk.Chunk
	Kind  = chunk.Kind
	Sheet = sheet.Sheet
	Color = palette.Color
	Block = pixel.Block
)

const (
	Tiles    = chunk.Tiles
	Sprites  = chunk.Sprites
	Map      = chunk.Map
	Code     = chunk.Code
	Flags    = chunk.Flags
	Samples  = chunk.Samples
	Waveform = chunk.Waveform
	Palette  = chunk.Palette
	Music    = chunk.Music
	Patterns = chunk.Patterns
	Default  = chunk.Default
	Screen   = chunk.Screen
	Binary   = chunk.Binary
)

var (
	ErrSourceNotFound         = cartfile.ErrSourceNotFound
	ErrTruncated              = chunk.ErrTruncated
	ErrPaletteIndexOutOfRange = sheet.ErrPaletteIndexOutOfRange
	ErrIncompleteTriplet      = palette.ErrIncompleteTriplet
	ErrOddIndexCount          = pixel.ErrOddIndexCount
)

// Option configures how a cartridge is loaded.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	lenient bool
}

// WithLogger sets an optional logger for load and save progress.
// If not provided, no logging output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithLenient makes loading tolerate damaged cartridges the way older
// tools did: a record cut off by the end of the file is dropped and a
// palette with a partial trailing colour loses that colour.  Both are
// logged as warnings instead of failing.
func WithLenient(lenient bool) Option {
	return func(opts *options) {
		opts.lenient = lenient
	}
}

func newOptions(opts []Option) options {
	var o options
	o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Cartridge is a decoded cartridge: its chunks in file order, with any
// Default directive already applied.
type Cartridge struct {
	path         string
	chunks       []chunk.Chunk
	fingerprints map[chunk.Kind]uint64
	logger       *slog.Logger
	lenient      bool
}

// Open reads and decodes the cartridge at path.
func Open(path string, opts ...Option) (*Cartridge, error) {
	data, err := cartfile.Read(path)
	if err != nil {
		return nil, fmt.Errorf("cartfile.Read(%s): %w", path, err)
	}
	c, err := Load(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.path = path
	return c, nil
}

// Load decodes a cartridge already in memory.
func Load(data []byte, opts ...Option) (*Cartridge, error) {
	o := newOptions(opts)

	chunks, err := chunk.Decode(data)
	if err != nil {
		if !o.lenient || !errors.Is(err, chunk.ErrTruncated) {
			return nil, fmt.Errorf("chunk.Decode: %w", err)
		}
		o.logger.Warn("dropping truncated chunk", "err", err)
	}

	for i, c := range chunks {
		o.logger.Debug("chunk",
			"index", i,
			"kind", c.Kind.String(),
			"bank", c.Bank,
			"size", len(c.Payload),
			"fingerprint", fmt.Sprintf("%016x", c.Fingerprint()))
	}

	chunks, resolved := chunk.ResolveDefaults(chunks)
	if resolved {
		o.logger.Info("default chunk present, using built-in palette")
	}

	c := &Cartridge{
		chunks:  chunks,
		logger:  o.logger,
		lenient: o.lenient,
	}
	c.fingerprints = c.snapshot()
	return c, nil
}

// New returns an empty cartridge.
func New(opts ...Option) *Cartridge {
	c, err := Load(nil, opts...)
	if err != nil {
		panic("invariant broken: decoding no bytes failed")
	}
	return c
}

// Path is the file the cartridge was opened from, if any.
func (c *Cartridge) Path() string {
	return c.path
}

// Chunks returns a copy of the chunk list.
func (c *Cartridge) Chunks() []chunk.Chunk {
	chunks := make([]chunk.Chunk, len(c.chunks))
	for i := range c.chunks {
		chunks[i] = c.chunks[i].Clone()
	}
	return chunks
}

// Chunk returns the first chunk of the given kind.
func (c *Cartridge) Chunk(kind chunk.Kind) (chunk.Chunk, bool) {
	found, ok := chunk.Extract(c.chunks, kind)
	if !ok {
		return chunk.Chunk{}, false
	}
	return found.Clone(), true
}

// Replace puts ch in place of the first chunk of its kind, or appends it.
func (c *Cartridge) Replace(ch chunk.Chunk) {
	c.chunks = chunk.Replace(c.chunks, ch.Clone())
}

// Sheet decodes the palette, tiles and sprites.  Missing chunks give empty
// collections.
func (c *Cartridge) Sheet() (*sheet.Sheet, error) {
	s := &sheet.Sheet{}

	if pc, ok := chunk.Extract(c.chunks, chunk.Palette); ok {
		colors, err := palette.Unpack(pc.Payload)
		if err != nil {
			if !c.lenient {
				return nil, fmt.Errorf("palette: %w", err)
			}
			c.logger.Warn("dropping incomplete palette colour", "err", err)
		}
		s.Palette = colors
	}
	if tc, ok := chunk.Extract(c.chunks, chunk.Tiles); ok {
		s.Tiles = pixel.DecodeBlocks(tc.Payload)
	}
	if sc, ok := chunk.Extract(c.chunks, chunk.Sprites); ok {
		s.Sprites = pixel.DecodeBlocks(sc.Payload)
	}

	c.logger.Debug("sheet",
		"colors", len(s.Palette),
		"tiles", len(s.Tiles),
		"sprites", len(s.Sprites))
	return s, nil
}

// Apply packs an edited sheet and writes it back into the chunk list as
// bank 0 Tiles, Sprites and Palette chunks.  Other chunks are untouched.
func (c *Cartridge) Apply(s *sheet.Sheet) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("sheet.Validate: %w", err)
	}
	tiles, err := pixel.EncodeBlocks(s.Tiles)
	if err != nil {
		return fmt.Errorf("tiles: %w", err)
	}
	sprites, err := pixel.EncodeBlocks(s.Sprites)
	if err != nil {
		return fmt.Errorf("sprites: %w", err)
	}
	pal := palette.Pack(s.Palette)
	if len(pal) > chunk.MaxPayloadLen {
		return fmt.Errorf("palette: %w", chunk.ErrPayloadTooLarge)
	}

	c.chunks = chunk.Replace(c.chunks, chunk.Chunk{Kind: chunk.Tiles, Payload: tiles})
	c.chunks = chunk.Replace(c.chunks, chunk.Chunk{Kind: chunk.Sprites, Payload: sprites})
	c.chunks = chunk.Replace(c.chunks, chunk.Chunk{Kind: chunk.Palette, Payload: pal})
	return nil
}

func (c *Cartridge) snapshot() map[chunk.Kind]uint64 {
	fingerprints := make(map[chunk.Kind]uint64)
	for _, ch := range c.chunks {
		if _, ok := fingerprints[ch.Kind]; !ok {
			fingerprints[ch.Kind] = ch.Fingerprint()
		}
	}
	return fingerprints
}

// Changed lists the kinds whose first chunk differs from when the
// cartridge was loaded or last saved, in chunk order.
func (c *Cartridge) Changed() []chunk.Kind {
	var changed []chunk.Kind
	current := c.snapshot()
	for _, ch := range c.chunks {
		fp, ok := current[ch.Kind]
		if !ok {
			continue
		}
		delete(current, ch.Kind)
		if orig, seen := c.fingerprints[ch.Kind]; !seen || orig != fp {
			changed = append(changed, ch.Kind)
		}
	}
	return changed
}
