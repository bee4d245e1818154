// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

// DefaultPalettePayload is the palette used by cartridges that carry a
// Default chunk: 16 RGB triplets.
var DefaultPalettePayload = [48]byte{
	0x1a, 0x1c, 0x2c, 0x5d, 0x27, 0x5d, 0xb1, 0x3e, 0x53, 0xef, 0x7d, 0x57,
	0xff, 0xcd, 0x75, 0xa7, 0xf0, 0x70, 0x38, 0xb7, 0x64, 0x25, 0x71, 0x79,
	0x29, 0x36, 0x6f, 0x3b, 0x5d, 0xc9, 0x41, 0xa6, 0xf6, 0x73, 0xef, 0xf7,
	0xf4, 0xf4, 0xf4, 0x94, 0xb0, 0xc2, 0x56, 0x6c, 0x86, 0x33, 0x3c, 0x57,
}

// ResolveDefaults applies the directive of a Default chunk: when one is
// present, the palette chunk is replaced by the built-in palette even if the
// cartridge already has a non-empty one.  resolved reports whether that
// happened.
func ResolveDefaults(chunks []Chunk) (result []Chunk, resolved bool) {
	if !Find(chunks, Default) {
		return chunks, false
	}
	palette := Chunk{
		Kind:    Palette,
		Bank:    0,
		Payload: append([]byte{}, DefaultPalettePayload[:]...),
	}
	return Replace(chunks, palette), true
}
