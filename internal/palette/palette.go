// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package palette converts palette chunk payloads to and from colours.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/bpowers/ticart/internal/chunk"
)

const tripletSize = 3

var ErrIncompleteTriplet = errors.New("palette payload is not a whole number of RGB triplets")

// Color is one palette entry.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color; palette entries are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Unpack groups payload into RGB triplets.  When 1 or 2 bytes are left over
// the complete colours are still returned, along with ErrIncompleteTriplet.
func Unpack(payload []byte) ([]Color, error) {
	colors := make([]Color, 0, len(payload)/tripletSize)
	for i := 0; i+tripletSize <= len(payload); i += tripletSize {
		colors = append(colors, Color{R: payload[i], G: payload[i+1], B: payload[i+2]})
	}
	if rem := len(payload) % tripletSize; rem != 0 {
		return colors, fmt.Errorf("%w: %d trailing bytes", ErrIncompleteTriplet, rem)
	}
	return colors, nil
}

// Pack flattens colors into a palette payload.
func Pack(colors []Color) []byte {
	payload := make([]byte, 0, len(colors)*tripletSize)
	for _, c := range colors {
		payload = append(payload, c.R, c.G, c.B)
	}
	return payload
}

// Default returns the built-in 16-colour palette.
func Default() []Color {
	colors, err := Unpack(chunk.DefaultPalettePayload[:])
	if err != nil {
		panic("invariant broken: default palette is not whole triplets")
	}
	return colors
}

// ToColorPalette converts colors for use with the image packages.
func ToColorPalette(colors []Color) color.Palette {
	p := make(color.Palette, len(colors))
	for i, c := range colors {
		p[i] = c
	}
	return p
}

// FromColor converts any color.Color to a palette entry, dropping alpha.
func FromColor(c color.Color) Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return Color{R: rgba.R, G: rgba.G, B: rgba.B}
}

// Nearest returns the index of the entry closest to c by squared RGB
// distance, or -1 when colors is empty.  Ties go to the lower index.
func Nearest(colors []Color, c color.Color) int {
	target := FromColor(c)
	best, bestDist := -1, 0
	for i, candidate := range colors {
		dr := int(candidate.R) - int(target.R)
		dg := int(candidate.G) - int(target.G)
		db := int(candidate.B) - int(target.B)
		dist := dr*dr + dg*dg + db*db
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
