// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package palette

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpowers/ticart/internal/chunk"
)

func TestUnpack(t *testing.T) {
	colors, err := Unpack([]byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []Color{{1, 2, 3}, {4, 5, 6}}, colors)

	colors, err = Unpack(nil)
	require.NoError(t, err)
	assert.Empty(t, colors)
}

func TestUnpack_IncompleteTriplet(t *testing.T) {
	for _, extra := range [][]byte{{7}, {7, 8}} {
		payload := append([]byte{1, 2, 3}, extra...)
		colors, err := Unpack(payload)
		assert.True(t, errors.Is(err, ErrIncompleteTriplet))
		// the complete colours survive
		assert.Equal(t, []Color{{1, 2, 3}}, colors)
		assert.Equal(t, payload[:3], Pack(colors))
	}
}

func TestPack_RoundTrip(t *testing.T) {
	payload := chunk.DefaultPalettePayload[:]
	colors, err := Unpack(payload)
	require.NoError(t, err)
	require.Len(t, colors, 16)
	assert.Equal(t, payload, Pack(colors))
	assert.Empty(t, Pack(nil))
}

func TestDefault(t *testing.T) {
	colors := Default()
	require.Len(t, colors, 16)
	assert.Equal(t, Color{0x1a, 0x1c, 0x2c}, colors[0])
	assert.Equal(t, "#333c57", colors[15].Hex())
}

func TestColorBridge(t *testing.T) {
	colors := Default()
	p := ToColorPalette(colors)
	require.Len(t, p, 16)

	r, g, b, a := p[3].RGBA()
	assert.Equal(t, uint32(0xefef), r)
	assert.Equal(t, uint32(0x7d7d), g)
	assert.Equal(t, uint32(0x5757), b)
	assert.Equal(t, uint32(0xffff), a)

	assert.Equal(t, colors[5], FromColor(color.NRGBA{R: 0xa7, G: 0xf0, B: 0x70, A: 0xff}))
}

func TestNearest(t *testing.T) {
	colors := Default()
	for i, c := range colors {
		assert.Equal(t, i, Nearest(colors, c))
	}
	// almost white
	assert.Equal(t, 12, Nearest(colors, color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}))
	assert.Equal(t, -1, Nearest(nil, color.Black))

	// ties go to the first entry
	assert.Equal(t, 0, Nearest([]Color{{0, 0, 0}, {0, 0, 0}}, color.Black))
}
