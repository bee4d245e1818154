// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ZeroLengthChunk(t *testing.T) {
	chunks, err := Decode([]byte{0x01, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, Tiles, chunks[0].Kind)
	assert.Equal(t, uint8(0), chunks[0].Bank)
	assert.Empty(t, chunks[0].Payload)
}

func TestDecode_SingleChunk(t *testing.T) {
	chunks, err := Decode([]byte{0x01, 0x02, 0x00, 0x00, 0xAB, 0xCD})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, Tiles, chunks[0].Kind)
	assert.Equal(t, uint8(0), chunks[0].Bank)
	assert.Equal(t, []byte{0xAB, 0xCD}, chunks[0].Payload)
}

func TestDecode_Empty(t *testing.T) {
	chunks, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestDecode_Sequence(t *testing.T) {
	input := []byte{
		0x0c, 0x03, 0x00, 0x00, 1, 2, 3, // palette
		0x11, 0x00, 0x00, 0x00, // default, no payload
		0x44, 0x01, 0x00, 0x7f, 9, // map in bank 2, reserved byte ignored
		0x03, 0x00, 0x01, 0x00, // unrecognized code 3, 256 bytes
	}
	input = append(input, make([]byte, 256)...)
	input = append(input, 0x02, 0x00, 0x00, 0x00) // trailing empty sprites

	chunks, err := Decode(input)
	require.NoError(t, err)
	require.Len(t, chunks, 5)

	assert.Equal(t, Palette, chunks[0].Kind)
	assert.Equal(t, []byte{1, 2, 3}, chunks[0].Payload)

	assert.Equal(t, Default, chunks[1].Kind)
	assert.Empty(t, chunks[1].Payload)

	assert.Equal(t, Map, chunks[2].Kind)
	assert.Equal(t, uint8(2), chunks[2].Bank)
	assert.Equal(t, []byte{9}, chunks[2].Payload)

	assert.Equal(t, Kind(3), chunks[3].Kind)
	assert.False(t, chunks[3].Kind.Recognized())
	assert.Len(t, chunks[3].Payload, 256)

	assert.Equal(t, Sprites, chunks[4].Kind)
	assert.Empty(t, chunks[4].Payload)
}

func TestDecode_Truncated(t *testing.T) {
	full := []byte{
		0x01, 0x01, 0x00, 0x00, 0xAA,
		0x02, 0x03, 0x00, 0x00, 0x01, 0x02, 0x03,
	}

	// every cut inside the second record is reported, and the first chunk
	// is still returned
	for cut := 6; cut < len(full); cut++ {
		chunks, err := Decode(full[:cut])
		require.Error(t, err, "cut at %d", cut)
		assert.True(t, errors.Is(err, ErrTruncated))
		require.Len(t, chunks, 1)
		assert.Equal(t, []byte{0xAA}, chunks[0].Payload)
	}

	chunks, err := Decode(full)
	require.NoError(t, err)
	assert.Len(t, chunks, 2)
}

func TestDecoder_IncrementalWrites(t *testing.T) {
	input := []byte{
		0x21, 0x02, 0x00, 0x00, 0x10, 0x32,
		0x0c, 0x00, 0x00, 0x00,
		0xe2, 0x01, 0x00, 0x00, 0xff,
	}
	expected, err := Decode(input)
	require.NoError(t, err)

	d := NewDecoder()
	for i := range input {
		n, err := d.Write(input[i : i+1])
		require.NoError(t, err)
		require.Equal(t, 1, n)
	}
	require.NoError(t, d.Close())
	assert.Equal(t, expected, d.Chunks())
	assert.Equal(t, int64(len(input)), d.Offset())

	assert.Equal(t, uint8(1), expected[0].Bank)
	assert.Equal(t, Sprites, expected[2].Kind)
	assert.Equal(t, uint8(7), expected[2].Bank)
}

func TestDecoder_CloseResets(t *testing.T) {
	d := NewDecoder()
	_, _ = d.Write([]byte{0x01, 0x05})
	err := d.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size (high byte)")

	// the partial record is gone; decoding continues from a header
	_, _ = d.Write([]byte{0x02, 0x00, 0x00, 0x00})
	require.NoError(t, d.Close())
	require.Len(t, d.Chunks(), 1)
	assert.Equal(t, Sprites, d.Chunks()[0].Kind)
}
