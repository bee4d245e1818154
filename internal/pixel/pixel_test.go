// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pixel

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpack_LowNibbleFirst(t *testing.T) {
	assert.Equal(t, []uint8{0xB, 0xA, 0xD, 0xC}, Unpack([]byte{0xAB, 0xCD}))
	assert.Empty(t, Unpack(nil))
}

func TestPack(t *testing.T) {
	b, err := Pack([]uint8{0xB, 0xA, 0xD, 0xC})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0xCD}, b)

	b, err = Pack(nil)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestPack_Rejects(t *testing.T) {
	_, err := Pack([]uint8{1, 2, 3})
	assert.True(t, errors.Is(err, ErrOddIndexCount))

	_, err = Pack([]uint8{1, 16})
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 2, 31, 32, 33, 1024} {
		payload := make([]byte, n)
		_, _ = rng.Read(payload)

		packed, err := Pack(Unpack(payload))
		require.NoError(t, err)
		assert.Equal(t, payload, packed)
	}
}

func TestNibbles(t *testing.T) {
	n := NewNibbles(6)
	assert.Equal(t, 6, n.Len())
	for i := 0; i < n.Len(); i++ {
		n.Set(i, uint8(i+10))
	}
	assert.Equal(t, []byte{0xba, 0xdc, 0xfe}, n.Bytes())

	n.Set(1, 0)
	assert.Equal(t, uint8(0xa), n.Get(0))
	assert.Equal(t, uint8(0), n.Get(1))
	assert.Equal(t, uint8(0xc), n.Get(2))

	// out of range is ignored
	n.Set(6, 1)
	n.Set(-1, 1)
	assert.Equal(t, uint8(0), n.Get(6))
	assert.Equal(t, []byte{0x0a, 0xdc, 0xfe}, n.Bytes())

	assert.Panics(t, func() { NewNibbles(3) })
}

func TestSplitBlocks(t *testing.T) {
	indices := make([]uint8, BlockPixels+3)
	for i := range indices {
		indices[i] = uint8(i % 16)
	}
	blocks := SplitBlocks(indices)
	require.Len(t, blocks, 2)
	assert.Equal(t, uint8(15), blocks[0].At(7, 1))
	assert.Equal(t, uint8(0), blocks[1].At(0, 0))
	assert.Equal(t, uint8(2), blocks[1].At(2, 0))
	// padded with zeroes
	assert.Equal(t, uint8(0), blocks[1].At(3, 0))
	assert.Equal(t, uint8(0), blocks[1].At(7, 7))

	assert.Empty(t, SplitBlocks(nil))
	assert.Len(t, JoinBlocks(blocks), 2*BlockPixels)
}

func TestBlocks_RoundTrip(t *testing.T) {
	payload := make([]byte, 3*BlockBytes)
	rand.New(rand.NewSource(7)).Read(payload)

	blocks := DecodeBlocks(payload)
	require.Len(t, blocks, 3)

	encoded, err := EncodeBlocks(blocks)
	require.NoError(t, err)
	assert.Equal(t, payload, encoded)
}

func TestBlock(t *testing.T) {
	var b Block
	b.Set(3, 5, 9)
	assert.Equal(t, uint8(9), b[5*BlockSide+3])
	assert.Equal(t, uint8(9), b.At(3, 5))
	assert.Equal(t, uint8(9), b.Max())

	_, err := BlockFrom(make([]uint8, 63))
	assert.True(t, errors.Is(err, ErrBlockSize))

	indices := make([]uint8, BlockPixels)
	indices[63] = 4
	b, err = BlockFrom(indices)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), b.At(7, 7))
}
