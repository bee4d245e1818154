// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pixel

import (
	"errors"
	"fmt"
)

const (
	BlockSide   = 8
	BlockPixels = BlockSide * BlockSide

	// BlockBytes is the packed size of one block.
	BlockBytes = BlockPixels / 2
)

var ErrBlockSize = errors.New("block must have 64 pixels")

// Block is an 8x8 tile or sprite stored row-major.  Each entry is a
// palette index.
type Block [BlockPixels]uint8

// At returns the index at column x, row y.
func (b *Block) At(x, y int) uint8 {
	return b[y*BlockSide+x]
}

// Set stores v at column x, row y.
func (b *Block) Set(x, y int, v uint8) {
	b[y*BlockSide+x] = v
}

// Max returns the largest index used by b.
func (b *Block) Max() uint8 {
	var m uint8
	for _, v := range b {
		if v > m {
			m = v
		}
	}
	return m
}

// BlockFrom copies exactly 64 indices into a Block.
func BlockFrom(indices []uint8) (Block, error) {
	var b Block
	if len(indices) != BlockPixels {
		return b, fmt.Errorf("%w: got %d", ErrBlockSize, len(indices))
	}
	copy(b[:], indices)
	return b, nil
}

// SplitBlocks cuts indices into blocks of 64.  The stream carries no block
// boundaries; a trailing partial block is filled out with index 0.
func SplitBlocks(indices []uint8) []Block {
	blocks := make([]Block, (len(indices)+BlockPixels-1)/BlockPixels)
	for i := range blocks {
		copy(blocks[i][:], indices[i*BlockPixels:])
	}
	return blocks
}

// JoinBlocks concatenates blocks back into one index stream.
func JoinBlocks(blocks []Block) []uint8 {
	indices := make([]uint8, 0, len(blocks)*BlockPixels)
	for i := range blocks {
		indices = append(indices, blocks[i][:]...)
	}
	return indices
}

// DecodeBlocks unpacks a tiles or sprites payload.
func DecodeBlocks(payload []byte) []Block {
	return SplitBlocks(Unpack(payload))
}

// EncodeBlocks packs blocks into a tiles or sprites payload.
func EncodeBlocks(blocks []Block) ([]byte, error) {
	return Pack(JoinBlocks(blocks))
}
