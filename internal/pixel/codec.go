// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package pixel packs palette indices two to a byte and groups them into
// 8x8 blocks.
package pixel

import (
	"errors"
	"fmt"
)

const MaxIndex = 0xf

var (
	ErrOddIndexCount   = errors.New("odd number of pixel indices")
	ErrIndexOutOfRange = errors.New("pixel index does not fit in 4 bits")
)

// Unpack expands every byte of payload into two indices, low nibble first.
func Unpack(payload []byte) []uint8 {
	nibbles := NibblesOf(payload)
	indices := make([]uint8, nibbles.Len())
	for i := range indices {
		indices[i] = nibbles.Get(i)
	}
	return indices
}

// Pack stores consecutive pairs (a, b) of indices as the byte a|b<<4.  An
// odd count is rejected rather than dropping the last index.
func Pack(indices []uint8) ([]byte, error) {
	if len(indices)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddIndexCount, len(indices))
	}
	nibbles := NewNibbles(len(indices))
	for i, v := range indices {
		if v > MaxIndex {
			return nil, fmt.Errorf("%w: %d at position %d", ErrIndexOutOfRange, v, i)
		}
		nibbles.Set(i, v)
	}
	return nibbles.Bytes(), nil
}
