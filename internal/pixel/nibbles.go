// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pixel

// Nibbles is a view of a byte slice as a sequence of 4-bit values, two per
// byte, low nibble first.  It is conceptually similar to []uint8 holding
// values 0-15, but half the size.
type Nibbles struct {
	bits   []byte
	length int
}

func getOffsets(off int) (sliceOff int, shift uint) {
	sliceOff = off / 2
	shift = uint(off%2) * 4
	return
}

// Get returns the nibble at position off.
func (n *Nibbles) Get(off int) uint8 {
	if off < 0 || off >= n.length {
		return 0
	}
	sliceOff, shift := getOffsets(off)
	return (n.bits[sliceOff] >> shift) & 0xf
}

// Set stores the low 4 bits of v at position off.
func (n *Nibbles) Set(off int, v uint8) {
	if off < 0 || off >= n.length {
		return
	}
	sliceOff, shift := getOffsets(off)
	b := &n.bits[sliceOff]
	*b = *b&^(0xf<<shift) | (v&0xf)<<shift
}

// Len is the number of nibbles.
func (n *Nibbles) Len() int {
	return n.length
}

// Bytes returns the backing bytes.  They are shared, not copied.
func (n *Nibbles) Bytes() []byte {
	return n.bits
}

// NewNibbles returns length zeroed nibbles.  length must be even: every
// byte holds exactly two values.
func NewNibbles(length int) *Nibbles {
	if length%2 != 0 {
		panic("invariant broken: odd nibble count")
	}
	return &Nibbles{
		bits:   make([]byte, length/2),
		length: length,
	}
}

// NibblesOf views b as 2*len(b) nibbles.
func NibblesOf(b []byte) *Nibbles {
	return &Nibbles{
		bits:   b,
		length: 2 * len(b),
	}
}
