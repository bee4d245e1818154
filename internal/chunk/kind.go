// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the type of a chunk.  Its value is the 5-bit type code
// stored in the low bits of the chunk header, so codes without a name in
// the table below still round-trip unchanged.
type Kind uint8

const (
	Tiles    Kind = 1
	Sprites  Kind = 2
	Map      Kind = 4
	Code     Kind = 5
	Flags    Kind = 6
	Samples  Kind = 9
	Waveform Kind = 10
	Palette  Kind = 12
	Music    Kind = 14
	Patterns Kind = 15
	Default  Kind = 17
	Screen   Kind = 18
	Binary   Kind = 19

	codeMask = 0x1f
	maxCode  = codeMask
)

var ErrUnencodableKind = errors.New("chunk kind does not fit in 5 bits")

var kindNames = [maxCode + 1]string{
	Tiles:    "Tiles",
	Sprites:  "Sprites",
	Map:      "Map",
	Code:     "Code",
	Flags:    "Flags",
	Samples:  "Samples",
	Waveform: "Waveform",
	Palette:  "Palette",
	Music:    "Music",
	Patterns: "Patterns",
	Default:  "Default",
	Screen:   "Screen",
	Binary:   "Binary",
}

// KindFromCode returns the kind for the low 5 bits of a chunk header byte.
// It is total: codes missing from the table come back unrecognized.
func KindFromCode(b byte) Kind {
	return Kind(b & codeMask)
}

// Code returns the 5-bit header code for k.
func (k Kind) Code() (byte, error) {
	if k > maxCode {
		return 0, fmt.Errorf("%w: %d", ErrUnencodableKind, uint8(k))
	}
	return byte(k), nil
}

// Recognized reports whether k is one of the named chunk kinds.
func (k Kind) Recognized() bool {
	return k <= maxCode && kindNames[k] != ""
}

func (k Kind) String() string {
	if k.Recognized() {
		return kindNames[k]
	}
	return fmt.Sprintf("Unrecognized(%d)", uint8(k))
}

// Kinds returns the named kinds in code order.
func Kinds() []Kind {
	var kinds []Kind
	for code, name := range kindNames {
		if name != "" {
			kinds = append(kinds, Kind(code))
		}
	}
	return kinds
}

// ParseKind maps a kind name (case-insensitive) back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for code, n := range kindNames {
		if n != "" && strings.EqualFold(n, name) {
			return Kind(code), true
		}
	}
	return 0, false
}
