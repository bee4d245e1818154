// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

import (
	"bytes"
	"fmt"

	"github.com/dgryski/go-farm"
)

const (
	headerSize = 1 + 2 + 1 // type+bank, 16-bit little-endian size, reserved

	bankShift = 5
	MaxBank   = (1 << 3) - 1

	MaxPayloadLen = (1 << 16) - 1
)

// Chunk is a single framed record of a cartridge.  Bank is kept in its
// normalized form (0-7); the encoder and decoder do the shifting.
type Chunk struct {
	Kind    Kind
	Bank    uint8
	Payload []byte
}

// Len is the number of bytes c occupies once encoded.
func (c Chunk) Len() int {
	return headerSize + len(c.Payload)
}

// Fingerprint identifies the payload contents; equal payloads always have
// equal fingerprints.
func (c Chunk) Fingerprint() uint64 {
	return farm.Fingerprint64(c.Payload)
}

// Equal reports whether c and other have the same kind, bank and payload.
// A nil payload equals an empty one.
func (c Chunk) Equal(other Chunk) bool {
	return c.Kind == other.Kind && c.Bank == other.Bank && bytes.Equal(c.Payload, other.Payload)
}

// Clone returns a copy of c that shares no memory with it.
func (c Chunk) Clone() Chunk {
	c.Payload = append([]byte{}, c.Payload...)
	return c
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s[bank %d, %d bytes]", c.Kind, c.Bank, len(c.Payload))
}

func (c Chunk) validate() error {
	if _, err := c.Kind.Code(); err != nil {
		return err
	}
	if c.Bank > MaxBank {
		return fmt.Errorf("%w: %d", ErrBankOutOfRange, c.Bank)
	}
	if len(c.Payload) > MaxPayloadLen {
		return fmt.Errorf("%w: %s has %d bytes", ErrPayloadTooLarge, c.Kind, len(c.Payload))
	}
	return nil
}
