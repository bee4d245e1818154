// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

import (
	"errors"
	"fmt"
)

var ErrTruncated = errors.New("cartridge truncated mid-chunk")

// state is the position of the decoder inside the current record.
type state uint8

const (
	awaitHeader state = iota
	sizeLow
	sizeHigh
	reserved
	payload
)

func (s state) String() string {
	switch s {
	case awaitHeader:
		return "header"
	case sizeLow:
		return "size (low byte)"
	case sizeHigh:
		return "size (high byte)"
	case reserved:
		return "reserved byte"
	case payload:
		return "payload"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Decoder splits a byte stream into chunks.  The stream carries no chunk
// count or terminator: records follow each other until input runs out.
// Bytes may be supplied in pieces of any size via Write.
type Decoder struct {
	state     state
	off       int64
	start     int64
	remaining int
	cur       Chunk
	chunks    []Chunk
}

// NewDecoder returns a Decoder positioned before the first header.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Write feeds p to the decoder.  It never fails; truncation can only be
// detected once the caller declares the input finished with Close.
func (d *Decoder) Write(p []byte) (int, error) {
	for _, b := range p {
		d.step(b)
	}
	return len(p), nil
}

// step consumes exactly one byte and performs one state transition.
func (d *Decoder) step(b byte) {
	switch d.state {
	case awaitHeader:
		d.start = d.off
		d.cur = Chunk{
			Kind: KindFromCode(b),
			Bank: b >> bankShift,
		}
		d.state = sizeLow
	case sizeLow:
		d.remaining = int(b)
		d.state = sizeHigh
	case sizeHigh:
		d.remaining |= int(b) << 8
		d.state = reserved
	case reserved:
		d.cur.Payload = make([]byte, 0, d.remaining)
		if d.remaining == 0 {
			d.emit()
		} else {
			d.state = payload
		}
	case payload:
		d.cur.Payload = append(d.cur.Payload, b)
		d.remaining--
		if d.remaining == 0 {
			d.emit()
		}
	default:
		panic("invariant broken: unknown decoder state")
	}
	d.off++
}

func (d *Decoder) emit() {
	d.chunks = append(d.chunks, d.cur)
	d.cur = Chunk{}
	d.state = awaitHeader
}

// Chunks returns the chunks completed so far, in stream order.
func (d *Decoder) Chunks() []Chunk {
	return d.chunks
}

// Offset is the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.off
}

// Close reports ErrTruncated if the input ended inside a record.  The
// partial record is discarded either way.
func (d *Decoder) Close() error {
	if d.state == awaitHeader {
		return nil
	}
	err := fmt.Errorf("%w: %s chunk at offset %d ended in %s", ErrTruncated, d.cur.Kind, d.start, d.state)
	if d.state == payload {
		err = fmt.Errorf("%w: %s chunk at offset %d is missing %d of %d payload bytes",
			ErrTruncated, d.cur.Kind, d.start, d.remaining, cap(d.cur.Payload))
	}
	d.cur = Chunk{}
	d.state = awaitHeader
	return err
}

// Decode splits b into chunks.  On ErrTruncated the chunks completed before
// the partial record are still returned.
func Decode(b []byte) ([]Chunk, error) {
	d := NewDecoder()
	_, _ = d.Write(b)
	err := d.Close()
	return d.Chunks(), err
}
