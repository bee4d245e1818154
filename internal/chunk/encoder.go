// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
)

const (
	defaultBufferSize = 64 * 1024

	headerSizeOff     = 1
	headerReservedOff = 3
)

var (
	ErrBankOutOfRange  = errors.New("bank does not fit in 3 bits")
	ErrPayloadTooLarge = errors.New("payload longer than 65535 bytes")
)

type nopWriter struct{}

func (nopWriter) Write([]byte) (int, error) {
	return 0, io.EOF
}

// Writer encodes chunks back into the cartridge byte layout.  Chunks are
// written back to back with no padding; call Finish to flush.
type Writer struct {
	w        *bufio.Writer
	off      int64
	count    int
	finished atomic.Bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: bufio.NewWriterSize(w, defaultBufferSize),
	}
}

func encodeHeader(header []byte, c Chunk) error {
	_ = header[headerSize-1]

	if err := c.validate(); err != nil {
		return err
	}
	code, _ := c.Kind.Code()
	header[0] = c.Bank<<bankShift | code
	binary.LittleEndian.PutUint16(header[headerSizeOff:headerSizeOff+2], uint16(len(c.Payload)))
	header[headerReservedOff] = 0
	return nil
}

// Write appends c to the stream and returns the number of bytes written.
func (w *Writer) Write(c Chunk) (n int, err error) {
	if w.finished.Load() {
		return 0, errors.New("chunk.Writer: write after Finish")
	}

	var header [headerSize]byte
	if err := encodeHeader(header[:], c); err != nil {
		return 0, fmt.Errorf("encodeHeader(%s): %w", c, err)
	}
	headerWritten, err := w.w.Write(header[:])
	if err != nil {
		return headerWritten, fmt.Errorf("bufio.Write header: %w", err)
	}
	payloadWritten, err := w.w.Write(c.Payload)
	n = headerWritten + payloadWritten
	if err != nil {
		return n, fmt.Errorf("bufio.Write payload: %w", err)
	}

	w.off += int64(n)
	w.count++
	return n, nil
}

// WriteAll writes every chunk in order, stopping at the first error.
func (w *Writer) WriteAll(chunks []Chunk) error {
	for i, c := range chunks {
		if _, err := w.Write(c); err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
	}
	return nil
}

// Len is the number of bytes written so far.
func (w *Writer) Len() int64 {
	return w.off
}

// Count is the number of chunks written so far.
func (w *Writer) Count() int {
	return w.count
}

// Finish flushes buffered output.  Further writes fail.
func (w *Writer) Finish() error {
	if alreadyFinished := w.finished.Swap(true); alreadyFinished {
		return nil
	}

	defer func() {
		w.w.Reset(nopWriter{})
	}()

	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("bufio.Flush: %w", err)
	}
	return nil
}

// Encode returns the byte layout of chunks.  It is the inverse of Decode
// for chunks with 5-bit kinds, banks 0-7 and payloads of at most 65535 bytes.
func Encode(chunks []Chunk) ([]byte, error) {
	size := 0
	for _, c := range chunks {
		size += c.Len()
	}
	buf := bytes.NewBuffer(make([]byte, 0, size))
	w := NewWriter(buf)
	if err := w.WriteAll(chunks); err != nil {
		return nil, err
	}
	if err := w.Finish(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
