// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package ticart

import (
	"errors"
	"fmt"
	"io"

	"github.com/bpowers/ticart/internal/cartfile"
	"github.com/bpowers/ticart/internal/chunk"
)

// Bytes encodes the chunk list into the cartridge byte layout.
func (c *Cartridge) Bytes() ([]byte, error) {
	data, err := chunk.Encode(c.chunks)
	if err != nil {
		return nil, fmt.Errorf("chunk.Encode: %w", err)
	}
	return data, nil
}

// WriteTo encodes the cartridge to w.
func (c *Cartridge) WriteTo(w io.Writer) (int64, error) {
	cw := chunk.NewWriter(w)
	if err := cw.WriteAll(c.chunks); err != nil {
		return 0, fmt.Errorf("chunk.Writer: %w", err)
	}
	if err := cw.Finish(); err != nil {
		return 0, fmt.Errorf("chunk.Writer.Finish: %w", err)
	}
	return cw.Len(), nil
}

// Save encodes the cartridge and writes it to path, replacing any file
// already there.  An empty path saves back to the file it was opened from.
func (c *Cartridge) Save(path string) error {
	if path == "" {
		path = c.path
	}
	if path == "" {
		return errors.New("no path given and cartridge was not opened from a file")
	}

	data, err := c.Bytes()
	if err != nil {
		return err
	}
	changed := c.Changed()
	if err := cartfile.Write(path, data); err != nil {
		return fmt.Errorf("cartfile.Write: %w", err)
	}

	kinds := make([]string, len(changed))
	for i, k := range changed {
		kinds[i] = k.String()
	}
	c.logger.Info("saved cartridge",
		"path", path,
		"bytes", len(data),
		"chunks", len(c.chunks),
		"changed", kinds)

	c.path = path
	c.fingerprints = c.snapshot()
	return nil
}
