// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package cartfile moves whole cartridge files between disk and memory.
package cartfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Extension is the file extension of cartridges.
const Extension = ".tic"

var ErrSourceNotFound = errors.New("cartridge source not found")

// Read returns the full contents of the file at path.  The file is mapped
// and copied out in one pass; files that cannot be mapped are read
// normally.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}
	defer func() { _ = f.Close() }()

	stats, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: f.Stat: %w", ErrSourceNotFound, err)
	}
	if stats.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}
	size := stats.Size()
	if size == 0 {
		return []byte{}, nil
	}

	if data, err := readMapped(f, size); err == nil {
		return data, nil
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("io.ReadFull(%s): %w", path, err)
	}
	return data, nil
}

func readMapped(f *os.File, size int64) ([]byte, error) {
	m, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("unix.Mmap: %w", err)
	}
	defer func() { _ = unix.Munmap(m) }()

	// a single front-to-back scan follows
	if err := unix.Madvise(m, unix.MADV_SEQUENTIAL); err != nil {
		return nil, fmt.Errorf("madvise: %w", err)
	}

	data := make([]byte, len(m))
	copy(data, m)
	return data, nil
}

// FileWriter is usually an *os.File, but specified as an interface for easier testing.
type FileWriter interface {
	io.Writer
	Sync() error
}

// WriteTo writes data to f in a single write and syncs it.
func WriteTo(f FileWriter, data []byte) error {
	n, err := f.Write(data)
	if err != nil {
		return fmt.Errorf("f.Write: %w", err)
	} else if n != len(data) {
		return fmt.Errorf("f.Write: short write of %d (wanted %d)", n, len(data))
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("f.Sync: %w", err)
	}
	return nil
}

// Write creates the file at path, or truncates it if it exists, and
// writes data to it.
func Write(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("os.OpenFile(%s): %w", path, err)
	}
	if err := WriteTo(f, data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("f.Close: %w", err)
	}
	return nil
}
