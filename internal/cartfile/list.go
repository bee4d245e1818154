// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cartfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name string
	Path string
	Dir  bool
	Size int64
}

// List returns the subdirectories and cartridges in dir, directories
// first, each group sorted by name.  Hidden entries and other files are
// skipped.
func List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s): %w", dir, err)
	}

	var entries []Entry
	for _, de := range des {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		e := Entry{
			Name: name,
			Path: filepath.Join(dir, name),
			Dir:  de.IsDir(),
		}
		if !e.Dir {
			if !strings.EqualFold(filepath.Ext(name), Extension) {
				continue
			}
			if info, err := de.Info(); err == nil {
				e.Size = info.Size()
			}
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Dir != entries[j].Dir {
			return entries[i].Dir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
