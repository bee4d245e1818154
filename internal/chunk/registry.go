// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

// Find reports whether any chunk in chunks has the given kind.
func Find(chunks []Chunk, kind Kind) bool {
	return index(chunks, kind) >= 0
}

// Extract returns the first chunk of the given kind.  ok is false when
// there is none, which is distinct from a chunk with an empty payload.
func Extract(chunks []Chunk, kind Kind) (c Chunk, ok bool) {
	i := index(chunks, kind)
	if i < 0 {
		return Chunk{}, false
	}
	return chunks[i], true
}

// Replace returns a copy of chunks where the first chunk with c's kind has
// been replaced by c, keeping its position.  If there is no such chunk, c is
// appended.  Duplicates of the kind after the first are left as they are.
func Replace(chunks []Chunk, c Chunk) []Chunk {
	result := make([]Chunk, len(chunks), len(chunks)+1)
	copy(result, chunks)
	if i := index(result, c.Kind); i >= 0 {
		result[i] = c
		return result
	}
	return append(result, c)
}

func index(chunks []Chunk, kind Kind) int {
	for i := range chunks {
		if chunks[i].Kind == kind {
			return i
		}
	}
	return -1
}
