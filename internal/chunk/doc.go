// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package chunk reads and writes the chunk stream that makes up a
// cartridge file.
//
// A cartridge is nothing but chunks, one after the other, until the end of
// the file.  There is no file header, chunk count or terminator.  Each chunk
// starts with a fixed 4-byte header followed by its payload:
//
//	 0         1         2         3         4
//	+---------+---------+---------+---------+---------- - -
//	|bank|type| size lo | size hi |reserved | payload...
//	+---------+---------+---------+---------+---------- - -
//
// The first byte holds the type code in bits 0-4 and the bank in bits 5-7.
// Size is a 16-bit little-endian payload length, so payloads are at most
// 65535 bytes.  The reserved byte is written as 0 and ignored on read.
//
// Banks are exposed normalized (0-7) on Chunk.  Type codes that are not in
// the known table decode to an unrecognized Kind carrying the raw code and
// are written back unchanged.
package chunk
