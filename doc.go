// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package ticart loads fantasy-console cartridge files, exposes their
// palette, tiles and sprites for editing, and writes edits back without
// disturbing the chunks it does not understand.
//
// Loading and saving look like:
//
//	cart, err := ticart.Open("game.tic")
//	if err != nil {
//		return err
//	}
//	s, err := cart.Sheet()
//	if err != nil {
//		return err
//	}
//	if err := s.SetPixel(ticart.Sprites, 0, 3, 4, 8); err != nil {
//		return err
//	}
//	if err := cart.Apply(s); err != nil {
//		return err
//	}
//	return cart.Save("")
package ticart
