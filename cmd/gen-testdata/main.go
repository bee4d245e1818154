// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/bpowers/ticart"
	"github.com/bpowers/ticart/internal/chunk"
	"github.com/bpowers/ticart/internal/palette"
	"github.com/bpowers/ticart/internal/pixel"
)

var (
	output   = flag.String("o", "testdata.tic", "cartridge to write")
	nTiles   = flag.Int("tiles", 256, "number of tiles")
	nSprites = flag.Int("sprites", 256, "number of sprites")
	seed     = flag.Int64("seed", 0, "random seed (0 picks one)")
	useDef   = flag.Bool("default", false, "add a Default chunk instead of a palette")
)

func newRand() *rand.Rand {
	s := *seed
	if s == 0 {
		var seedBytes [8]byte
		_, _ = crand.Read(seedBytes[:])
		s = int64(binary.LittleEndian.Uint64(seedBytes[:]))
	}
	return rand.New(rand.NewSource(s))
}

func randomBlocks(rng *rand.Rand, n int) []pixel.Block {
	blocks := make([]pixel.Block, n)
	for i := range blocks {
		for j := range blocks[i] {
			blocks[i][j] = uint8(rng.Intn(pixel.MaxIndex + 1))
		}
	}
	return blocks
}

func main() {
	flag.Parse()
	rng := newRand()

	cart := ticart.New()

	code := fmt.Sprintf("-- generated test cartridge\nfunction TIC() cls(%d) end\n", rng.Intn(16))
	cart.Replace(chunk.Chunk{Kind: chunk.Code, Payload: []byte(code)})

	mapData := make([]byte, 240)
	_, _ = rng.Read(mapData)
	cart.Replace(chunk.Chunk{Kind: chunk.Map, Payload: mapData})

	s := &ticart.Sheet{
		Palette: palette.Default(),
		Tiles:   randomBlocks(rng, *nTiles),
		Sprites: randomBlocks(rng, *nSprites),
	}
	if err := cart.Apply(s); err != nil {
		panic(err)
	}
	if *useDef {
		cart.Replace(chunk.Chunk{Kind: chunk.Default})
	}

	if err := cart.Save(*output); err != nil {
		fmt.Fprintf(os.Stderr, "gen-testdata: %s\n", err)
		os.Exit(1)
	}
}
