// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpowers/ticart"
	"github.com/bpowers/ticart/internal/chunk"
	"github.com/bpowers/ticart/internal/pixel"
)

type testEnv struct {
	dir    string
	config string
	cart   string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		dir:    dir,
		config: filepath.Join(dir, "config.toml"),
		cart:   filepath.Join(dir, "game.tic"),
	}
	require.NoError(t, os.WriteFile(env.config, []byte("color = \"never\"\nexport_scale = 2\n"), 0o644))

	data, err := chunk.Encode([]chunk.Chunk{
		{Kind: chunk.Code, Payload: []byte("-- hello")},
		{Kind: chunk.Tiles, Payload: bytes.Repeat([]byte{0x21}, pixel.BlockBytes)},
		{Kind: chunk.Default},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(env.cart, data, 0o644))
	return env
}

func run(t *testing.T, env testEnv, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", env.config}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestChunksCmd(t *testing.T) {
	env := newTestEnv(t)
	out, err := run(t, env, "chunks", env.cart)
	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "Code")
	assert.Contains(t, out, "Tiles")
	assert.Contains(t, out, "Default")
	// the default directive added a palette
	assert.Contains(t, out, "Palette")
	assert.Contains(t, out, "48 B")
}

func TestPaletteCmd(t *testing.T) {
	env := newTestEnv(t)
	out, err := run(t, env, "palette", env.cart)
	require.NoError(t, err)
	assert.Contains(t, out, " 0  #1a1c2c")
	assert.Contains(t, out, "15  #333c57")
}

func TestShowCmd(t *testing.T) {
	env := newTestEnv(t)
	out, err := run(t, env, "show", env.cart, "--block", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "1 2 1 2 1 2 1 2 \n")

	_, err = run(t, env, "show", env.cart, "--kind", "map")
	assert.Error(t, err)
}

func TestPaintCmd(t *testing.T) {
	env := newTestEnv(t)
	out := filepath.Join(env.dir, "painted.tic")
	_, err := run(t, env, "paint", env.cart, "--kind", "sprites", "--block", "1", "--x", "2", "--y", "3", "--index", "9", "-o", out)
	require.NoError(t, err)

	cart, err := ticart.Open(out)
	require.NoError(t, err)
	s, err := cart.Sheet()
	require.NoError(t, err)
	require.Len(t, s.Sprites, 2)
	assert.Equal(t, uint8(9), s.Sprites[1].At(2, 3))

	_, err = run(t, env, "paint", env.cart, "--x", "8")
	assert.Error(t, err)
}

func TestExportImportCmd(t *testing.T) {
	env := newTestEnv(t)
	png := filepath.Join(env.dir, "tiles.png")
	_, err := run(t, env, "export", env.cart, png)
	require.NoError(t, err)

	out := filepath.Join(env.dir, "imported.tic")
	_, err = run(t, env, "import", env.cart, png, "-o", out)
	require.NoError(t, err)

	before, err := ticart.Open(env.cart)
	require.NoError(t, err)
	after, err := ticart.Open(out)
	require.NoError(t, err)
	b, err := before.Sheet()
	require.NoError(t, err)
	a, err := after.Sheet()
	require.NoError(t, err)
	assert.Equal(t, b.Tiles, a.Tiles)
}

func TestResaveCmd(t *testing.T) {
	env := newTestEnv(t)
	out, err := run(t, env, "resave", env.cart)
	require.NoError(t, err)
	// the default directive adds a palette chunk
	assert.Contains(t, out, "changed")
}

func TestLsCmd(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.Mkdir(filepath.Join(env.dir, "more"), 0o755))
	out, err := run(t, env, "ls", env.dir)
	require.NoError(t, err)
	assert.Contains(t, out, "more/")
	assert.Contains(t, out, "game.tic")
	assert.NotContains(t, out, "config.toml")
}

func TestMissingCartridge(t *testing.T) {
	env := newTestEnv(t)
	_, err := run(t, env, "chunks", filepath.Join(env.dir, "nope.tic"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ticart.ErrSourceNotFound))
}
