// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLens struct {
	Name string
	Fov  float32
	Pos  []float32
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "wide.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Name = \"wide\"\nFov = 90.0\nPos = [1.0, 2.0, 3.0]\n"), 0666))
	var l testLens
	require.NoError(t, OpenFiles(&l, fn))
	assert.Equal(t, testLens{Name: "wide", Fov: 90, Pos: []float32{1, 2, 3}}, l)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("Name = "), 0666))
	assert.Error(t, OpenFiles(&l, bad))
	assert.Error(t, OpenFiles(&l, filepath.Join(dir, "missing.toml")))
}

func TestSaveOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.toml"), filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&testLens{Name: "a", Fov: 45, Pos: []float32{0, 0, 3}}, a))
	require.NoError(t, Save(&struct{ Fov float32 }{Fov: 60}, b))

	var l testLens
	require.NoError(t, OpenFiles(&l, a, b))
	assert.Equal(t, testLens{Name: "a", Fov: 60, Pos: []float32{0, 0, 3}}, l)
}

func TestSaveError(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing", "a.toml")
	assert.Error(t, Save(&testLens{Name: "a"}, fn))
	_, err := os.Stat(fn)
	assert.True(t, os.IsNotExist(err))
}
