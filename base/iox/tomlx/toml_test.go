// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOrbit struct {
	Radius float32
	Speed  float32
	Name   string
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "orbit.toml")
	o := testOrbit{Radius: 20, Speed: 30, Name: "leo"}
	require.NoError(t, Save(&o, fn))

	var got testOrbit
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, o, got)
}

func TestReadBytes(t *testing.T) {
	var o testOrbit
	require.NoError(t, ReadBytes(&o, []byte("Radius = 12.5\nName = \"geo\"\n")))
	assert.Equal(t, float32(12.5), o.Radius)
	assert.Equal(t, "geo", o.Name)

	assert.Error(t, ReadBytes(&o, []byte("Radius = [")))

	b, err := WriteBytes(&o)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Radius = 12.5")
}

func TestOpenMissing(t *testing.T) {
	var o testOrbit
	assert.Error(t, Open(&o, filepath.Join(t.TempDir(), "missing.toml")))
}
