// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMesh struct {
	Name  string    `yaml:"name"`
	Index []uint16  `yaml:"index"`
	Pos   []float32 `yaml:"pos"`
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&testMesh{Name: "cube", Index: []uint16{0, 1, 2}}, &b))
	assert.Contains(t, b.String(), "name: cube")
	assert.Contains(t, b.String(), "- 2")
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mesh.yaml")
	m := testMesh{Name: "dish", Index: []uint16{0, 1, 2, 2, 1, 3}, Pos: []float32{0, 1, 0}}
	require.NoError(t, Save(&m, fn))
	var got testMesh
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, m, got)
}
