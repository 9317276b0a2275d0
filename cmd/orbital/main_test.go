// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/orbital/base/iox/imagex"
	"cogentcore.org/orbital/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-q"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestMeshCmd(t *testing.T) {
	out, err := run(t, "mesh", "cube")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "o cube\n"))
	assert.Equal(t, 24, strings.Count(out, "\nv "))
	assert.Equal(t, 12, strings.Count(out, "\nf "))

	out, err = run(t, "mesh", "sphere", "-p", "4", "-m", "2", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "index_format: uint8")

	fn := filepath.Join(t.TempDir(), "dish.toml")
	_, err = run(t, "mesh", "dish", "--radius", "2", "-o", fn)
	require.NoError(t, err)

	_, err = run(t, "mesh", "torus")
	assert.Error(t, err)
	_, err = run(t, "mesh", "sphere", "-p", "0")
	assert.Error(t, err)
	_, err = run(t, "mesh", "cube", "--layout", "cross")
	assert.Error(t, err)
}

func smallConfigFile(t *testing.T) string {
	t.Helper()
	cfg := config.New()
	cfg.Earth.Parallels = 20
	cfg.Earth.Meridians = 10
	cfg.Preview.Width = 40
	cfg.Preview.Height = 30
	fn := filepath.Join(t.TempDir(), "orbital.toml")
	require.NoError(t, cfg.Save(fn))
	return fn
}

func TestTraceCmd(t *testing.T) {
	out, err := run(t, "trace", "-c", smallConfigFile(t), "-t", "1s")
	require.NoError(t, err)
	assert.Contains(t, out, "satellite scene at 1s")
	assert.Equal(t, 8, strings.Count(out, " at ("))
	assert.Contains(t, out, "dish")

	_, err = run(t, "trace", "-c", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRenderCmd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "frame.png")
	_, err := run(t, "render", "-c", smallConfigFile(t), "-o", out, "-n", "2")
	require.NoError(t, err)
	for _, fn := range []string{"frame_000.png", "frame_001.png"} {
		img, f, err := imagex.Open(filepath.Join(dir, fn))
		require.NoError(t, err)
		assert.Equal(t, imagex.PNG, f)
		assert.Equal(t, 40, img.Bounds().Dx())
		assert.Equal(t, 30, img.Bounds().Dy())
	}
}

func TestConfigCmd(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "written.toml")
	_, err := run(t, "config", "-o", fn)
	require.NoError(t, err)
	cfg, err := config.Load(fn)
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)

	_, err = run(t, "watch")
	assert.Error(t, err)
}
