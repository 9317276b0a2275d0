// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/orbital/math32"
	"cogentcore.org/orbital/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, Satellite, cfg.Scene)
	assert.Equal(t, float32(10), cfg.Earth.Radius)
	assert.Equal(t, 200, cfg.Earth.Parallels)
	assert.Equal(t, 150, cfg.Earth.Meridians)
	assert.Equal(t, float32(2), cfg.Satellite.DishRadius)
	assert.Equal(t, float32(20), cfg.Orbit.Radius)
	assert.Equal(t, float32(30), cfg.Orbit.Speed)
	assert.Equal(t, math32.Vec3(25, 20, 25), cfg.Camera.Eye)
	assert.Equal(t, math32.Vec3(8, 5, -10), cfg.Room.Camera.Eye)
	assert.InDelta(t, 800.0/600.0, cfg.Preview.Aspect(), 1.0e-6)
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "orbital.toml")
	cfg := New()
	cfg.Scene = Room
	cfg.Orbit.Speed = 12
	cfg.Satellite.CubeLayout = shape.AtlasPacked
	require.NoError(t, cfg.Save(fn))

	got, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestOpenPartial(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "orbital.toml")
	data := "scene = 'room'\n[orbit]\nspeed = 45\n[satellite]\ncube_layout = 'atlas'\n"
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	cfg, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, Room, cfg.Scene)
	assert.Equal(t, float32(45), cfg.Orbit.Speed)
	assert.Equal(t, float32(20), cfg.Orbit.Radius)
	assert.Equal(t, shape.AtlasPacked, cfg.Satellite.CubeLayout)
}

func TestOpenInvalid(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("scene = 'moon'\n"), 0666))
	_, err := Load(fn)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("[orbit]\nspeed = -1\n"), 0666))
	_, err = Load(fn)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestClone(t *testing.T) {
	cfg := New()
	cl := cfg.Clone()
	assert.Equal(t, cfg, cl)
	cl.Preview.Colors["earth"] = "red"
	cl.Orbit.Radius = 5
	assert.Equal(t, "royalblue", cfg.Preview.Colors["earth"])
	assert.Equal(t, float32(20), cfg.Orbit.Radius)
}

func TestCamera(t *testing.T) {
	cfg := New()
	view := cfg.Camera.View()
	eye := view.MulVector3AsPoint(cfg.Camera.Eye)
	assert.InDelta(t, 0, eye.Length(), 1.0e-4)
	proj := cfg.Camera.Projection(1)
	assert.Equal(t, float32(-1), proj[11])
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "orbital.toml")
	require.NoError(t, New().Save(fn))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, fn)
	require.NoError(t, err)

	cfg := New()
	cfg.Orbit.Radius = 33
	require.NoError(t, cfg.Save(fn))

	// the file may be seen while it is still being written
	timeout := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case got := <-ch:
			require.NotNil(t, got)
			done = got.Orbit.Radius == 33
		case <-timeout:
			t.Fatal("no config reload after write")
		}
	}

	cancel()
	for range ch {
	}
}
