// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"
	"time"

	"cogentcore.org/orbital/base/tolassert"
	"cogentcore.org/orbital/config"
	"cogentcore.org/orbital/math32"
	"cogentcore.org/orbital/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMatrix(t *testing.T, want, got math32.Matrix4) {
	t.Helper()
	tolassert.EqualTolSlice(t, want[:], got[:], 1.0e-4)
}

func newSatellite(t *testing.T) (*Scene, *Recorder) {
	t.Helper()
	cfg := config.New()
	sc := New(cfg)
	rc := NewRecorder()
	require.NoError(t, sc.Init(rc, 4.0/3.0))
	return sc, rc
}

func TestSatelliteInit(t *testing.T) {
	sc, rc := newSatellite(t)
	assert.Equal(t, []string{MeshEarth, MeshDish, MeshCube}, rc.Meshes.Keys())
	assert.Equal(t, 201*151, sc.Meshes.ValueByKey(MeshEarth).NumVertex())
	assert.Equal(t, 51*26, sc.Meshes.ValueByKey(MeshDish).NumVertex())
	assert.Equal(t, 24, sc.Meshes.ValueByKey(MeshCube).NumVertex())

	var proj math32.Matrix4
	proj.SetPerspective(60, 4.0/3.0, 1, 100)
	assertMatrix(t, proj, rc.Projection)

	sc.Dispose(rc)
	assert.Equal(t, 0, rc.Meshes.Len())
	assert.Equal(t, 0, sc.Meshes.Len())
}

func TestSatelliteRender(t *testing.T) {
	sc, rc := newSatellite(t)
	sc.Update(0)
	require.NoError(t, sc.Render(rc))
	require.Len(t, rc.Draws, 8)
	assert.Equal(t, 0, sc.Stack.Len())

	meshes := make([]string, len(rc.Draws))
	textures := make([]string, len(rc.Draws))
	for i, dr := range rc.Draws {
		meshes[i] = dr.Mesh
		textures[i] = dr.Texture
	}
	assert.Equal(t, []string{"earth", "cube", "cube", "cube", "cube", "cube", "cube", "dish"}, meshes)
	assert.Equal(t, []string{"earth", "satellite", "gold", "gold", "solar", "solar", "gold", "gold"}, textures)

	view := sc.View
	assertMatrix(t, view.Mul(math32.Scale3D(10, 10, 10)), rc.Draws[0].ModelView)

	sat := view.Mul(math32.Translate3D(20, 0, 0)).Mul(math32.Scale3D(0.5, 0.5, 0.5))
	assertMatrix(t, sat, rc.Draws[1].ModelView)
	assertMatrix(t, sat.Mul(math32.Translate3D(0, 0, 1.25)).Mul(math32.Scale3D(0.1, 0.1, 0.25)), rc.Draws[2].ModelView)
	assertMatrix(t, sat.Mul(math32.Translate3D(0, 0, -2.5)).Mul(math32.Scale3D(0.5, 0, 1)), rc.Draws[5].ModelView)
	assertMatrix(t, sat.Mul(math32.Translate3D(-3.4, 0, 0)).Mul(math32.RotateZ3D(3*math32.Pi/2)), rc.Draws[7].ModelView)

	// a second frame starts from the same state
	first := append([]Draw{}, rc.Draws...)
	rc.Reset()
	require.NoError(t, sc.Render(rc))
	assert.Equal(t, first, rc.Draws)
}

func TestSatelliteMoves(t *testing.T) {
	sc, rc := newSatellite(t)
	sc.Update(10 * time.Second)
	period := sc.Orbit.SatellitePeriod()
	sc.Update(10*time.Second + time.Duration(period/4*float32(time.Millisecond)))
	require.NoError(t, sc.Render(rc))

	// a quarter orbit later the satellite is at -Z
	inv, err := sc.View.Inverse()
	require.NoError(t, err)
	world := inv.Mul(rc.Draws[1].ModelView)
	tolassert.EqualTol(t, 0, world[12], 1.0e-2)
	tolassert.EqualTol(t, -20, world[14], 1.0e-2)
}

func TestRoomRender(t *testing.T) {
	cfg := config.New()
	cfg.Scene = config.Room
	sc := New(cfg)
	rc := NewRecorder()
	require.NoError(t, sc.Init(rc, 1))
	assert.Equal(t, []string{MeshFloor, MeshCube}, rc.Meshes.Keys())

	sc.Update(0)
	require.NoError(t, sc.Render(rc))
	require.Len(t, rc.Draws, 7)
	assert.Equal(t, MeshFloor, rc.Draws[0].Mesh)
	assert.Equal(t, "ground", rc.Draws[0].Texture)
	assertMatrix(t, sc.View, rc.Draws[0].ModelView)
	for _, dr := range rc.Draws[1:6] {
		assert.Equal(t, "wood", dr.Texture)
	}
	assertMatrix(t, sc.View.Mul(math32.Translate3D(0, 2.1, 0)).Mul(math32.Scale3D(2, 0.1, 2)), rc.Draws[1].ModelView)
	assertMatrix(t, sc.View.Mul(math32.Translate3D(-1.9, 1, -1.9)).Mul(math32.Scale3D(0.1, 1, 0.1)), rc.Draws[2].ModelView)
	assertMatrix(t, sc.View.Mul(math32.Translate3D(0, 2.7, 0)).Mul(math32.Scale3D(0.5, 0.5, 0.5)), rc.Draws[6].ModelView)
	assert.Equal(t, "box", rc.Draws[6].Texture)

	var eye math32.Matrix4
	eye.SetLookAt(math32.Vec3(8, 5, -10), math32.Vector3{}, math32.Vec3(0, 1, 0))
	assertMatrix(t, eye, sc.View)
}

func TestRenderErrors(t *testing.T) {
	sc := New(config.New())
	rc := NewRecorder()
	err := sc.Render(rc)
	assert.ErrorIs(t, err, ErrUnknownMesh)
	assert.Equal(t, 0, sc.Stack.Len())

	sc, rc = newSatellite(t)
	err = sc.Render(&pushContext{Recorder: rc, stack: sc.Stack})
	assert.ErrorIs(t, err, ErrUnbalanced)
}

// pushContext saves an extra transform on every draw.
type pushContext struct {
	*Recorder
	stack *transform.Stack
}

func (pc *pushContext) DrawMesh(name string, modelView *math32.Matrix4, texture string) error {
	pc.stack.Push()
	return pc.Recorder.DrawMesh(name, modelView, texture)
}

func TestViewControls(t *testing.T) {
	sc, rc := newSatellite(t)
	view := sc.View
	sc.TranslateView(1, 0, 0)
	sc.RotateView(0, 0.5, 0)
	assertMatrix(t, view.Mul(math32.Translate3D(1, 0, 0)).Mul(math32.RotateY3D(0.5)), sc.View)

	require.NoError(t, sc.Render(rc))
	assertMatrix(t, sc.View.Mul(math32.Scale3D(10, 10, 10)), rc.Draws[0].ModelView)

	sc.Reset()
	assertMatrix(t, view, sc.View)
}

func TestRecorderIndexBytes(t *testing.T) {
	sc, rc := newSatellite(t)
	assert.Equal(t, 2*6*200*150, rc.IndexBytes[MeshEarth])
	assert.Equal(t, 2*6*50*25, rc.IndexBytes[MeshDish])
	assert.Equal(t, 36, rc.IndexBytes[MeshCube])
	sc.Dispose(rc)
	assert.Empty(t, rc.IndexBytes)
}

func TestRecorderString(t *testing.T) {
	sc, rc := newSatellite(t)
	require.NoError(t, sc.Render(rc))
	s := rc.String()
	assert.Contains(t, s, " 0 earth  earth")
	assert.Contains(t, s, " 7 dish   gold")
}
