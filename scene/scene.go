// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene builds the meshes of a scene and draws them each frame
// through a [Context], placing every part with a transform stack.
package scene

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/orbital/base/errors"
	"cogentcore.org/orbital/base/ordmap"
	"cogentcore.org/orbital/config"
	"cogentcore.org/orbital/math32"
	"cogentcore.org/orbital/shape"
	"cogentcore.org/orbital/transform"
)

var (
	// ErrUnknownMesh is returned when drawing a mesh that was never set.
	ErrUnknownMesh = errors.New("scene: unknown mesh")

	// ErrUnbalanced is returned when a frame leaves transforms
	// saved on the stack.
	ErrUnbalanced = errors.New("scene: unbalanced transform stack")
)

// Names of the meshes of the scenes.
const (
	MeshEarth = "earth"
	MeshDish  = "dish"
	MeshCube  = "cube"
	MeshFloor = "floor"
)

// Scene is one of the configured scenes, with its meshes,
// camera, animation state and transform stack.
type Scene struct {

	// configuration the scene was made from
	Config *config.Config

	// meshes by name, in the order they were made
	Meshes *ordmap.Map[string, *shape.Mesh]

	// projection matrix
	Projection math32.Matrix4

	// view matrix, which starts each frame
	View math32.Matrix4

	// transform stack used while drawing
	Stack *transform.Stack

	// animation clock
	Clock Clock

	// satellite orbit, which can be changed while running
	Orbit Orbit
}

// New returns a new scene for the given config.
// Call [Scene.Init] before drawing it.
func New(cfg *config.Config) *Scene {
	sc := &Scene{
		Config: cfg,
		Meshes: ordmap.New[string, *shape.Mesh](),
		Stack:  transform.NewStack(),
	}
	sc.Reset()
	return sc
}

// Camera returns the camera of the configured scene.
func (sc *Scene) Camera() *config.CameraConfig {
	if sc.Config.Scene == config.Room {
		return &sc.Config.Room.Camera
	}
	return &sc.Config.Camera
}

// Reset restores the view, orbit and clock to their initial state.
func (sc *Scene) Reset() {
	sc.View = sc.Camera().View()
	sc.Orbit = NewOrbit(sc.Config)
	sc.Clock.Reset()
}

// Shapes returns the shapes of the meshes of the configured scene, by name.
func (sc *Scene) Shapes() *ordmap.Map[string, shape.Shape] {
	cfg := sc.Config
	shapes := ordmap.New[string, shape.Shape]()
	switch cfg.Scene {
	case config.Satellite:
		shapes.Add(MeshEarth, shape.NewSphere(1, cfg.Earth.Parallels, cfg.Earth.Meridians))
		shapes.Add(MeshDish, shape.NewDish(cfg.Satellite.DishRadius, cfg.Satellite.DishParallels, cfg.Satellite.DishMeridians))
		shapes.Add(MeshCube, shape.NewCube(cfg.Satellite.CubeLayout))
	case config.Room:
		shapes.Add(MeshFloor, shape.NewPlane(cfg.Room.FloorSize, cfg.Room.FloorRepeat))
		shapes.Add(MeshCube, shape.NewCube(shape.FullTilePerFace))
	}
	return shapes
}

// MakeMeshes generates the meshes of the configured scene.
func (sc *Scene) MakeMeshes() error {
	sc.Meshes.Reset()
	shapes := sc.Shapes()
	for i, nm := range shapes.Keys() {
		ms, err := shape.NewMesh(shapes.ValueByIndex(i))
		if err != nil {
			return fmt.Errorf("scene: making mesh %q: %w", nm, err)
		}
		sc.Meshes.Add(nm, ms)
		slog.Debug("made mesh", "name", nm, "vertices", ms.NumVertex(), "indices", ms.NumIndex(), "format", ms.IndexFormat)
	}
	return nil
}

// Init makes the meshes, uploads them to the given context,
// and sets the projection for the given aspect ratio.
func (sc *Scene) Init(ctx Context, aspect float32) error {
	if err := sc.MakeMeshes(); err != nil {
		return err
	}
	for i, nm := range sc.Meshes.Keys() {
		if err := ctx.SetMesh(nm, sc.Meshes.ValueByIndex(i)); err != nil {
			return err
		}
	}
	sc.SetAspect(ctx, aspect)
	return nil
}

// SetAspect updates the projection for a new aspect ratio.
func (sc *Scene) SetAspect(ctx Context, aspect float32) {
	sc.Projection = sc.Camera().Projection(aspect)
	ctx.SetProjection(&sc.Projection)
}

// Dispose releases the meshes from the given context.
func (sc *Scene) Dispose(ctx Context) {
	for _, nm := range sc.Meshes.Keys() {
		ctx.DeleteMesh(nm)
	}
	sc.Meshes.Reset()
}

// Update advances the animation to the given time.
func (sc *Scene) Update(now time.Duration) {
	sc.Clock.Tick(now)
}

// Render draws one frame through the given context.
func (sc *Scene) Render(ctx Context) error {
	st := sc.Stack
	st.Reset()
	st.Current = sc.View
	var err error
	switch sc.Config.Scene {
	case config.Satellite:
		err = sc.renderSatellite(ctx)
	case config.Room:
		err = sc.renderRoom(ctx)
	}
	if err != nil {
		return err
	}
	if n := st.Len(); n != 0 {
		return fmt.Errorf("%w: %d transforms left saved", ErrUnbalanced, n)
	}
	sc.Clock.Frame()
	return nil
}

// draw draws the named mesh with the current transform.
func (sc *Scene) draw(ctx Context, mesh, texture string) error {
	if _, ok := sc.Meshes.ValueByKeyTry(mesh); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMesh, mesh)
	}
	return ctx.DrawMesh(mesh, &sc.Stack.Current, texture)
}

// drawPart draws the given part under the current transform,
// leaving the current transform unchanged.
func (sc *Scene) drawPart(ctx Context, pt *Part) error {
	return sc.Stack.Scoped(func() error {
		pt.Apply(&sc.Stack.Current)
		return sc.draw(ctx, pt.Mesh, pt.Texture)
	})
}

// drawParts draws all of the given parts, stopping at the first error.
func (sc *Scene) drawParts(ctx Context, parts []Part) error {
	for i := range parts {
		if err := sc.drawPart(ctx, &parts[i]); err != nil {
			return fmt.Errorf("scene: drawing %s: %w", parts[i].Name, err)
		}
	}
	return nil
}

// TranslateView moves the view by the given amounts.
func (sc *Scene) TranslateView(x, y, z float32) {
	sc.View.Translate(x, y, z)
}

// RotateView turns the view by the given angles in radians
// about the X, Y and Z axes, in that order.
func (sc *Scene) RotateView(x, y, z float32) {
	sc.View.RotateX(x)
	sc.View.RotateY(y)
	sc.View.RotateZ(z)
}
