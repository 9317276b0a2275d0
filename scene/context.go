// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strings"

	"cogentcore.org/orbital/base/ordmap"
	"cogentcore.org/orbital/math32"
	"cogentcore.org/orbital/shape"
)

// Context is a rendering context that meshes are uploaded to
// and drawn with, such as a GPU device or a software renderer.
type Context interface {

	// SetMesh uploads the arrays of the given mesh under the given name,
	// replacing any mesh previously set with that name.
	SetMesh(name string, ms *shape.Mesh) error

	// DeleteMesh releases the mesh with the given name.
	DeleteMesh(name string)

	// SetProjection sets the projection matrix used by subsequent draws.
	SetProjection(proj *math32.Matrix4)

	// DrawMesh draws the triangles of the named mesh transformed
	// by the given model-view matrix, with the given texture.
	DrawMesh(name string, modelView *math32.Matrix4, texture string) error
}

// Draw is one draw call recorded by a [Recorder].
type Draw struct {

	// name of the mesh
	Mesh string

	// texture name
	Texture string

	// model-view matrix
	ModelView math32.Matrix4
}

// Position returns the position of the local origin
// of the draw in view coordinates.
func (dr *Draw) Position() math32.Vector3 {
	return math32.Vec3(dr.ModelView[12], dr.ModelView[13], dr.ModelView[14])
}

func (dr Draw) String() string {
	return fmt.Sprintf("%-6s %-10s at %v", dr.Mesh, dr.Texture, dr.Position())
}

// Recorder is a [Context] that keeps the meshes it is given
// and records the draw calls made with it, for tests and
// for tracing the draws of a frame.
type Recorder struct {

	// meshes that have been set, in order
	Meshes *ordmap.Map[string, *shape.Mesh]

	// size in bytes of the index data uploaded for each mesh,
	// in the index format of that mesh
	IndexBytes map[string]int

	// current projection matrix
	Projection math32.Matrix4

	// draw calls since the last Reset
	Draws []Draw
}

// NewRecorder returns a new empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Meshes: ordmap.New[string, *shape.Mesh](), IndexBytes: map[string]int{}, Projection: math32.Identity4()}
}

func (rc *Recorder) SetMesh(name string, ms *shape.Mesh) error {
	if ms == nil {
		return fmt.Errorf("scene.Recorder: nil mesh %q", name)
	}
	rc.Meshes.Add(name, ms)
	n := 2 * len(ms.Index)
	if idx := ms.Index8(); idx != nil {
		n = len(idx)
	}
	rc.IndexBytes[name] = n
	return nil
}

func (rc *Recorder) DeleteMesh(name string) {
	rc.Meshes.DeleteKey(name)
	delete(rc.IndexBytes, name)
}

func (rc *Recorder) SetProjection(proj *math32.Matrix4) {
	rc.Projection = *proj
}

func (rc *Recorder) DrawMesh(name string, modelView *math32.Matrix4, texture string) error {
	if _, ok := rc.Meshes.ValueByKeyTry(name); !ok {
		return fmt.Errorf("scene.Recorder: mesh %q: %w", name, ErrUnknownMesh)
	}
	rc.Draws = append(rc.Draws, Draw{Mesh: name, Texture: texture, ModelView: *modelView})
	return nil
}

// Reset clears the recorded draws.
func (rc *Recorder) Reset() {
	rc.Draws = rc.Draws[:0]
}

// String returns the recorded draws, one per line.
func (rc *Recorder) String() string {
	var b strings.Builder
	for i, dr := range rc.Draws {
		fmt.Fprintf(&b, "%2d %v\n", i, dr)
	}
	return b.String()
}
