// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/orbital/math32"
)

// Plane is a square floor in the y = 0 plane, facing +Y,
// drawn as two triangles.
type Plane struct {
	ShapeBase

	// half of the side length of the square
	HalfSize float32

	// number of times the texture repeats across the plane,
	// relying on repeat wrapping of the texture sampler
	Repeat float32
}

// NewPlane returns a Plane shape with the given half size
// and texture repeat count.
func NewPlane(halfSize, repeat float32) *Plane {
	pl := &Plane{}
	pl.Defaults()
	pl.HalfSize = halfSize
	pl.Repeat = repeat
	return pl
}

func (pl *Plane) Defaults() {
	pl.HalfSize = 50
	pl.Repeat = 20
}

func (pl *Plane) Validate() error {
	if pl.HalfSize <= 0 {
		return fmt.Errorf("shape.Plane: half size = %g must be > 0: %w", pl.HalfSize, ErrInvalidParameter)
	}
	return nil
}

func (pl *Plane) MeshSize() (numVertex, numIndex int) {
	return 4, 6
}

// Set sets points in given allocated arrays
func (pl *Plane) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU16) {
	h := pl.HalfSize
	r := pl.Repeat
	corners := [4]math32.Vector3{{X: h, Y: 0, Z: h}, {X: h, Y: 0, Z: -h}, {X: -h, Y: 0, Z: -h}, {X: -h, Y: 0, Z: h}}
	uvs := [4]math32.Vector2{{X: r, Y: 0}, {X: r, Y: r}, {X: 0, Y: r}, {X: 0, Y: 0}}
	vidx := pl.VertexOffset * 3
	tidx := pl.VertexOffset * 2
	bb := math32.B3Empty()
	for i, c := range corners {
		c.SetAdd(pl.Pos)
		vertex.SetVector3(vidx+i*3, c)
		normal.SetVector3(vidx+i*3, math32.Vec3(0, 1, 0))
		texcoord.SetVector2(tidx+i*2, uvs[i])
		bb.ExpandByPoint(c)
	}
	vOff := uint16(pl.VertexOffset)
	index.Set(pl.IndexOffset, vOff, vOff+1, vOff+2, vOff, vOff+2, vOff+3)
	pl.CBBox = bb
}
