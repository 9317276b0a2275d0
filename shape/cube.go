// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"strings"

	"cogentcore.org/orbital/math32"
)

// CubeLayouts are the texture coordinate layouts of a [Cube].
type CubeLayouts int32

const (
	// FullTilePerFace maps the full 0..1 texture onto every face.
	FullTilePerFace CubeLayouts = iota

	// AtlasPacked maps each face onto its own cell of a texture
	// atlas that is 3 cells wide and 2 cells high.
	AtlasPacked

	CubeLayoutsN
)

var cubeLayoutNames = [...]string{"full-tile", "atlas"}

func (cl CubeLayouts) String() string {
	if cl < 0 || cl >= CubeLayoutsN {
		return fmt.Sprintf("CubeLayouts(%d)", int32(cl))
	}
	return cubeLayoutNames[cl]
}

// SetString sets the layout from its name, which is not case sensitive.
func (cl *CubeLayouts) SetString(s string) error {
	for i, nm := range cubeLayoutNames {
		if strings.EqualFold(nm, s) {
			*cl = CubeLayouts(i)
			return nil
		}
	}
	return fmt.Errorf("shape.CubeLayouts: %q is not a valid layout, must be one of %v", s, cubeLayoutNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (cl CubeLayouts) MarshalText() ([]byte, error) {
	return []byte(cl.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (cl *CubeLayouts) UnmarshalText(text []byte) error {
	return cl.SetString(string(text))
}

// CubeFaces is the number of faces of a cube, in the order
// front, back, left, right, top, bottom.
const CubeFaces = 6

// CubeVertices are the positions of the unit cube, 4 per face
// so that each face carries its own normal and texture coordinates.
var CubeVertices = [CubeFaces * 4 * 3]float32{
	// front
	1, 1, 1, -1, 1, 1, -1, -1, 1, 1, -1, 1,
	// back
	1, 1, -1, -1, 1, -1, -1, -1, -1, 1, -1, -1,
	// left
	-1, 1, 1, -1, 1, -1, -1, -1, -1, -1, -1, 1,
	// right
	1, 1, 1, 1, -1, 1, 1, -1, -1, 1, 1, -1,
	// top
	1, 1, 1, 1, 1, -1, -1, 1, -1, -1, 1, 1,
	// bottom
	1, -1, 1, 1, -1, -1, -1, -1, -1, -1, -1, 1,
}

// CubeIndices are the two counter-clockwise triangles of each cube face.
var CubeIndices = [CubeFaces * 6]uint16{
	0, 1, 2, 0, 2, 3, // front
	4, 6, 5, 4, 7, 6, // back
	8, 9, 10, 8, 10, 11, // left
	12, 13, 14, 12, 14, 15, // right
	16, 17, 18, 16, 18, 19, // top
	20, 22, 21, 20, 23, 22, // bottom
}

// CubeNormals are the outward normals of each cube face.
var CubeNormals = [CubeFaces]math32.Vector3{
	{X: 0, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: -1},
	{X: -1, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
}

// CubeTexCoordsFull are the [FullTilePerFace] texture coordinates.
var CubeTexCoordsFull = [CubeFaces * 4 * 2]float32{
	0, 0, 1, 0, 1, 1, 0, 1, // front
	0, 1, 1, 1, 1, 0, 0, 0, // back
	0, 1, 1, 1, 1, 0, 0, 0, // left
	0, 1, 1, 1, 1, 0, 0, 0, // right
	0, 1, 1, 1, 1, 0, 0, 0, // top
	0, 1, 1, 1, 1, 0, 0, 0, // bottom
}

// CubeTexCoordsAtlas are the [AtlasPacked] texture coordinates:
// front, right on the left column, back, top in the middle
// and left, bottom on the right.
var CubeTexCoordsAtlas = [CubeFaces * 4 * 2]float32{
	0, .5, 1. / 3, .5, 1. / 3, 1, 0, 1, // front
	1. / 3, 1, 2. / 3, 1, 2. / 3, .5, 1. / 3, .5, // back
	2. / 3, 1, 1, 1, 1, .5, 2. / 3, .5, // left
	0, .5, 1. / 3, .5, 1. / 3, 0, 0, 0, // right
	1. / 3, .5, 2. / 3, .5, 2. / 3, 0, 1. / 3, 0, // top
	2. / 3, .5, 1, .5, 1, 0, 2. / 3, 0, // bottom
}

// Cube is the fixed unit cube spanning -1..1 on each axis,
// with 24 vertices and 36 indices.
type Cube struct {
	ShapeBase

	// texture coordinate layout
	Layout CubeLayouts
}

// NewCube returns a Cube shape with the given texture coordinate layout.
func NewCube(layout CubeLayouts) *Cube {
	return &Cube{Layout: layout}
}

func (cb *Cube) Validate() error {
	if cb.Layout < 0 || cb.Layout >= CubeLayoutsN {
		return fmt.Errorf("shape.Cube: layout %v: %w", cb.Layout, ErrInvalidParameter)
	}
	return nil
}

func (cb *Cube) MeshSize() (numVertex, numIndex int) {
	return len(CubeVertices) / 3, len(CubeIndices)
}

// TexCoords returns the texture coordinate table for the layout.
func (cb *Cube) TexCoords() []float32 {
	if cb.Layout == AtlasPacked {
		return CubeTexCoordsAtlas[:]
	}
	return CubeTexCoordsFull[:]
}

// Set sets points in given allocated arrays
func (cb *Cube) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU16) {
	vidx := cb.VertexOffset * 3
	tidx := cb.VertexOffset * 2
	nv, _ := cb.MeshSize()
	tc := cb.TexCoords()
	bb := math32.B3Empty()
	var pt math32.Vector3
	for vi := 0; vi < nv; vi++ {
		pt.FromSlice(CubeVertices[:], vi*3)
		pt.SetAdd(cb.Pos)
		vertex.SetVector3(vidx+vi*3, pt)
		normal.SetVector3(vidx+vi*3, CubeNormals[vi/4])
		texcoord.Set(tidx+vi*2, tc[vi*2], tc[vi*2+1])
		bb.ExpandByPoint(pt)
	}
	vOff := uint16(cb.VertexOffset)
	for i, ix := range CubeIndices {
		index[cb.IndexOffset+i] = vOff + ix
	}
	cb.CBBox = bb
}
