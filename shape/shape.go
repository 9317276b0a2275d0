// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides mesh shape generators for the sphere, dish,
// cube and floor meshes of a scene, writing flat vertex, normal,
// texture coordinate and index arrays ready for upload to a GPU.
// Shapes write into preallocated arrays at vertex and index offsets,
// so that several shapes can share one set of buffers, see [Group].
package shape

import (
	"errors"
	"fmt"

	"cogentcore.org/orbital/math32"
)

var (
	// ErrInvalidParameter is returned when a shape parameter
	// such as a subdivision count is out of range.
	ErrInvalidParameter = errors.New("invalid shape parameter")

	// ErrCapacity is returned when a shape has more vertices
	// than can be addressed by a 16-bit index.
	ErrCapacity = errors.New("shape exceeds 16-bit index capacity")
)

// MaxIndex is the largest vertex index that can be used in a mesh.
const MaxIndex = 65535

// Shape is an interface for all shape-constructing elements
type Shape interface {
	// MeshSize returns number of vertex, index points in this shape element.
	MeshSize() (numVertex, numIndex int)

	// Validate returns an error wrapping [ErrInvalidParameter] or
	// [ErrCapacity] if the shape cannot be generated.
	Validate() error

	// Offsets returns starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	Offsets() (vertexOffset, indexOffset int)

	// SetOffsets sets starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	SetOffsets(vertexOffset, indexOffset int)

	// Set sets points in given allocated arrays.
	Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU16)

	// BBox returns the bounding box for the shape, typically centered around 0.
	// This is only valid after Set has been called.
	BBox() math32.Box3
}

// ShapeBase is the base shape element
type ShapeBase struct {

	// vertex offset, in points
	VertexOffset int

	// index offset, in points
	IndexOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// Offsets returns starting offset for vertices, indexes in full shape array,
// in terms of points, not floats
func (sb *ShapeBase) Offsets() (vertexOffset, indexOffset int) {
	return sb.VertexOffset, sb.IndexOffset
}

// SetOffsets sets starting offsets for vertices, indexes in full shape array
func (sb *ShapeBase) SetOffsets(vertexOffset, indexOffset int) {
	sb.VertexOffset, sb.IndexOffset = vertexOffset, indexOffset
}

// BBox returns the bounding box for the shape, typically centered around 0
// This is only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// CheckCapacity returns an error wrapping [ErrCapacity] if a mesh
// with the given number of vertices cannot be indexed with 16 bits.
func CheckCapacity(numVertex int) error {
	if numVertex-1 > MaxIndex {
		return fmt.Errorf("shape: %d vertices, max index %d > %d: %w", numVertex, numVertex-1, MaxIndex, ErrCapacity)
	}
	return nil
}

// BBoxFromVertices returns the bounding box updated from the range of vertex points
func BBoxFromVertices(vertex math32.ArrayF32, vertexOffset int, numVertex int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vertexOffset * 3
	var vtx math32.Vector3
	for vi := 0; vi < numVertex; vi++ {
		vtx.FromSlice(vertex, vidx+vi*3)
		bb.ExpandByPoint(vtx)
	}
	return bb
}
