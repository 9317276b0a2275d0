// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/orbital/math32"
)

// Group is a group of shapes written into one shared set of arrays,
// each at the vertex and index offsets following the previous one.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Shape
}

// NewGroup returns a Group of the given shapes.
func NewGroup(shapes ...Shape) *Group {
	return &Group{Shapes: shapes}
}

// MeshSize returns number of vertex, index points in this shape element.
func (gp *Group) MeshSize() (numVertex, numIndex int) {
	for _, sh := range gp.Shapes {
		nv, ni := sh.MeshSize()
		numVertex += nv
		numIndex += ni
	}
	return
}

func (gp *Group) Validate() error {
	if len(gp.Shapes) == 0 {
		return fmt.Errorf("shape.Group: no shapes: %w", ErrInvalidParameter)
	}
	for i, sh := range gp.Shapes {
		if err := sh.Validate(); err != nil {
			return fmt.Errorf("shape.Group: shape %d: %w", i, err)
		}
	}
	nv, _ := gp.MeshSize()
	return CheckCapacity(gp.VertexOffset + nv)
}

// Set sets points in given allocated arrays, also updates offsets
func (gp *Group) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU16) {
	vo := gp.VertexOffset
	io := gp.IndexOffset
	gp.CBBox.SetEmpty()
	for _, sh := range gp.Shapes {
		sh.SetOffsets(vo, io)
		sh.Set(vertex, normal, texcoord, index)
		gp.CBBox.ExpandByBox(sh.BBox())
		nv, ni := sh.MeshSize()
		vo += nv
		io += ni
	}
}
