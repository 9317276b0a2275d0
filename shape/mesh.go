// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"strings"

	"cogentcore.org/orbital/base/errors"
	"cogentcore.org/orbital/base/slicesx"
	"cogentcore.org/orbital/math32"
	"github.com/jinzhu/copier"
)

// IndexFormats are the unsigned integer widths of index buffers.
type IndexFormats int32

const (
	// Uint8 indexes up to 256 vertices.
	Uint8 IndexFormats = iota

	// Uint16 indexes up to 65536 vertices.
	Uint16
)

func (f IndexFormats) String() string {
	switch f {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	}
	return fmt.Sprintf("IndexFormats(%d)", int32(f))
}

// MarshalText implements [encoding.TextMarshaler].
func (f IndexFormats) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *IndexFormats) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "uint8":
		*f = Uint8
	case "uint16":
		*f = Uint16
	default:
		return fmt.Errorf("shape.IndexFormats: %q is not a valid index format", text)
	}
	return nil
}

// Bytes returns the number of bytes per index.
func (f IndexFormats) Bytes() int {
	if f == Uint8 {
		return 1
	}
	return 2
}

// IndexFormatFor returns the smallest index format that can
// represent the given maximum index.
func IndexFormatFor(maxIndex int) IndexFormats {
	if maxIndex <= 255 {
		return Uint8
	}
	return Uint16
}

// Mesh holds the generated arrays of a shape, ready to be
// uploaded to vertex and index buffers.
type Mesh struct {

	// vertex positions, 3 floats per vertex
	Vertex math32.ArrayF32 `yaml:"vertex" toml:"vertex"`

	// vertex normals, 3 floats per vertex
	Normal math32.ArrayF32 `yaml:"normal" toml:"normal"`

	// texture coordinates, 2 floats per vertex
	TexCoord math32.ArrayF32 `yaml:"texcoord" toml:"texcoord"`

	// triangle indexes, 3 per triangle
	Index math32.ArrayU16 `yaml:"index" toml:"index"`

	// smallest index format that holds all of Index
	IndexFormat IndexFormats `yaml:"index_format" toml:"index_format"`

	// bounding box of the vertex positions
	BBox math32.Box3 `yaml:"bbox" toml:"bbox"`
}

// NewMesh validates the given shape, allocates arrays for it
// and sets its points, returning the resulting Mesh. The shape
// is placed at offset 0. It returns an error wrapping
// [ErrInvalidParameter] or [ErrCapacity] and no mesh when the
// shape cannot be generated.
func NewMesh(sh Shape) (*Mesh, error) {
	if err := sh.Validate(); err != nil {
		return nil, err
	}
	nv, ni := sh.MeshSize()
	if err := CheckCapacity(nv); err != nil {
		return nil, err
	}
	sh.SetOffsets(0, 0)
	ms := &Mesh{}
	ms.Alloc(nv, ni)
	sh.Set(ms.Vertex, ms.Normal, ms.TexCoord, ms.Index)
	ms.BBox = sh.BBox()
	ms.IndexFormat = IndexFormatFor(nv - 1)
	return ms, nil
}

// Alloc sets the lengths of the arrays for the given number of
// vertex and index points, re-using existing memory.
func (ms *Mesh) Alloc(numVertex, numIndex int) {
	ms.Vertex = slicesx.SetLength(ms.Vertex, numVertex*3)
	ms.Normal = slicesx.SetLength(ms.Normal, numVertex*3)
	ms.TexCoord = slicesx.SetLength(ms.TexCoord, numVertex*2)
	ms.Index = slicesx.SetLength(ms.Index, numIndex)
}

// NumVertex returns the number of vertex points.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertex) / 3
}

// NumIndex returns the number of index points.
func (ms *Mesh) NumIndex() int {
	return len(ms.Index)
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Index) / 3
}

// Clone returns a deep copy of the mesh.
func (ms *Mesh) Clone() *Mesh {
	nm := &Mesh{}
	errors.Log(copier.CopyWithOption(nm, ms, copier.Option{DeepCopy: true}))
	return nm
}

// Index8 returns the indexes narrowed to 8 bits, for uploads
// in the [Uint8] index format. It returns nil if the mesh
// needs the [Uint16] format.
func (ms *Mesh) Index8() []uint8 {
	if ms.IndexFormat != Uint8 {
		return nil
	}
	return slicesx.Narrow[uint8]([]uint16(ms.Index))
}

// Triangle returns the three vertex indexes of triangle t.
func (ms *Mesh) Triangle(t int) (a, b, c int) {
	return int(ms.Index[t*3]), int(ms.Index[t*3+1]), int(ms.Index[t*3+2])
}

// Attribute describes one array of a [Mesh] for a shader pipeline.
type Attribute struct {

	// name of the array
	Name string

	// number of components per element
	Components int

	// number of elements
	Count int
}

// Layout returns the arrays of the mesh with their per-element
// component counts (3, 3, 2, 1) and element counts.
func (ms *Mesh) Layout() []Attribute {
	nv := ms.NumVertex()
	return []Attribute{
		{Name: "position", Components: 3, Count: nv},
		{Name: "normal", Components: 3, Count: nv},
		{Name: "texcoord", Components: 2, Count: nv},
		{Name: "index", Components: 1, Count: ms.NumIndex()},
	}
}
