// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"cogentcore.org/orbital/base/tolassert"
	"cogentcore.org/orbital/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertexAt(ms *Mesh, i int) math32.Vector3 {
	var v math32.Vector3
	v.FromSlice(ms.Vertex, i*3)
	return v
}

func normalAt(ms *Mesh, i int) math32.Vector3 {
	var v math32.Vector3
	v.FromSlice(ms.Normal, i*3)
	return v
}

func TestSphereSizes(t *testing.T) {
	for _, pm := range [][2]int{{1, 1}, {4, 2}, {3, 7}, {50, 25}, {200, 150}} {
		p, m := pm[0], pm[1]
		ms, err := NewMesh(NewSphere(1, p, m))
		require.NoError(t, err)
		assert.Len(t, ms.Vertex, 3*(p+1)*(m+1))
		assert.Len(t, ms.Normal, 3*(p+1)*(m+1))
		assert.Len(t, ms.TexCoord, 2*(p+1)*(m+1))
		assert.Len(t, ms.Index, 6*p*m)
		nv := (p + 1) * (m + 1)
		for _, ix := range ms.Index {
			assert.Less(t, int(ix), nv)
		}
	}
}

func TestSphereVertices(t *testing.T) {
	const r = 2.5
	p, m := 12, 9
	ms, err := NewMesh(NewSphere(r, p, m))
	require.NoError(t, err)
	for i := 0; i < ms.NumVertex(); i++ {
		v := vertexAt(ms, i)
		n := normalAt(ms, i)
		tolassert.EqualTol(t, r, v.Length(), 1.0e-4)
		tolassert.EqualTol(t, 1, n.Length(), 1.0e-5)
		tolassert.EqualTolSlice(t, []float32{n.X, n.Y, n.Z}, []float32{v.X / r, v.Y / r, v.Z / r}, 1.0e-5)
	}
	// poles
	tolassert.EqualTolSlice(t, []float32{0, r, 0}, ms.Vertex[0:3], 1.0e-5)
	tolassert.EqualTolSlice(t, []float32{0, -r, 0}, ms.Vertex[m*3:m*3+3], 1.0e-5)
}

func TestSphereTexCoords(t *testing.T) {
	p, m := 6, 4
	ms, err := NewMesh(NewSphere(1, p, m))
	require.NoError(t, err)
	for i := 0; i <= p; i++ {
		for j := 0; j <= m; j++ {
			vi := i*(m+1) + j
			u, v := ms.TexCoord[vi*2], ms.TexCoord[vi*2+1]
			tolassert.EqualTol(t, 1-float32(i)/float32(p), u, 1.0e-6)
			tolassert.EqualTol(t, 1-float32(j)/float32(m), v, 1.0e-6)
		}
	}
	assert.Equal(t, float32(1), ms.TexCoord[0])
	assert.Equal(t, float32(1), ms.TexCoord[1])
	last := ms.NumVertex() - 1
	assert.Equal(t, float32(0), ms.TexCoord[last*2])
	assert.Equal(t, float32(0), ms.TexCoord[last*2+1])
}

func TestSphereScenario(t *testing.T) {
	ms, err := NewMesh(NewSphere(1, 4, 2))
	require.NoError(t, err)
	assert.Equal(t, 15, ms.NumVertex())
	assert.Equal(t, 48, ms.NumIndex())
	assert.Equal(t, Uint8, ms.IndexFormat)
	tolassert.EqualTolSlice(t, []float32{0, 1, 0}, ms.Vertex[0:3], 1.0e-6)
	// i = 0, j = 2: polar = Pi
	tolassert.EqualTolSlice(t, []float32{0, -1, 0}, ms.Vertex[6:9], 1.0e-6)
	// first cell: v1 = 0, v2 = 1, v3 = 3, v4 = 4
	assert.Equal(t, []uint16{0, 1, 3, 3, 1, 4}, []uint16(ms.Index[:6]))
	// second cell of the first column
	assert.Equal(t, []uint16{1, 2, 4, 4, 2, 5}, []uint16(ms.Index[6:12]))
	// last cell: i = 3, j = 1
	assert.Equal(t, []uint16{10, 11, 13, 13, 11, 14}, []uint16(ms.Index[42:48]))
	assert.Len(t, ms.Index8(), 48)
	assert.Equal(t, uint8(14), ms.Index8()[47])
}

func TestSphereSeam(t *testing.T) {
	p, m := 8, 5
	ms, err := NewMesh(NewSphere(3, p, m))
	require.NoError(t, err)
	for j := 0; j <= m; j++ {
		first := vertexAt(ms, j)
		last := vertexAt(ms, p*(m+1)+j)
		assert.Equal(t, first, last)
		assert.Equal(t, normalAt(ms, j), normalAt(ms, p*(m+1)+j))
	}
}

func TestDish(t *testing.T) {
	p, m := 50, 25
	dish := NewDish(2, p, m)
	assert.True(t, dish.IsDish())
	ms, err := NewMesh(dish)
	require.NoError(t, err)
	assert.Equal(t, (p+1)*(m+1), ms.NumVertex())
	assert.Equal(t, 6*p*m, ms.NumIndex())
	assert.Equal(t, Uint16, ms.IndexFormat)
	assert.Nil(t, ms.Index8())

	// rim of the first ring, at polar = Pi/4
	rim := vertexAt(ms, m)
	s := 2 * math32.Sin(DishPolar)
	tolassert.EqualTolSlice(t, []float32{s, 2 * math32.Cos(DishPolar), 0}, []float32{rim.X, rim.Y, rim.Z}, 1.0e-5)

	// the dish never dips below its rim
	tolassert.EqualTol(t, 2*math32.Cos(DishPolar), ms.BBox.Min.Y, 1.0e-5)
	tolassert.EqualTol(t, 2, ms.BBox.Max.Y, 1.0e-5)
	for _, ix := range ms.Index {
		assert.Less(t, int(ix), ms.NumVertex())
	}
}

func TestSphereErrors(t *testing.T) {
	for _, sp := range []*Sphere{NewSphere(1, 0, 4), NewSphere(1, 4, 0), NewSphere(1, -1, -1), NewSphere(-1, 4, 4), NewDish(1, 0, 3)} {
		ms, err := NewMesh(sp)
		assert.ErrorIs(t, err, ErrInvalidParameter)
		assert.Nil(t, ms)
	}

	ms, err := NewMesh(NewSphere(1, 300, 300))
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Nil(t, ms)

	// 256 * 256 vertices is exactly the 16-bit limit
	ms, err = NewMesh(NewSphere(1, 255, 255))
	require.NoError(t, err)
	assert.Equal(t, MaxIndex+1, ms.NumVertex())
	assert.Equal(t, uint16(MaxIndex), ms.Index[len(ms.Index)-1])

	_, err = NewMesh(NewSphere(1, 256, 255))
	assert.ErrorIs(t, err, ErrCapacity)

	// huge subdivision counts are rejected before any size is computed
	for _, sp := range []*Sphere{NewSphere(1, 1<<62, 3), NewSphere(1, 3, 1<<62), NewSphere(1, math.MaxInt, math.MaxInt), NewSphere(1, MaxIndex+1, 1)} {
		assert.NotPanics(t, func() {
			ms, err = NewMesh(sp)
		})
		assert.ErrorIs(t, err, ErrCapacity)
		assert.Nil(t, ms)
	}

	nan := float32(math.NaN())
	bad := []*Sphere{NewSphere(nan, 4, 4), NewSphere(math32.Infinity, 4, 4), NewSphere(-math32.Infinity, 4, 4)}
	for _, mp := range []float32{nan, 0, -1, math32.Pi + 0.01, math32.Infinity} {
		sp := NewSphere(1, 4, 4)
		sp.MaxPolar = mp
		bad = append(bad, sp)
	}
	for _, sp := range bad {
		ms, err = NewMesh(sp)
		assert.ErrorIs(t, err, ErrInvalidParameter, "radius %g max polar %g", sp.Radius, sp.MaxPolar)
		assert.Nil(t, ms)
	}

	// radius 0 collapses to a point but is still valid
	ms, err = NewMesh(NewSphere(0, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, math32.Vector3{}, ms.BBox.Size())
}

func TestIndexFormatFor(t *testing.T) {
	assert.Equal(t, Uint8, IndexFormatFor(0))
	assert.Equal(t, Uint8, IndexFormatFor(255))
	assert.Equal(t, Uint16, IndexFormatFor(256))
	assert.Equal(t, Uint16, IndexFormatFor(MaxIndex))
	assert.Equal(t, 1, Uint8.Bytes())
	assert.Equal(t, 2, Uint16.Bytes())

	var f IndexFormats
	require.NoError(t, f.UnmarshalText([]byte("UINT16")))
	assert.Equal(t, Uint16, f)
	assert.Error(t, f.UnmarshalText([]byte("uint32")))
}

func TestMeshClone(t *testing.T) {
	ms, err := NewMesh(NewSphere(1, 4, 2))
	require.NoError(t, err)
	cl := ms.Clone()
	assert.Equal(t, ms, cl)
	cl.Vertex[0] = 42
	cl.Index[0] = 7
	assert.NotEqual(t, float32(42), ms.Vertex[0])
	assert.Equal(t, uint16(0), ms.Index[0])
}

func TestMeshLayout(t *testing.T) {
	ms, err := NewMesh(NewSphere(1, 4, 2))
	require.NoError(t, err)
	ly := ms.Layout()
	require.Len(t, ly, 4)
	assert.Equal(t, Attribute{Name: "position", Components: 3, Count: 15}, ly[0])
	assert.Equal(t, Attribute{Name: "normal", Components: 3, Count: 15}, ly[1])
	assert.Equal(t, Attribute{Name: "texcoord", Components: 2, Count: 15}, ly[2])
	assert.Equal(t, Attribute{Name: "index", Components: 1, Count: 48}, ly[3])
}

func TestGroup(t *testing.T) {
	gp := NewGroup(NewCube(FullTilePerFace), NewSphere(1, 4, 2), NewPlane(5, 1))
	ms, err := NewMesh(gp)
	require.NoError(t, err)
	assert.Equal(t, 24+15+4, ms.NumVertex())
	assert.Equal(t, 36+48+6, ms.NumIndex())

	// sphere indices are shifted past the cube vertices
	assert.Equal(t, []uint16{24, 25, 27, 27, 25, 28}, []uint16(ms.Index[36:42]))
	// plane indices are shifted past the cube and the sphere
	assert.Equal(t, []uint16{39, 40, 41, 39, 41, 42}, []uint16(ms.Index[84:90]))
	assert.Equal(t, float32(-5), ms.BBox.Min.X)
	assert.Equal(t, float32(5), ms.BBox.Max.Z)

	_, err = NewMesh(NewGroup())
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = NewMesh(NewGroup(NewSphere(1, 0, 2)))
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = NewMesh(NewGroup(NewSphere(1, 200, 150), NewSphere(1, 200, 150), NewSphere(1, 200, 150)))
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestPos(t *testing.T) {
	sp := NewSphere(1, 4, 2)
	sp.Pos = math32.Vec3(0, 0, 10)
	ms, err := NewMesh(sp)
	require.NoError(t, err)
	tolassert.EqualTolSlice(t, []float32{0, 1, 10}, ms.Vertex[0:3], 1.0e-6)
	// normals do not move with the shape
	tolassert.EqualTolSlice(t, []float32{0, 1, 0}, ms.Normal[0:3], 1.0e-6)
	tolassert.EqualTol(t, 10, ms.BBox.Center().Z, 1.0e-5)
}

func TestWriteOBJ(t *testing.T) {
	ms, err := NewMesh(NewCube(AtlasPacked))
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, WriteOBJ(&b, "cube", ms))
	counts := map[string]int{}
	for _, ln := range strings.Split(strings.TrimSpace(b.String()), "\n") {
		counts[strings.Fields(ln)[0]]++
	}
	assert.Equal(t, 1, counts["o"])
	assert.Equal(t, 24, counts["v"])
	assert.Equal(t, 24, counts["vt"])
	assert.Equal(t, 24, counts["vn"])
	assert.Equal(t, 12, counts["f"])
	assert.Contains(t, b.String(), "f 1/1/1 2/2/2 3/3/3\n")
}

func TestWriteFormats(t *testing.T) {
	ms, err := NewMesh(NewPlane(5, 1))
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, Write(&b, "yaml", "floor", ms))
	assert.Contains(t, b.String(), "index_format: uint8")
	b.Reset()
	require.NoError(t, Write(&b, "toml", "floor", ms))
	assert.Contains(t, b.String(), "index_format")
	assert.Contains(t, b.String(), "uint8")
	assert.Error(t, Write(&b, "stl", "floor", ms))
	assert.Equal(t, "obj", FormatFromFilename("out/Earth.OBJ"))
}
