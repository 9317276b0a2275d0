// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/orbital/math32"
)

// DishPolar is the polar sweep of a dish: a shallow cap
// of a sphere around its top pole.
const DishPolar = math32.Pi / 4

// Sphere is a parametric sphere mesh, or a sector of one when
// MaxPolar is less than Pi. Azimuth runs around the Y axis
// through Parallels subdivisions, and the polar angle runs down
// from the top pole through Meridians subdivisions.
//
// The surface is generated as an open strip of Parallels+1 rings:
// the last ring repeats the positions of the first one, so a full
// sphere is visually closed while no index wraps across the seam,
// and the seam ring carries u = 0 while the first carries u = 1.
type Sphere struct {
	ShapeBase

	// radius of the sphere
	Radius float32

	// number of azimuthal subdivisions around the Y axis
	Parallels int `min:"1"`

	// number of polar subdivisions from the top pole
	Meridians int `min:"1"`

	// end of the polar sweep in radians: Pi for a full sphere,
	// [DishPolar] for a dish
	MaxPolar float32
}

// NewSphere returns a full Sphere shape with the given radius
// and number of parallel and meridian subdivisions.
func NewSphere(radius float32, parallels, meridians int) *Sphere {
	sp := &Sphere{}
	sp.Defaults()
	sp.Radius = radius
	sp.Parallels = parallels
	sp.Meridians = meridians
	return sp
}

// NewDish returns a dish: a Sphere shape whose polar sweep is
// restricted to [DishPolar], with the given radius and
// number of parallel and meridian subdivisions.
func NewDish(radius float32, parallels, meridians int) *Sphere {
	sp := NewSphere(radius, parallels, meridians)
	sp.MaxPolar = DishPolar
	return sp
}

func (sp *Sphere) Defaults() {
	sp.Radius = 1
	sp.Parallels = 32
	sp.Meridians = 32
	sp.MaxPolar = math32.Pi
}

// IsDish returns true if this is a partial sector of a sphere.
func (sp *Sphere) IsDish() bool {
	return sp.MaxPolar < math32.Pi
}

func (sp *Sphere) Validate() error {
	if sp.Parallels < 1 || sp.Meridians < 1 {
		return fmt.Errorf("shape.Sphere: parallels = %d, meridians = %d, both must be >= 1: %w", sp.Parallels, sp.Meridians, ErrInvalidParameter)
	}
	if sp.Radius < 0 || math32.IsNaN(sp.Radius) || math32.IsInf(sp.Radius, 0) {
		return fmt.Errorf("shape.Sphere: radius = %g must be finite and >= 0: %w", sp.Radius, ErrInvalidParameter)
	}
	if !(sp.MaxPolar > 0 && sp.MaxPolar <= math32.Pi) {
		return fmt.Errorf("shape.Sphere: max polar angle = %g must be in (0, Pi]: %w", sp.MaxPolar, ErrInvalidParameter)
	}
	// a ring of more than MaxIndex+1 vertices can never be indexed,
	// and bounding both counts keeps MeshSize from overflowing
	if sp.Parallels > MaxIndex || sp.Meridians > MaxIndex {
		return fmt.Errorf("shape.Sphere: parallels = %d, meridians = %d: %w", sp.Parallels, sp.Meridians, ErrCapacity)
	}
	nv, _ := sp.MeshSize()
	return CheckCapacity(nv)
}

func (sp *Sphere) MeshSize() (numVertex, numIndex int) {
	return SphereSectorSize(sp.Parallels, sp.Meridians)
}

// Set sets points in given allocated arrays
func (sp *Sphere) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU16) {
	sp.CBBox = SetSphereSector(vertex, normal, texcoord, index, sp.VertexOffset, sp.IndexOffset, sp.Radius, sp.Parallels, sp.Meridians, sp.MaxPolar, sp.Pos)
}

// SphereSectorSize returns the vertex and index counts for a sphere
// sector with the given number of parallel and meridian subdivisions.
func SphereSectorSize(parallels, meridians int) (numVertex, numIndex int) {
	numVertex = (parallels + 1) * (meridians + 1)
	numIndex = parallels * meridians * 6
	return
}

// SetSphereSector sets sphere sector vertex, normal, texcoord and index data
// at given starting *vertex* index (i.e., multiply this *3 to get
// actual float offset in vertex array), and starting index index,
// with the given radius, number of parallel (azimuthal) and meridian (polar)
// subdivisions and end of the polar sweep in radians.
// Vertex (i, j) is stored at i*(meridians+1) + j.
// pos is an arbitrary offset (for composing shapes),
// returns bounding box.
func SetSphereSector(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU16, vertexOffset, indexOffset int, radius float32, parallels, meridians int, maxPolar float32, pos math32.Vector3) math32.Box3 {
	idx := 0
	vidx := vertexOffset * 3
	tidx := vertexOffset * 2

	bb := math32.B3Empty()

	fp := float32(parallels)
	fm := float32(meridians)
	for i := 0; i <= parallels; i++ {
		azimuth := float32(i) * math32.TwoPi / fp
		if i == parallels {
			azimuth = 0 // exact copy of the first ring
		}
		sinAz, cosAz := math32.Sin(azimuth), math32.Cos(azimuth)
		for j := 0; j <= meridians; j++ {
			polar := float32(j) * maxPolar / fm
			sinPol, cosPol := math32.Sin(polar), math32.Cos(polar)

			norm := math32.Vec3(sinPol*cosAz, cosPol, sinPol*sinAz)
			pt := norm.MulScalar(radius)
			pt.SetAdd(pos)

			vertex.SetVector3(vidx+idx*3, pt)
			normal.SetVector3(vidx+idx*3, norm)
			texcoord.Set(tidx+idx*2, 1-float32(i)/fp, 1-float32(j)/fm)
			bb.ExpandByPoint(pt)
			idx++
		}
	}

	vOff := vertexOffset
	ii := indexOffset
	for i := 0; i < parallels; i++ {
		for j := 0; j < meridians; j++ {
			v1 := vOff + i*(meridians+1) + j
			v2 := v1 + 1
			v3 := v1 + meridians + 1
			v4 := v3 + 1
			index.Set(ii, uint16(v1), uint16(v2), uint16(v3), uint16(v3), uint16(v2), uint16(v4))
			ii += 6
		}
	}
	return bb
}
