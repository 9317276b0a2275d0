// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"image/color"

	"cogentcore.org/orbital/math32"
)

// screenVertex is a vertex in pixel coordinates, with depth in
// normalized device coordinates and its lighting factor.
type screenVertex struct {
	X, Y, Z float32

	// clip space W, which is <= 0 behind the camera
	W float32

	Shade float32
}

// ambient is the lighting factor of surfaces facing away from the light.
const ambient = 0.3

// lambert returns the lighting factor for a surface with the given
// unit normal. Both sides of a surface are lit alike.
func lambert(n, light math32.Vector3) float32 {
	return ambient + (1-ambient)*math32.Abs(n.Dot(light))
}

// project transforms a model position to a screen vertex.
func (rd *Renderer) project(mvp *math32.Matrix4, pos math32.Vector3) screenVertex {
	clip := math32.Vector4FromVector3(pos, 1).MulMatrix4(mvp)
	sv := screenVertex{W: clip.W}
	if clip.W <= 0 {
		return sv
	}
	ndc := clip.PerspDiv()
	sv.X = (ndc.X + 1) * 0.5 * float32(rd.Width)
	sv.Y = (1 - ndc.Y) * 0.5 * float32(rd.Height)
	sv.Z = ndc.Z
	return sv
}

// drawTriangle rasterizes one triangle with depth testing,
// interpolating the lighting across it.
func (rd *Renderer) drawTriangle(v0, v1, v2 *screenVertex, base color.RGBA) {
	if v0.W <= 0 || v1.W <= 0 || v2.W <= 0 {
		rd.Stats.Clipped++
		return
	}
	// twice the signed area, positive for clockwise on screen,
	// which is counter-clockwise before the Y flip
	area := (v1.X-v0.X)*(v2.Y-v0.Y) - (v1.Y-v0.Y)*(v2.X-v0.X)
	if math32.Abs(area) < 1e-6 {
		rd.Stats.Clipped++
		return
	}
	if rd.Config.Cull && area > 0 {
		rd.Stats.Culled++
		return
	}
	rd.Stats.Drawn++

	minX := max(0, int(math32.Floor(min(v0.X, v1.X, v2.X))))
	maxX := min(rd.Width-1, int(math32.Ceil(max(v0.X, v1.X, v2.X))))
	minY := max(0, int(math32.Floor(min(v0.Y, v1.Y, v2.Y))))
	maxY := min(rd.Height-1, int(math32.Ceil(max(v0.Y, v1.Y, v2.Y))))

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := ((v1.X-px)*(v2.Y-py) - (v1.Y-py)*(v2.X-px)) / area
			w1 := ((v2.X-px)*(v0.Y-py) - (v2.Y-py)*(v0.X-px)) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*v0.Z + w1*v1.Z + w2*v2.Z
			if z < -1 || z > 1 {
				continue
			}
			di := y*rd.Width + x
			if z >= rd.Depth[di] {
				continue
			}
			rd.Depth[di] = z
			rd.Image.SetRGBA(x, y, shade(base, w0*v0.Shade+w1*v1.Shade+w2*v2.Shade))
		}
	}
}

// shade returns the color scaled by the given lighting factor.
func shade(c color.RGBA, f float32) color.RGBA {
	f = math32.Clamp(f, 0, 1)
	return color.RGBA{uint8(float32(c.R) * f), uint8(float32(c.G) * f), uint8(float32(c.B) * f), c.A}
}
