// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview provides a software renderer implementing
// [scene.Context], which draws flat colored, lit triangles into
// an image with a depth buffer, so that scenes can be checked
// without a GPU.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"cogentcore.org/orbital/base/errors"
	"cogentcore.org/orbital/base/iox/imagex"
	"cogentcore.org/orbital/base/ordmap"
	"cogentcore.org/orbital/config"
	"cogentcore.org/orbital/math32"
	"cogentcore.org/orbital/scene"
	"cogentcore.org/orbital/shape"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

// Stats counts the triangles handled in a frame.
type Stats struct {

	// triangles rasterized
	Drawn int

	// triangles skipped as facing away
	Culled int

	// triangles skipped as behind the camera or degenerate
	Clipped int
}

// Renderer is a software [scene.Context].
type Renderer struct {

	// preview settings
	Config *config.PreviewConfig

	// size of the image rendered into, which is the output
	// size times the supersampling factor
	Width, Height int

	// rendered image
	Image *image.RGBA

	// depth buffer, in normalized device coordinates
	Depth []float32

	// projection matrix
	Projection math32.Matrix4

	// direction towards the light, in view coordinates
	Light math32.Vector3

	// triangle counts since the last Clear
	Stats Stats

	meshes     *ordmap.Map[string, *shape.Mesh]
	colors     map[string]color.RGBA
	background color.RGBA
}

// ParseColor returns the named color, which is any SVG 1.1 color name.
func ParseColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("preview: unknown color name %q", name)
	}
	return c, nil
}

// New returns a new Renderer for the given settings.
func New(pc *config.PreviewConfig) (*Renderer, error) {
	rd := &Renderer{
		Config:     pc,
		Width:      pc.Width * pc.Supersample,
		Height:     pc.Height * pc.Supersample,
		Projection: math32.Identity4(),
		Light:      math32.Vec3(0, 0, 1),
		meshes:     ordmap.New[string, *shape.Mesh](),
		colors:     map[string]color.RGBA{},
	}
	if rd.Width <= 0 || rd.Height <= 0 {
		return nil, fmt.Errorf("preview: invalid size %dx%d", rd.Width, rd.Height)
	}
	var errs []error
	var err error
	rd.background, err = ParseColor(pc.Background)
	errs = append(errs, err)
	for tex, nm := range pc.Colors {
		rd.colors[tex], err = ParseColor(nm)
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	rd.Image = image.NewRGBA(image.Rect(0, 0, rd.Width, rd.Height))
	rd.Depth = make([]float32, rd.Width*rd.Height)
	rd.Clear()
	return rd, nil
}

// Clear fills the image with the background color,
// resets the depth buffer and the stats.
func (rd *Renderer) Clear() {
	draw.Draw(rd.Image, rd.Image.Bounds(), image.NewUniform(rd.background), image.Point{}, draw.Src)
	for i := range rd.Depth {
		rd.Depth[i] = math32.Infinity
	}
	rd.Stats = Stats{}
}

// TextureColor returns the color standing in for the given texture.
func (rd *Renderer) TextureColor(texture string) color.RGBA {
	if c, ok := rd.colors[texture]; ok {
		return c
	}
	return colornames.White
}

func (rd *Renderer) SetMesh(name string, ms *shape.Mesh) error {
	if ms == nil {
		return fmt.Errorf("preview: nil mesh %q", name)
	}
	rd.meshes.Add(name, ms)
	return nil
}

func (rd *Renderer) DeleteMesh(name string) {
	rd.meshes.DeleteKey(name)
}

func (rd *Renderer) SetProjection(proj *math32.Matrix4) {
	rd.Projection = *proj
}

// DrawMesh rasterizes all triangles of the named mesh.
func (rd *Renderer) DrawMesh(name string, modelView *math32.Matrix4, texture string) error {
	ms, ok := rd.meshes.ValueByKeyTry(name)
	if !ok {
		return fmt.Errorf("preview: mesh %q: %w", name, scene.ErrUnknownMesh)
	}
	nm := modelView.NormalMatrix()
	mvp := rd.Projection.Mul(*modelView)
	base := rd.TextureColor(texture)
	light := rd.Light.Normal()

	nv := ms.NumVertex()
	verts := make([]screenVertex, nv)
	var pos, norm math32.Vector3
	for i := 0; i < nv; i++ {
		ms.Vertex.GetVector3(3*i, &pos)
		ms.Normal.GetVector3(3*i, &norm)
		verts[i] = rd.project(&mvp, pos)
		n := nm.MulVector3AsVector(norm).Normal()
		verts[i].Shade = lambert(n, light)
	}
	for t, nt := 0, ms.NumTriangles(); t < nt; t++ {
		a, b, c := ms.Triangle(t)
		rd.drawTriangle(&verts[a], &verts[b], &verts[c], base)
	}
	return nil
}

// Result returns the rendered image at the output size,
// scaled down from the supersampled image.
func (rd *Renderer) Result() image.Image {
	ss := rd.Config.Supersample
	if ss <= 1 {
		return rd.Image
	}
	return transform.Resize(rd.Image, rd.Width/ss, rd.Height/ss, transform.Linear)
}

// Save writes the result image to the given file,
// in the format given by its extension.
func (rd *Renderer) Save(filename string) error {
	return imagex.Save(rd.Result(), filename)
}

// Frame clears the renderer, advances the scene to the given time,
// and renders it, returning the result image.
func (rd *Renderer) Frame(sc *scene.Scene, now time.Duration) (image.Image, error) {
	rd.Clear()
	sc.Update(now)
	if err := sc.Render(rd); err != nil {
		return nil, err
	}
	slog.Debug("preview frame", "time", now, "drawn", rd.Stats.Drawn, "culled", rd.Stats.Culled, "clipped", rd.Stats.Clipped)
	return rd.Result(), nil
}
