// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/orbital/config"
	"cogentcore.org/orbital/math32"
)

// Part is a mesh placed relative to its parent with a translation,
// a rotation about Z and a scale, applied in that order.
type Part struct {
	Name    string
	Mesh    string
	Texture string

	Translate math32.Vector3
	RotateZ   float32
	Scale     math32.Vector3
}

// Apply post-multiplies m by the transform of the part.
func (pt *Part) Apply(m *math32.Matrix4) {
	m.Translate(pt.Translate.X, pt.Translate.Y, pt.Translate.Z)
	if pt.RotateZ != 0 {
		m.RotateZ(pt.RotateZ)
	}
	m.Scale(pt.Scale.X, pt.Scale.Y, pt.Scale.Z)
}

var one = math32.Vec3(1, 1, 1)

// SatelliteParts returns the parts of the satellite, relative to
// its own frame: the body, the rods holding the panels and the dish,
// the solar panels, and the dish.
func SatelliteParts(sc *config.SatelliteConfig) []Part {
	return []Part{
		{Name: "body", Mesh: MeshCube, Texture: sc.BodyTexture, Scale: one},
		{Name: "rod1", Mesh: MeshCube, Texture: sc.GoldTexture, Translate: math32.Vec3(0, 0, 1.25), Scale: math32.Vec3(0.1, 0.1, 0.25)},
		{Name: "rod2", Mesh: MeshCube, Texture: sc.GoldTexture, Translate: math32.Vec3(0, 0, -1.25), Scale: math32.Vec3(0.1, 0.1, 0.25)},
		{Name: "panel1", Mesh: MeshCube, Texture: sc.SolarTexture, Translate: math32.Vec3(0, 0, 2.5), Scale: math32.Vec3(0.5, 0, 1)},
		{Name: "panel2", Mesh: MeshCube, Texture: sc.SolarTexture, Translate: math32.Vec3(0, 0, -2.5), Scale: math32.Vec3(0.5, 0, 1)},
		{Name: "rod3", Mesh: MeshCube, Texture: sc.GoldTexture, Translate: math32.Vec3(-1.2, 0, 0), Scale: math32.Vec3(0.2, 0.1, 0.1)},
		{Name: "dish", Mesh: MeshDish, Texture: sc.GoldTexture, Translate: math32.Vec3(-3.4, 0, 0), RotateZ: 3 * math32.Pi / 2, Scale: one},
	}
}

// TableParts returns the top and four legs of the table,
// relative to the table frame.
func TableParts(texture string) []Part {
	parts := []Part{
		{Name: "top", Mesh: MeshCube, Texture: texture, Translate: math32.Vec3(0, 1, 0), Scale: math32.Vec3(2, 0.1, 2)},
	}
	for _, i := range []float32{-1, 1} {
		for _, j := range []float32{-1, 1} {
			parts = append(parts, Part{Name: "leg", Mesh: MeshCube, Texture: texture,
				Translate: math32.Vec3(i*1.9, -0.1, j*1.9), Scale: math32.Vec3(0.1, 1, 0.1)})
		}
	}
	return parts
}

// renderSatellite draws the spinning earth and the satellite on its orbit.
func (sc *Scene) renderSatellite(ctx Context) error {
	st := sc.Stack
	t := sc.Clock.Elapsed()
	earth := &sc.Config.Earth
	err := st.Scoped(func() error {
		st.Current.RotateY(-sc.Orbit.EarthAngle(t))
		st.Current.Scale(earth.Radius, earth.Radius, earth.Radius)
		return sc.draw(ctx, MeshEarth, earth.Texture)
	})
	if err != nil {
		return err
	}
	return st.Scoped(func() error {
		sc.Orbit.Frame(&st.Current, t, sc.Config.Satellite.Scale)
		return sc.drawParts(ctx, SatelliteParts(&sc.Config.Satellite))
	})
}

// renderRoom draws the floor, the table and the box on the table.
func (sc *Scene) renderRoom(ctx Context) error {
	st := sc.Stack
	room := &sc.Config.Room
	if err := sc.draw(ctx, MeshFloor, room.FloorTexture); err != nil {
		return err
	}
	err := st.Scoped(func() error {
		st.Current.Translate(0, 1.1, 0)
		return sc.drawParts(ctx, TableParts(room.TableTexture))
	})
	if err != nil {
		return err
	}
	return sc.drawPart(ctx, &Part{Name: "box", Mesh: MeshCube, Texture: room.BoxTexture,
		Translate: math32.Vec3(0, 2.7, 0), Scale: math32.Vec3(0.5, 0.5, 0.5)})
}
