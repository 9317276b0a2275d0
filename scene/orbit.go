// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"math"
	"time"

	"cogentcore.org/orbital/config"
	"cogentcore.org/orbital/math32"
)

// Orbit is the circular orbit of the satellite around the earth,
// together with the rotation period of the earth itself.
type Orbit struct {

	// distance of the satellite from the center of the earth
	Radius float32

	// speed of the satellite along the orbit, in units per second
	Speed float32

	// inclination of the orbit plane about the Z axis, in radians
	// in [0, 2*Pi)
	Inclination float32

	// time for a full turn of the earth, in milliseconds
	EarthPeriod float32
}

// NewOrbit returns the initial orbit for the given config.
func NewOrbit(cfg *config.Config) Orbit {
	o := Orbit{
		Radius:      cfg.Orbit.Radius,
		Speed:       cfg.Orbit.Speed,
		EarthPeriod: cfg.Earth.Period,
	}
	o.SetInclinationDegrees(cfg.Orbit.Inclination)
	return o
}

// SatellitePeriod returns the time for a full orbit in milliseconds,
// which is +Inf when the satellite is not moving.
func (o *Orbit) SatellitePeriod() float32 {
	return math32.TwoPi * o.Radius * 1000 / o.Speed
}

// angleAt returns the rotation angle at the given time for a motion
// with the given period in milliseconds, as -(t/period * 2Pi) mod 2Pi,
// which is in (-2Pi, 0]. Non-positive and infinite periods do not move.
func angleAt(t time.Duration, period float32) float32 {
	if !(period > 0) || math32.IsInf(period, 1) {
		return 0
	}
	turns := float64(t) / float64(time.Millisecond) / float64(period)
	return float32(-math.Mod(turns, 1) * 2 * math.Pi)
}

// EarthAngle returns the rotation angle of the earth at the given time.
func (o *Orbit) EarthAngle(t time.Duration) float32 {
	return angleAt(t, o.EarthPeriod)
}

// SatelliteAngle returns the angle of the satellite along its orbit
// at the given time.
func (o *Orbit) SatelliteAngle(t time.Duration) float32 {
	if o.Speed <= 0 {
		return 0
	}
	return angleAt(t, o.SatellitePeriod())
}

// Position returns the position of the satellite in the orbit
// plane at the given time, before inclination.
func (o *Orbit) Position(t time.Duration) math32.Vector3 {
	a := o.SatelliteAngle(t)
	return math32.Vec3(math32.Cos(a)*o.Radius, 0, math32.Sin(a)*o.Radius)
}

// Frame post-multiplies m by the transform placing the satellite
// at time t: tilted by the inclination, moved along the orbit, turned
// to keep facing the same way relative to the earth, and scaled.
func (o *Orbit) Frame(m *math32.Matrix4, t time.Duration, scale float32) {
	pos := o.Position(t)
	m.RotateZ(o.Inclination)
	m.Translate(pos.X, pos.Y, pos.Z)
	m.RotateY(-o.SatelliteAngle(t))
	m.Scale(scale, scale, scale)
}

// AddRadius changes the orbit radius by d, stopping at 0.
func (o *Orbit) AddRadius(d float32) {
	o.Radius = math32.Max(o.Radius+d, 0)
}

// AddSpeed changes the satellite speed by d, stopping at 0.
func (o *Orbit) AddSpeed(d float32) {
	o.Speed = math32.Max(o.Speed+d, 0)
}

// AddInclination changes the inclination by d radians,
// wrapping it into [0, 2Pi).
func (o *Orbit) AddInclination(d float32) {
	o.Inclination = math32.WrapAngle(o.Inclination + d)
}

// SetInclinationDegrees sets the inclination from degrees.
func (o *Orbit) SetInclinationDegrees(deg float32) {
	o.Inclination = math32.WrapAngle(math32.DegToRad(deg))
}

// InclinationDegrees returns the inclination in degrees.
func (o *Orbit) InclinationDegrees() float32 {
	return math32.RadToDeg(o.Inclination)
}
