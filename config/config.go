// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of the scenes:
// mesh resolutions, orbit parameters, camera and preview settings,
// read from and written to TOML files.
package config

import (
	"fmt"
	"strings"

	"cogentcore.org/orbital/base/errors"
	"cogentcore.org/orbital/base/iox/tomlx"
	"cogentcore.org/orbital/math32"
	"cogentcore.org/orbital/shape"
	"github.com/jinzhu/copier"
)

// Scenes are the scenes that can be drawn.
type Scenes int32

const (
	// Satellite is the earth with a satellite orbiting it.
	Satellite Scenes = iota

	// Room is a table with a box on it, standing on a floor.
	Room

	ScenesN
)

var sceneNames = [...]string{"satellite", "room"}

func (sc Scenes) String() string {
	if sc < 0 || sc >= ScenesN {
		return fmt.Sprintf("Scenes(%d)", int32(sc))
	}
	return sceneNames[sc]
}

// SetString sets the scene from its name, which is not case sensitive.
func (sc *Scenes) SetString(s string) error {
	for i, nm := range sceneNames {
		if strings.EqualFold(nm, s) {
			*sc = Scenes(i)
			return nil
		}
	}
	return fmt.Errorf("config.Scenes: %q is not a valid scene, must be one of %v", s, sceneNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (sc Scenes) MarshalText() ([]byte, error) {
	return []byte(sc.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (sc *Scenes) UnmarshalText(text []byte) error {
	return sc.SetString(string(text))
}

// Config is the full configuration.
type Config struct {

	// which scene to draw
	Scene Scenes `toml:"scene"`

	// the earth sphere
	Earth EarthConfig `toml:"earth"`

	// the satellite parts
	Satellite SatelliteConfig `toml:"satellite"`

	// the satellite orbit
	Orbit OrbitConfig `toml:"orbit"`

	// the table room
	Room RoomConfig `toml:"room"`

	// the camera for the satellite scene
	Camera CameraConfig `toml:"camera"`

	// the software preview renderer
	Preview PreviewConfig `toml:"preview"`
}

// EarthConfig configures the earth sphere.
type EarthConfig struct {

	// radius the unit sphere is scaled to
	Radius float32 `toml:"radius"`

	// number of azimuthal subdivisions
	Parallels int `toml:"parallels"`

	// number of polar subdivisions
	Meridians int `toml:"meridians"`

	// time for a full turn of the earth, in milliseconds
	Period float32 `toml:"period"`

	// texture drawn on the earth
	Texture string `toml:"texture"`
}

func (ec *EarthConfig) Defaults() {
	ec.Radius = 10
	ec.Parallels = 200
	ec.Meridians = 150
	ec.Period = 24000
	ec.Texture = "earth"
}

// SatelliteConfig configures the parts of the satellite.
type SatelliteConfig struct {

	// uniform scale applied to the whole satellite
	Scale float32 `toml:"scale"`

	// texture coordinate layout of the cube parts
	CubeLayout shape.CubeLayouts `toml:"cube_layout"`

	// radius of the dish
	DishRadius float32 `toml:"dish_radius"`

	// number of azimuthal subdivisions of the dish
	DishParallels int `toml:"dish_parallels"`

	// number of polar subdivisions of the dish
	DishMeridians int `toml:"dish_meridians"`

	// texture of the body
	BodyTexture string `toml:"body_texture"`

	// texture of the rods and the dish
	GoldTexture string `toml:"gold_texture"`

	// texture of the solar panels
	SolarTexture string `toml:"solar_texture"`
}

func (sc *SatelliteConfig) Defaults() {
	sc.Scale = 0.5
	sc.CubeLayout = shape.FullTilePerFace
	sc.DishRadius = 2
	sc.DishParallels = 50
	sc.DishMeridians = 25
	sc.BodyTexture = "satellite"
	sc.GoldTexture = "gold"
	sc.SolarTexture = "solar"
}

// OrbitConfig configures the initial orbit of the satellite.
type OrbitConfig struct {

	// distance of the satellite from the center of the earth
	Radius float32 `toml:"radius"`

	// speed of the satellite along the orbit, in units per second
	Speed float32 `toml:"speed"`

	// inclination of the orbit plane about the Z axis, in degrees
	Inclination float32 `toml:"inclination"`
}

func (oc *OrbitConfig) Defaults() {
	oc.Radius = 20
	oc.Speed = 30
	oc.Inclination = 0
}

// RoomConfig configures the table room scene.
type RoomConfig struct {

	// half of the side length of the floor
	FloorSize float32 `toml:"floor_size"`

	// number of times the floor texture repeats
	FloorRepeat float32 `toml:"floor_repeat"`

	// texture of the floor
	FloorTexture string `toml:"floor_texture"`

	// texture of the table
	TableTexture string `toml:"table_texture"`

	// texture of the box on the table
	BoxTexture string `toml:"box_texture"`

	// the camera for the room scene
	Camera CameraConfig `toml:"camera"`
}

func (rc *RoomConfig) Defaults() {
	rc.FloorSize = 5
	rc.FloorRepeat = 2
	rc.FloorTexture = "ground"
	rc.TableTexture = "wood"
	rc.BoxTexture = "box"
	rc.Camera = CameraConfig{
		Eye:  math32.Vec3(8, 5, -10),
		Up:   math32.Vec3(0, 1, 0),
		FOV:  60,
		Near: 0.1,
		Far:  100,
	}
}

// CameraConfig configures a camera looking at a target.
type CameraConfig struct {

	// position of the camera
	Eye math32.Vector3 `toml:"eye"`

	// point the camera looks at
	Target math32.Vector3 `toml:"target"`

	// up direction of the camera
	Up math32.Vector3 `toml:"up"`

	// vertical field of view, in degrees
	FOV float32 `toml:"fov"`

	// near clipping plane distance
	Near float32 `toml:"near"`

	// far clipping plane distance
	Far float32 `toml:"far"`
}

func (cc *CameraConfig) Defaults() {
	cc.Eye = math32.Vec3(25, 20, 25)
	cc.Target = math32.Vector3{}
	cc.Up = math32.Vec3(0, 1, 0)
	cc.FOV = 60
	cc.Near = 1
	cc.Far = 100
}

// View returns the view matrix of the camera.
func (cc *CameraConfig) View() math32.Matrix4 {
	var m math32.Matrix4
	m.SetLookAt(cc.Eye, cc.Target, cc.Up)
	return m
}

// Projection returns the perspective projection matrix
// of the camera for the given aspect ratio (width / height).
func (cc *CameraConfig) Projection(aspect float32) math32.Matrix4 {
	var m math32.Matrix4
	m.SetPerspective(cc.FOV, aspect, cc.Near, cc.Far)
	return m
}

// PreviewConfig configures the software preview renderer.
type PreviewConfig struct {

	// width of the output image in pixels
	Width int `toml:"width"`

	// height of the output image in pixels
	Height int `toml:"height"`

	// number of samples per pixel along each axis,
	// rendered at a larger size and scaled down
	Supersample int `toml:"supersample"`

	// whether to skip triangles facing away from the camera
	Cull bool `toml:"cull"`

	// background color name
	Background string `toml:"background"`

	// color names standing in for each texture
	Colors map[string]string `toml:"colors"`
}

func (pc *PreviewConfig) Defaults() {
	pc.Width = 800
	pc.Height = 600
	pc.Supersample = 2
	pc.Cull = false
	pc.Background = "black"
	pc.Colors = map[string]string{
		"earth":     "royalblue",
		"satellite": "silver",
		"gold":      "gold",
		"solar":     "midnightblue",
		"ground":    "darkolivegreen",
		"wood":      "saddlebrown",
		"box":       "peru",
	}
}

// Aspect returns the width / height aspect ratio.
func (pc *PreviewConfig) Aspect() float32 {
	if pc.Height == 0 {
		return 1
	}
	return float32(pc.Width) / float32(pc.Height)
}

// Defaults sets all fields to their default values.
func (cfg *Config) Defaults() {
	cfg.Scene = Satellite
	cfg.Earth.Defaults()
	cfg.Satellite.Defaults()
	cfg.Orbit.Defaults()
	cfg.Room.Defaults()
	cfg.Camera.Defaults()
	cfg.Preview.Defaults()
}

// New returns a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Validate returns an error if any value is out of range.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Scene < 0 || cfg.Scene >= ScenesN {
		errs = append(errs, fmt.Errorf("config: invalid scene %v", cfg.Scene))
	}
	if cfg.Earth.Period <= 0 {
		errs = append(errs, fmt.Errorf("config: earth period %g must be > 0", cfg.Earth.Period))
	}
	if cfg.Orbit.Radius < 0 || cfg.Orbit.Speed < 0 {
		errs = append(errs, fmt.Errorf("config: orbit radius %g and speed %g must be >= 0", cfg.Orbit.Radius, cfg.Orbit.Speed))
	}
	if cfg.Preview.Width <= 0 || cfg.Preview.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: preview size %dx%d must be positive", cfg.Preview.Width, cfg.Preview.Height))
	}
	if cfg.Preview.Supersample < 1 {
		errs = append(errs, fmt.Errorf("config: preview supersample %d must be >= 1", cfg.Preview.Supersample))
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of the config.
func (cfg *Config) Clone() *Config {
	cl := &Config{}
	errors.Log(copier.CopyWithOption(cl, cfg, copier.Option{DeepCopy: true}))
	return cl
}

// Open reads the config from the given TOML file, on top of
// the current values, so that missing fields keep their values.
func (cfg *Config) Open(filename string) error {
	err := tomlx.Open(cfg, filename)
	if err != nil {
		return fmt.Errorf("config: opening %q: %w", filename, err)
	}
	return cfg.Validate()
}

// Save writes the config to the given TOML file.
func (cfg *Config) Save(filename string) error {
	return tomlx.Save(cfg, filename)
}

// Load returns the default config updated from the given TOML file,
// or just the default config if filename is empty.
func Load(filename string) (*Config, error) {
	cfg := New()
	if filename == "" {
		return cfg, nil
	}
	if err := cfg.Open(filename); err != nil {
		return nil, err
	}
	return cfg, nil
}
