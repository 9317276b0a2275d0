// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/orbital/math32"
	"cogentcore.org/orbital/shape"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// meshFlags are the flags of the mesh command.
type meshFlags struct {
	radius    float32
	parallels int
	meridians int
	maxPolar  float32
	layout    string
	half      float32
	repeat    float32
	format    string
	output    string
}

func newMeshCmd(a *App) *cobra.Command {
	mf := &meshFlags{}
	cmd := &cobra.Command{
		Use:       "mesh {sphere|dish|cube|plane}",
		Short:     "Write the mesh of a shape as OBJ, YAML or TOML",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"sphere", "dish", "cube", "plane"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := mf.shape(args[0])
			if err != nil {
				return err
			}
			ms, err := shape.NewMesh(sh)
			if err != nil {
				return err
			}
			slog.Info("made mesh", "shape", args[0], "vertices", ms.NumVertex(), "triangles", ms.NumTriangles(), "format", ms.IndexFormat)
			return mf.write(cmd.OutOrStdout(), args[0], ms)
		},
	}
	fs := cmd.Flags()
	fs.Float32Var(&mf.radius, "radius", 1, "sphere or dish radius")
	fs.IntVarP(&mf.parallels, "parallels", "p", 32, "number of azimuthal subdivisions")
	fs.IntVarP(&mf.meridians, "meridians", "m", 32, "number of polar subdivisions")
	fs.Float32Var(&mf.maxPolar, "max-polar", 0, "largest polar angle in degrees, 0 for the shape default")
	fs.StringVar(&mf.layout, "layout", shape.FullTilePerFace.String(), "cube texture layout: full-tile or atlas")
	fs.Float32Var(&mf.half, "half-size", 50, "plane half size")
	fs.Float32Var(&mf.repeat, "repeat", 20, "plane texture repeat count")
	fs.StringVarP(&mf.format, "format", "f", "", "output format: obj, yaml or toml (default from output name, else obj)")
	fs.StringVarP(&mf.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// shape returns the shape with the given name configured by the flags.
func (mf *meshFlags) shape(name string) (shape.Shape, error) {
	switch name {
	case "sphere", "dish":
		sp := shape.NewSphere(mf.radius, mf.parallels, mf.meridians)
		if name == "dish" {
			sp.MaxPolar = shape.DishPolar
		}
		if mf.maxPolar != 0 {
			sp.MaxPolar = math32.DegToRad(mf.maxPolar)
		}
		return sp, nil
	case "cube":
		var layout shape.CubeLayouts
		if err := layout.SetString(mf.layout); err != nil {
			return nil, err
		}
		return shape.NewCube(layout), nil
	case "plane":
		return shape.NewPlane(mf.half, mf.repeat), nil
	}
	return nil, fmt.Errorf("unknown shape %q, must be sphere, dish, cube or plane", name)
}

// write writes the mesh to the output file, or to w if there is none.
func (mf *meshFlags) write(w io.Writer, name string, ms *shape.Mesh) error {
	format := mf.format
	if format == "" && mf.output != "" {
		format = shape.FormatFromFilename(mf.output)
	}
	if format == "" {
		format = "obj"
	}
	if mf.output == "" {
		return shape.Write(w, format, name, ms)
	}
	fn, err := homedir.Expand(mf.output)
	if err != nil {
		return err
	}
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := shape.Write(f, format, name, ms); err != nil {
		return err
	}
	return f.Close()
}
