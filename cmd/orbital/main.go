// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orbital generates the meshes of the orbital scenes,
// traces the draw calls of a frame, and renders preview images.
package main

import (
	"os"

	"cogentcore.org/orbital/base/errors"
	"cogentcore.org/orbital/config"
	"cogentcore.org/orbital/logx"
	"github.com/spf13/cobra"
)

// App holds the global flags shared by all commands.
type App struct {

	// config file to load, in TOML
	ConfigFile string

	// verbose output
	Verbose bool

	// very verbose output, for debugging
	VeryVerbose bool

	// only show errors
	Quiet bool
}

// Config loads the config named by the flags.
func (a *App) Config() (*config.Config, error) {
	return config.Load(a.ConfigFile)
}

// NewRootCmd returns the root command with all subcommands.
func NewRootCmd() *cobra.Command {
	a := &App{}
	root := &cobra.Command{
		Use:           "orbital",
		Short:         "Mesh generation and preview for the orbital scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(a.VeryVerbose, a.Verbose, a.Quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.ConfigFile, "config", "c", "", "config file (TOML)")
	pf.BoolVarP(&a.Verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&a.VeryVerbose, "vv", false, "very verbose output")
	pf.BoolVarP(&a.Quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(
		newMeshCmd(a),
		newTraceCmd(a),
		newRenderCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
	)
	return root
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
