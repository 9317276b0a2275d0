// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"cogentcore.org/orbital/base/errors"
	"cogentcore.org/orbital/config"
	"cogentcore.org/orbital/logx"
	"cogentcore.org/orbital/preview"
	"cogentcore.org/orbital/scene"
	"github.com/spf13/cobra"
)

func newTraceCmd(a *App) *cobra.Command {
	var at time.Duration
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the draw calls of one frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.Config()
			if err != nil {
				return err
			}
			sc := scene.New(cfg)
			rc := scene.NewRecorder()
			if err := sc.Init(rc, cfg.Preview.Aspect()); err != nil {
				return err
			}
			defer sc.Dispose(rc)
			sc.Update(0)
			sc.Update(at)
			if err := sc.Render(rc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s scene at %v:\n%s", cfg.Scene, at, rc)
			return nil
		},
	}
	cmd.Flags().DurationVarP(&at, "time", "t", 0, "animation time of the frame")
	return cmd
}

// renderFlags are the flags of the render command.
type renderFlags struct {
	output   string
	at       time.Duration
	frames   int
	interval time.Duration
}

// frameName returns the file name of the given frame, numbered
// when there is more than one.
func (rf *renderFlags) frameName(i int) string {
	if rf.frames <= 1 {
		return rf.output
	}
	ext := filepath.Ext(rf.output)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(rf.output, ext), i, ext)
}

// render renders the frames for the given config.
func (rf *renderFlags) render(cfg *config.Config) error {
	rd, err := preview.New(&cfg.Preview)
	if err != nil {
		return err
	}
	sc := scene.New(cfg)
	if err := sc.Init(rd, cfg.Preview.Aspect()); err != nil {
		return err
	}
	defer sc.Dispose(rd)
	sc.Update(0)
	for i, n := 0, max(rf.frames, 1); i < n; i++ {
		if _, err := rd.Frame(sc, rf.at+time.Duration(i)*rf.interval); err != nil {
			return err
		}
		fn := rf.frameName(i)
		if err := rd.Save(fn); err != nil {
			return err
		}
		logx.PrintfDebug("frame %d: %d triangles drawn, %d culled, %d clipped\n", i, rd.Stats.Drawn, rd.Stats.Culled, rd.Stats.Clipped)
		slog.Info("saved frame", "file", fn)
	}
	return nil
}

func (rf *renderFlags) addFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&rf.output, "output", "o", "orbital.png", "output image file")
	fs.DurationVarP(&rf.at, "time", "t", 0, "animation time of the first frame")
	fs.IntVarP(&rf.frames, "frames", "n", 1, "number of frames")
	fs.DurationVar(&rf.interval, "interval", 100*time.Millisecond, "time between frames")
}

func newRenderCmd(a *App) *cobra.Command {
	rf := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render preview images of the scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.Config()
			if err != nil {
				return err
			}
			return rf.render(cfg)
		},
	}
	rf.addFlags(cmd)
	return cmd
}

func newWatchCmd(a *App) *cobra.Command {
	rf := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render the preview again each time the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.ConfigFile == "" {
				return errors.New("watch needs a config file")
			}
			cfg, err := a.Config()
			if err != nil {
				return err
			}
			if err := rf.render(cfg); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return rf.watch(ctx, a.ConfigFile)
		},
	}
	rf.addFlags(cmd)
	return cmd
}

// watch renders each config loaded from the given file until ctx is done.
func (rf *renderFlags) watch(ctx context.Context, filename string) error {
	ch, err := config.Watch(ctx, filename)
	if err != nil {
		return err
	}
	logx.PrintlnWarn("watching", filename, "for changes, interrupt to stop")
	for cfg := range ch {
		if err := rf.render(cfg); err != nil {
			slog.Error("render", "err", err)
		}
	}
	return nil
}

func newConfigCmd(a *App) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the current config, with defaults filled in, as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.Config()
			if err != nil {
				return err
			}
			if err := cfg.Save(output); err != nil {
				return err
			}
			logx.PrintfInfo("wrote config to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "orbital.toml", "output config file")
	return cmd
}
