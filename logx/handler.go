// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages.
// It is on by default; terminals without color support
// still get plain output through termenv profile detection.
var UseColor = true

// SetDefaultLogger sets the default logger to be a text handler
// writing to [os.Stderr] that only shows messages at or above
// [UserLevel], with colored level labels.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a new text [slog.Handler] writing to the
// given writer, using [UserLevel] as its minimum level and
// coloring level labels based on the color profile of w.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 || !UseColor {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(a.Key, LevelString(out, lvl))
		},
	})
}

// LevelString returns the label of the given level, colored
// for the given output: debug is faint, info is blue,
// warn is yellow and error is red.
func LevelString(out *termenv.Output, level slog.Level) string {
	s := out.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case level >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}
