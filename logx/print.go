// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
)

// Printf is equivalent to [fmt.Printf], but it only prints if the given level is at or above [UserLevel].
func Printf(level slog.Level, format string, a ...any) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	return fmt.Printf(format, a...)
}

// PrintfDebug is equivalent to [Printf] with [slog.LevelDebug].
func PrintfDebug(format string, a ...any) (n int, err error) {
	return Printf(slog.LevelDebug, format, a...)
}

// PrintfInfo is equivalent to [Printf] with [slog.LevelInfo].
func PrintfInfo(format string, a ...any) (n int, err error) {
	return Printf(slog.LevelInfo, format, a...)
}

// PrintlnWarn prints the given values followed by a newline
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintlnWarn(a ...any) (n int, err error) {
	if UserLevel > slog.LevelWarn {
		return 0, nil
	}
	return fmt.Println(a...)
}
