// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch watches the given config file and sends a freshly loaded
// config on the returned channel each time the file is written or
// replaced, until the context is done. Configs that fail to load are
// logged and skipped. The directory of the file is watched, so that
// editors that save by renaming a new file over the old one are seen.
// The channel is closed when watching stops.
func Watch(ctx context.Context, filename string) (<-chan *Config, error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	filename, err = filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: creating file watcher: %w", err)
	}
	err = watcher.Add(filepath.Dir(filename))
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config: watching %q: %w", filename, err)
	}
	ch := make(chan *Config, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filename {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(filename)
				if err != nil {
					slog.Error("config: reloading", "file", filename, "err", err)
					continue
				}
				slog.Info("config: reloaded", "file", filename)
				select {
				case ch <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config: file watcher error: " + err.Error())
			}
		}
	}()
	return ch, nil
}
