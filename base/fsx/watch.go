// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is how long Watch waits after the last write event
// before calling the change function, as editors often save in bursts.
var WatchDebounce = 50 * time.Millisecond

// Watch calls fun every time the given file is written or re-created,
// until ctx is done. The directory of the file is watched rather than the
// file itself, so that editors that save by rename are handled.
// Errors from the watcher are logged and watching continues.
func Watch(ctx context.Context, file string, fun func(file string)) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(WatchDebounce)
			} else {
				timer.Reset(WatchDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			fun(abs)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("fsx.Watch", "file", abs, "err", err)
		}
	}
}
