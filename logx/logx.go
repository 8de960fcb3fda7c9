// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level and a
// colored default [slog] handler for command line tools.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set from the command line flags through [LevelFromFlags].
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewHandler returns a text [slog.Handler] that writes to w at [UserLevel],
// with the level names colored for the given termenv profile.
func NewHandler(w io.Writer, profile termenv.Profile) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				return slog.String(a.Key, LevelColor(lv, profile))
			}
			return a
		},
	})
}

// LevelColor returns the name of the level styled for the given profile.
func LevelColor(lv slog.Level, profile termenv.Profile) string {
	s := profile.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		s = s.Foreground(profile.Color("1")).Bold()
	case lv >= slog.LevelWarn:
		s = s.Foreground(profile.Color("3"))
	case lv >= slog.LevelInfo:
		s = s.Foreground(profile.Color("4"))
	default:
		s = s.Foreground(profile.Color("8"))
	}
	return s.String()
}

// SetDefaultLogger sets the default [slog] logger to one that writes
// to stderr at [UserLevel], with color when stderr is a terminal.
func SetDefaultLogger() {
	out := termenv.NewOutput(os.Stderr)
	slog.SetDefault(slog.New(NewHandler(os.Stderr, out.Profile)))
}
