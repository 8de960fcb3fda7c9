// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	UserLevel = slog.LevelInfo
	defer func() { UserLevel = defaultUserLevel }()

	var b bytes.Buffer
	lg := slog.New(NewHandler(&b, termenv.Ascii))
	lg.Debug("hidden")
	lg.Info("shown", "file", "a.qss")
	assert.Equal(t, "level=INFO msg=shown file=a.qss\n", b.String())
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, "WARN", LevelColor(slog.LevelWarn, termenv.Ascii))
	assert.Contains(t, LevelColor(slog.LevelError, termenv.ANSI), "ERROR")
	assert.NotEqual(t, "ERROR", LevelColor(slog.LevelError, termenv.ANSI))
}
