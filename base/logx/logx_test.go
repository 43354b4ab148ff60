// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lvl := slog.LevelInfo
	h := NewHandler(&buf, &slog.HandlerOptions{Level: &lvl}, termenv.WithProfile(termenv.Ascii))
	l := slog.New(h)

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Info("shown", "frame", 3)
	assert.Equal(t, "INFO shown frame=3\n", buf.String())

	buf.Reset()
	l.With("camera", "main").WithGroup("clamp").Warn("value out of bounds", "pitch", 10)
	assert.Equal(t, "WARN value out of bounds camera=main clamp.pitch=10\n", buf.String())

	buf.Reset()
	lvl = slog.LevelError
	l.Warn("now hidden")
	assert.Empty(t, buf.String())
}

func TestDefaultLogger(t *testing.T) {
	prev, prevLevel := slog.Default(), UserLevel
	defer func() {
		slog.SetDefault(prev)
		UserLevel = prevLevel
	}()
	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	UserLevel = slog.LevelWarn
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
}
