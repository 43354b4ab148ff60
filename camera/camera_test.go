// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"testing"

	"cogentcore.org/xgl/base/logx"
	"cogentcore.org/xgl/base/tolassert"
	"cogentcore.org/xgl/linalg"
	"cogentcore.org/xgl/projection"
	"cogentcore.org/xgl/view"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordLogger returns a logger writing plain text lines to buf.
func recordLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(logx.NewHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}, termenv.WithProfile(termenv.Ascii)))
}

func TestDefaults(t *testing.T) {
	c := New()
	tolassert.EqualTol(t, float32(math.Pi/4), c.Fov(), 1e-6)
	assert.Equal(t, c.Fov(), c.TargetFov())
	tolassert.EqualTol(t, float32(16.0/9), c.Aspect(), 1e-6)
	near, far := c.NearFar()
	assert.Equal(t, float32(0.1), near)
	assert.Equal(t, float32(100), far)
	yaw, pitch, roll := c.Euler()
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)
	assert.Zero(t, roll)
	assert.Equal(t, linalg.Vector3f{}, c.Position())

	assert.True(t, c.View().IsEqual(linalg.Identity4[float32](linalg.ColumnMajor)))
	proj, err := projection.PerspFov(c.Fov(), c.Aspect(), near, far)
	require.NoError(t, err)
	assert.True(t, c.Projection().IsEqual(proj))

	front, up, right := c.Axes()
	assert.Equal(t, linalg.Vec3[float32](0, 0, -1), front)
	assert.Equal(t, linalg.Vec3[float32](0, 1, 0), up)
	assert.Equal(t, linalg.Vec3[float32](1, 0, 0), right)
}

func TestUpdateSnap(t *testing.T) {
	c := New()
	c.SetPosition(linalg.Vec3[float32](0, 0, 3))
	c.SmoothRotate(0)
	c.SmoothZoom(0)
	c.RotateYaw(0.5)
	require.NoError(t, c.Update(1))

	want := view.Euler(linalg.Vec3[float32](0, 0, 3), 0.5, 0, 0)
	assert.Equal(t, want, c.View())
	assert.Equal(t, linalg.Vec3[float32](0, 0, 3), c.Position())
}

func TestUpdateSmoothing(t *testing.T) {
	c := New()
	c.SmoothMove(1)
	c.SmoothRotate(3)
	c.SmoothZoom(-5)
	c.SetPosition(linalg.Vec3[float32](4, 0, 0))
	c.RotateYaw(1)
	c.SetFov(1)
	require.NoError(t, c.Update(1))

	// k = 1/(1+s/dt): half way for s = dt, a quarter for s = 3dt,
	// and all of the way for a negative constant treated as zero
	assert.True(t, c.Position().IsApproxEqual(linalg.Vec3[float32](2, 0, 0), 1e-6), "%v", c.Position())
	yaw, _, _ := c.Euler()
	tolassert.EqualTol(t, 0.25, yaw, 1e-6)
	assert.Equal(t, float32(1), c.Fov())

	for i := 0; i < 1000; i++ {
		require.NoError(t, c.Update(0.1))
	}
	assert.True(t, c.Position().IsApproxEqual(c.TargetPosition(), 1e-4))
	yaw, _, _ = c.Euler()
	tolassert.EqualTol(t, 1, yaw, 1e-4)
	assert.True(t, c.View().IsApproxEqual(view.Euler(c.Position(), yaw, 0, 0), 1e-6))
}

func TestUpdateInvalid(t *testing.T) {
	c := New()
	c.SetPosition(linalg.Vec3[float32](1, 2, 3))
	before := c.View()
	for _, dt := range []float32{0, -1, float32(math.NaN())} {
		assert.ErrorIs(t, c.Update(dt), linalg.ErrInvalidArgument)
	}
	assert.Equal(t, before, c.View())
	assert.Equal(t, linalg.Vector3f{}, c.Position())
}

func TestSetEulerClamp(t *testing.T) {
	var buf bytes.Buffer
	c := New()
	c.SetLogger(recordLogger(&buf))

	clamped, err := c.SetEuler(0, 10, 0)
	require.NoError(t, err)
	assert.True(t, clamped)
	_, pitch, _ := c.TargetEuler()
	assert.Equal(t, float32(math.Pi/2), pitch)
	assert.Contains(t, buf.String(), "WARN camera value out of bounds value=pitch given=10")

	buf.Reset()
	clamped, err = c.SetEuler(0, -10, 0)
	require.NoError(t, err)
	assert.True(t, clamped)
	_, pitch, _ = c.TargetEuler()
	assert.Equal(t, float32(-math.Pi/2), pitch)

	buf.Reset()
	clamped, err = c.SetEuler(1, 0.5, 0.25)
	require.NoError(t, err)
	assert.False(t, clamped)
	assert.Empty(t, buf.String())
	yaw, pitch, roll := c.TargetEuler()
	assert.Equal(t, float32(1), yaw)
	assert.Equal(t, float32(0.5), pitch)
	assert.Equal(t, float32(0.25), roll)
}

func TestSetLen(t *testing.T) {
	var buf bytes.Buffer
	c := New()
	c.SetLogger(recordLogger(&buf))

	clamped, err := c.SetLen(3, 2, 1, 50)
	require.NoError(t, err)
	assert.True(t, clamped)
	assert.Equal(t, float32(MaxFov), c.TargetFov())
	assert.Contains(t, buf.String(), "value=fov")
	assert.Equal(t, float32(2), c.Aspect())

	buf.Reset()
	clamped, err = c.SetFov(0.01)
	require.NoError(t, err)
	assert.True(t, clamped)
	assert.Equal(t, float32(MinFov), c.TargetFov())
	assert.NotEmpty(t, buf.String())
	clamped, err = c.SetFov(1)
	require.NoError(t, err)
	assert.False(t, clamped)

	for _, bad := range [][3]float32{{0, 0.1, 10}, {1, 0, 10}, {1, 1, 1}, {1, 2, 1}} {
		_, err := c.SetLen(1, bad[0], bad[1], bad[2])
		assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	}
	near, far := c.NearFar()
	assert.Equal(t, float32(1), near)
	assert.Equal(t, float32(50), far)

	assert.ErrorIs(t, c.SetAspect(0), linalg.ErrInvalidArgument)
	assert.ErrorIs(t, c.SetAspect(-1), linalg.ErrInvalidArgument)
	require.NoError(t, c.SetAspect(0.5))
	assert.Equal(t, float32(0.5), c.Aspect())

	require.NoError(t, c.Update(1))
	proj, err := projection.PerspFov[float32](1, 0.5, 1, 50)
	require.NoError(t, err)
	assert.True(t, c.Projection().IsEqual(proj))
}

func TestZoom(t *testing.T) {
	c := New()
	fov := c.TargetFov()
	require.NoError(t, c.Zoom(0))
	tolassert.EqualTol(t, fov, c.TargetFov(), 1e-6)

	require.NoError(t, c.Zoom(0.5))
	tolassert.EqualTol(t, 2*float32(math.Atan(0.5*math.Tan(math.Pi/8))), c.TargetFov(), 1e-6)

	require.NoError(t, c.Zoom(-10))
	assert.Equal(t, float32(MaxFov), c.TargetFov())

	require.NoError(t, c.Zoom(1))
	assert.Equal(t, float32(MinFov), c.TargetFov())
}

func TestNaNInputs(t *testing.T) {
	nan := float32(math.NaN())
	var buf bytes.Buffer
	c := New()
	c.SetLogger(recordLogger(&buf))
	_, err := c.SetEuler(0.5, 0.25, 0)
	require.NoError(t, err)
	_, err = c.SetFov(1)
	require.NoError(t, err)

	clamped, err := c.SetEuler(0, nan, 0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	assert.False(t, clamped)
	_, err = c.SetEuler(nan, 0, 0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = c.SetFov(nan)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = c.SetLen(nan, 1, 1, 10)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	assert.ErrorIs(t, c.Zoom(nan), linalg.ErrInvalidArgument)
	assert.ErrorIs(t, c.LookAt(linalg.Vec3(nan, 0, 0)), linalg.ErrInvalidArgument)
	c.Rotate(nan, nan, nan)
	assert.Empty(t, buf.String())

	yaw, pitch, roll := c.TargetEuler()
	assert.Equal(t, float32(0.5), yaw)
	assert.Equal(t, float32(0.25), pitch)
	assert.Equal(t, float32(0), roll)
	assert.Equal(t, float32(1), c.TargetFov())
	near, far := c.NearFar()
	assert.Equal(t, float32(0.1), near)
	assert.Equal(t, float32(100), far)

	// the camera keeps updating to finite matrices
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Update(1))
	}
	v := c.View()
	for _, x := range v.Data() {
		assert.False(t, linalg.IsNaN(x), "%v", v)
	}
	assert.Equal(t, float32(1), c.Fov())

	s := &Settings{}
	s.Defaults()
	s.Pitch = nan
	_, err = s.Apply(c)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	assert.Equal(t, float32(1), c.TargetFov())
}

func TestRotate(t *testing.T) {
	c := New()
	c.RotatePitch(1)
	c.RotatePitch(1)
	_, pitch, _ := c.TargetEuler()
	assert.Equal(t, float32(math.Pi/2), pitch)

	c.Rotate(0.5, -4, 0.25)
	yaw, pitch, roll := c.TargetEuler()
	assert.Equal(t, float32(0.5), yaw)
	assert.Equal(t, float32(-math.Pi/2), pitch)
	assert.Equal(t, float32(0.25), roll)
	c.RotateRoll(0.25)
	_, _, roll = c.TargetEuler()
	assert.Equal(t, float32(0.5), roll)
}

func TestLookAt(t *testing.T) {
	c := New()
	c.SetPosition(linalg.Vec3[float32](0, 0, 3))
	require.NoError(t, c.LookAt(linalg.Vec3[float32](3, 0, 3)))
	require.NoError(t, c.Snap())
	front, _, _ := c.Axes()
	assert.True(t, front.IsApproxEqual(linalg.Vec3[float32](1, 0, 0), 1e-6), "%v", front)

	assert.ErrorIs(t, c.LookAt(linalg.Vec3[float32](0, 0, 3)), linalg.ErrZeroVector)
}

func TestMove(t *testing.T) {
	c := New()
	c.SetEuler(math.Pi/2, 0, 0)
	require.NoError(t, c.Snap())

	// facing +X
	c.MoveForward(2)
	assert.True(t, c.TargetPosition().IsApproxEqual(linalg.Vec3[float32](2, 0, 0), 1e-6))
	c.MoveBackward(2)
	c.MoveRight(1)
	assert.True(t, c.TargetPosition().IsApproxEqual(linalg.Vec3[float32](0, 0, 1), 1e-6))
	c.MoveLeft(1)
	c.MoveUp(3)
	assert.True(t, c.TargetPosition().IsApproxEqual(linalg.Vec3[float32](0, 3, 0), 1e-6))
	c.MoveDown(3)
	assert.True(t, c.TargetPosition().IsApproxEqual(linalg.Vector3f{}, 1e-6))

	c.Move(linalg.Vec3[float32](1, 2, 3))
	assert.True(t, c.TargetPosition().IsApproxEqual(linalg.Vec3[float32](-3, 2, 1), 1e-6), "%v", c.TargetPosition())
}

func TestMoveAligned(t *testing.T) {
	c := New()
	c.SetEuler(math.Pi/2, 1, 0)
	require.NoError(t, c.Snap())

	// looking up and to +X: aligned movement stays level
	c.MoveForwardAligned(2)
	assert.True(t, c.TargetPosition().IsApproxEqual(linalg.Vec3[float32](2, 0, 0), 1e-6), "%v", c.TargetPosition())
	c.MoveBackwardAligned(2)
	c.MoveRightAligned(1)
	assert.True(t, c.TargetPosition().IsApproxEqual(linalg.Vec3[float32](0, 0, 1), 1e-6), "%v", c.TargetPosition())
	c.MoveLeftAligned(1)
	c.MoveUpAligned(3)
	assert.True(t, c.TargetPosition().IsApproxEqual(linalg.Vec3[float32](0, 3, 0), 1e-6))
	c.MoveDownAligned(3)

	c.MoveAligned(linalg.Vec3[float32](1, 2, 3))
	assert.True(t, c.TargetPosition().IsApproxEqual(linalg.Vec3[float32](-3, 2, 1), 1e-6), "%v", c.TargetPosition())

	// the non-aligned forward climbs with the pitch
	c.SetPosition(linalg.Vector3f{})
	c.MoveForward(1)
	assert.Greater(t, c.TargetPosition().Y(), float32(0.8))
}

func TestUniforms(t *testing.T) {
	c := New()
	c.SetPosition(linalg.Vec3[float32](1, 2, 3))
	require.NoError(t, c.Update(1))
	u := c.Uniforms()
	assert.Equal(t, c.View(), u.View)
	assert.Equal(t, c.Projection(), u.Projection)

	d := u.Data()
	require.Len(t, d, 32)
	// column-major: the translation is in elements 12 to 14
	assert.Equal(t, []float32{-1, -2, -3}, d[12:15])
	assert.Equal(t, float32(-1), d[16+11])
}

func TestSettings(t *testing.T) {
	var s Settings
	s.Defaults()
	c, err := NewFromSettings(&s)
	require.NoError(t, err)
	assert.True(t, c.View().IsEqual(New().View()))
	assert.True(t, c.Projection().IsApproxEqual(New().Projection(), 1e-6))

	s.Position = linalg.Vec3[float32](0, 1, 5)
	s.Yaw = 90
	s.Pitch = 100
	s.SmoothFov = 2
	c = New()
	c.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	clamped, err := s.Apply(c)
	require.NoError(t, err)
	assert.True(t, clamped)
	assert.Equal(t, s.Position, c.TargetPosition())
	yaw, pitch, _ := c.TargetEuler()
	tolassert.EqualTol(t, float32(math.Pi/2), yaw, 1e-6)
	assert.Equal(t, float32(math.Pi/2), pitch)

	s.Near = 0
	_, err = NewFromSettings(&s)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
}
