// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides a first-person perspective camera whose
// position, orientation and field of view follow target values with
// exponential smoothing, producing the view and projection matrices
// for rendering.
package camera

import (
	"fmt"
	"log/slog"

	"cogentcore.org/xgl/linalg"
	"cogentcore.org/xgl/projection"
	"cogentcore.org/xgl/view"
)

// Limits of the camera orientation and field of view, in radians.
const (
	// MaxPitch is the largest magnitude of the pitch: straight up or down.
	MaxPitch = linalg.Pi / 2

	// MinFov is the narrowest vertical field of view (10 degrees).
	MinFov = linalg.Pi / 18

	// MaxFov is the widest vertical field of view (120 degrees).
	MaxFov = 2 * linalg.Pi / 3
)

// Camera is a perspective camera with a current and a target state.
// Input handling sets the target state through the Set, Move, Rotate and
// Zoom methods, and once per frame [Camera.Update] moves the current state
// toward the target and recomputes the matrices returned by [Camera.View]
// and [Camera.Projection].
//
// A Camera is not safe for concurrent use.
type Camera struct {
	pos, targetPos linalg.Vector3f

	yaw, pitch, roll                   float32
	targetYaw, targetPitch, targetRoll float32

	fov, targetFov float32
	aspect         float32
	near, far      float32

	// smoothing time constants, in the units of the Update time step
	smoothPos, smoothEuler, smoothFov float32

	front, up, right linalg.Vector3f

	viewMat, projMat linalg.Matrix4f

	logger *slog.Logger
}

// New returns a new camera at the origin looking down -Z with a 45 degree
// field of view, a 16:9 aspect ratio, near and far planes at 0.1 and 100,
// and no smoothing.
func New() *Camera {
	c := &Camera{
		fov:    linalg.DegToRad[float32](45),
		aspect: float32(16) / 9,
		near:   0.1,
		far:    100,
	}
	c.targetFov = c.fov
	c.updateView()
	c.projMat, _ = projection.PerspFov(c.fov, c.aspect, c.near, c.far)
	return c
}

// SetLogger sets the logger used to report clamped values.
// A nil logger uses [slog.Default].
func (c *Camera) SetLogger(l *slog.Logger) {
	c.logger = l
}

func (c *Camera) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// clamp returns x clamped to [lo, hi] and whether it was out of range,
// in which case a warning is logged.
func (c *Camera) clamp(name string, x, lo, hi float32) (float32, bool) {
	v := linalg.Clamp(x, lo, hi)
	if v == x {
		return x, false
	}
	c.log().Warn("camera value out of bounds", "value", name, "given", x, "clamped", v)
	return v, true
}

// checkNaN returns [linalg.ErrInvalidArgument] if any of the given
// values of the named input is NaN.
func checkNaN(name string, xs ...float32) error {
	for _, x := range xs {
		if linalg.IsNaN(x) {
			return fmt.Errorf("%w: camera %s %v is NaN", linalg.ErrInvalidArgument, name, xs)
		}
	}
	return nil
}

// updateView recomputes the view matrix and axes from the current state.
func (c *Camera) updateView() {
	c.viewMat = view.Euler(c.pos, c.yaw, c.pitch, c.roll)
	c.front, c.up, c.right = view.Axes(c.viewMat)
}

// Update moves the current state toward the target state by the time step
// dt and recomputes the view and projection matrices. Each of position,
// orientation and field of view is moved by the fraction 1/(1 + s/dt),
// where s is its smoothing time constant, so a time constant of zero
// reaches the target immediately. It returns [linalg.ErrInvalidArgument]
// and leaves the camera unchanged unless dt is positive.
func (c *Camera) Update(dt float32) error {
	if !(dt > 0) {
		return fmt.Errorf("%w: camera time step %v must be positive", linalg.ErrInvalidArgument, dt)
	}
	k := smoothing(c.smoothEuler, dt)
	yaw := c.targetYaw*k + c.yaw*(1-k)
	pitch := c.targetPitch*k + c.pitch*(1-k)
	roll := c.targetRoll*k + c.roll*(1-k)

	k = smoothing(c.smoothPos, dt)
	pos := c.targetPos.MulScalar(k).Add(c.pos.MulScalar(1 - k))

	k = smoothing(c.smoothFov, dt)
	fov := c.targetFov*k + c.fov*(1-k)
	proj, err := projection.PerspFov(fov, c.aspect, c.near, c.far)
	if err != nil {
		return err
	}

	c.yaw, c.pitch, c.roll = yaw, pitch, roll
	c.pos = pos
	c.updateView()
	c.fov = fov
	c.projMat = proj
	return nil
}

// Snap sets the current state to the target state, skipping any
// smoothing, and recomputes the view and projection matrices.
func (c *Camera) Snap() error {
	proj, err := projection.PerspFov(c.targetFov, c.aspect, c.near, c.far)
	if err != nil {
		return err
	}
	c.yaw, c.pitch, c.roll = c.targetYaw, c.targetPitch, c.targetRoll
	c.pos = c.targetPos
	c.updateView()
	c.fov = c.targetFov
	c.projMat = proj
	return nil
}

// smoothing returns the fraction of the remaining distance to the
// target covered in the time step dt with time constant s.
func smoothing(s, dt float32) float32 {
	return 1 / (1 + s/dt)
}

// View returns the view matrix as of the last [Camera.Update].
func (c *Camera) View() linalg.Matrix4f { return c.viewMat }

// Projection returns the projection matrix as of the last [Camera.Update].
func (c *Camera) Projection() linalg.Matrix4f { return c.projMat }

// Position returns the current position.
func (c *Camera) Position() linalg.Vector3f { return c.pos }

// TargetPosition returns the position the camera is moving toward.
func (c *Camera) TargetPosition() linalg.Vector3f { return c.targetPos }

// Euler returns the current yaw, pitch and roll in radians.
func (c *Camera) Euler() (yaw, pitch, roll float32) { return c.yaw, c.pitch, c.roll }

// TargetEuler returns the target yaw, pitch and roll in radians.
func (c *Camera) TargetEuler() (yaw, pitch, roll float32) {
	return c.targetYaw, c.targetPitch, c.targetRoll
}

// Fov returns the current vertical field of view in radians.
func (c *Camera) Fov() float32 { return c.fov }

// TargetFov returns the target vertical field of view in radians.
func (c *Camera) TargetFov() float32 { return c.targetFov }

// Aspect returns the aspect ratio (width / height).
func (c *Camera) Aspect() float32 { return c.aspect }

// NearFar returns the distances of the near and far clipping planes.
func (c *Camera) NearFar() (near, far float32) { return c.near, c.far }

// Axes returns the current front, up and right directions.
func (c *Camera) Axes() (front, up, right linalg.Vector3f) { return c.front, c.up, c.right }

// SetPosition sets the target position.
func (c *Camera) SetPosition(pos linalg.Vector3f) {
	c.targetPos = pos
}

// SetEuler sets the target orientation in radians. The pitch is clamped
// to [-MaxPitch, MaxPitch], and clamped reports whether it was. It returns
// [linalg.ErrInvalidArgument] and changes nothing if any angle is NaN.
func (c *Camera) SetEuler(yaw, pitch, roll float32) (clamped bool, err error) {
	if err := checkNaN("euler angles", yaw, pitch, roll); err != nil {
		return false, err
	}
	c.targetYaw = yaw
	c.targetPitch, clamped = c.clamp("pitch", pitch, -MaxPitch, MaxPitch)
	c.targetRoll = roll
	return clamped, nil
}

// LookAt sets the target orientation to look from the target position
// toward the given point, with no roll. It returns [linalg.ErrZeroVector]
// if the point is the target position, and [linalg.ErrInvalidArgument]
// if it has a NaN coordinate.
func (c *Camera) LookAt(target linalg.Vector3f) error {
	if err := checkNaN("look-at target", target[:]...); err != nil {
		return err
	}
	front := target.Sub(c.targetPos)
	if front == (linalg.Vector3f{}) {
		return fmt.Errorf("%w: camera look-at target equals position", linalg.ErrZeroVector)
	}
	c.targetYaw, c.targetPitch = view.EulerFromAxes(front)
	c.targetRoll = 0
	return nil
}

// SetLen sets the lens: the target field of view in radians, the aspect
// ratio and the clipping planes. The field of view is clamped to
// [MinFov, MaxFov], and clamped reports whether it was. It returns
// [linalg.ErrInvalidArgument] and changes nothing unless
// 0 < aspect and 0 < near < far, or if fov is NaN.
func (c *Camera) SetLen(fov, aspect, near, far float32) (clamped bool, err error) {
	if err := checkNaN("fov", fov); err != nil {
		return false, err
	}
	if !(aspect > 0) {
		return false, fmt.Errorf("%w: aspect ratio %v must be positive", linalg.ErrInvalidArgument, aspect)
	}
	if !(near > 0 && far > near) {
		return false, fmt.Errorf("%w: clipping planes near %v far %v", linalg.ErrInvalidArgument, near, far)
	}
	c.targetFov, clamped = c.clamp("fov", fov, MinFov, MaxFov)
	c.aspect = aspect
	c.near, c.far = near, far
	return clamped, nil
}

// SetFov sets the target vertical field of view in radians, clamped to
// [MinFov, MaxFov]. It reports whether it was clamped, and returns
// [linalg.ErrInvalidArgument] leaving the target unchanged for NaN.
func (c *Camera) SetFov(fov float32) (clamped bool, err error) {
	if err := checkNaN("fov", fov); err != nil {
		return false, err
	}
	c.targetFov, clamped = c.clamp("fov", fov, MinFov, MaxFov)
	return clamped, nil
}

// SetAspect sets the aspect ratio (width / height), as after a resize.
// It returns [linalg.ErrInvalidArgument] unless aspect is positive.
func (c *Camera) SetAspect(aspect float32) error {
	if !(aspect > 0) {
		return fmt.Errorf("%w: aspect ratio %v must be positive", linalg.ErrInvalidArgument, aspect)
	}
	c.aspect = aspect
	return nil
}

// SmoothMove sets the smoothing time constant of the position.
// Negative values are treated as zero.
func (c *Camera) SmoothMove(factor float32) { c.smoothPos = max(factor, 0) }

// SmoothRotate sets the smoothing time constant of the orientation.
// Negative values are treated as zero.
func (c *Camera) SmoothRotate(factor float32) { c.smoothEuler = max(factor, 0) }

// SmoothZoom sets the smoothing time constant of the field of view.
// Negative values are treated as zero.
func (c *Camera) SmoothZoom(factor float32) { c.smoothFov = max(factor, 0) }

// The Rotate methods ignore NaN angles.

// RotateYaw turns the target orientation by angle radians toward the right.
func (c *Camera) RotateYaw(angle float32) {
	if !linalg.IsNaN(angle) {
		c.targetYaw += angle
	}
}

// RotatePitch turns the target orientation by angle radians upward,
// stopping at straight up or down.
func (c *Camera) RotatePitch(angle float32) {
	if linalg.IsNaN(angle) {
		return
	}
	c.targetPitch = linalg.Clamp(c.targetPitch+angle, -MaxPitch, MaxPitch)
}

// RotateRoll turns the target orientation by angle radians about the
// view direction.
func (c *Camera) RotateRoll(angle float32) {
	if !linalg.IsNaN(angle) {
		c.targetRoll += angle
	}
}

// Rotate turns the target orientation by the given yaw, pitch and roll
// in radians, as for mouse look. The pitch stops at straight up or down.
func (c *Camera) Rotate(yaw, pitch, roll float32) {
	c.RotateYaw(yaw)
	c.RotatePitch(pitch)
	c.RotateRoll(roll)
}

// Zoom narrows the target field of view by the given coefficient: 0 leaves
// it unchanged and 1 zooms in completely, with negative values zooming out.
// The tangent of the half angle is scaled by 1-coe, and the result is
// clamped to [MinFov, MaxFov]. It returns [linalg.ErrInvalidArgument]
// and leaves the target unchanged if coe is NaN.
func (c *Camera) Zoom(coe float32) error {
	if err := checkNaN("zoom", coe); err != nil {
		return err
	}
	fov := 2 * linalg.Atan((1-coe)*linalg.Tan(c.targetFov/2))
	c.targetFov = linalg.Clamp(fov, MinFov, MaxFov)
	return nil
}
