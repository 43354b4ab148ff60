// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/xgl/linalg"
)

// Settings are the configurable parameters of a [Camera], as read from
// a config file. Angles are in degrees.
type Settings struct {

	// initial position
	Position linalg.Vector3f `toml:"position" yaml:"position"`

	// initial yaw: positive turns right from looking down -Z
	Yaw float32 `toml:"yaw" yaml:"yaw"`

	// initial pitch: positive looks up
	Pitch float32 `toml:"pitch" yaml:"pitch"`

	// initial roll about the view direction
	Roll float32 `toml:"roll" yaml:"roll"`

	// vertical field of view in degrees
	Fov float32 `toml:"fov" yaml:"fov"`

	// aspect ratio (width / height)
	Aspect float32 `toml:"aspect" yaml:"aspect"`

	// near clipping plane distance
	Near float32 `toml:"near" yaml:"near"`

	// far clipping plane distance
	Far float32 `toml:"far" yaml:"far"`

	// smoothing time constant of the position; 0 for none
	SmoothPosition float32 `toml:"smooth_position" yaml:"smooth_position"`

	// smoothing time constant of the orientation; 0 for none
	SmoothEuler float32 `toml:"smooth_euler" yaml:"smooth_euler"`

	// smoothing time constant of the field of view; 0 for none
	SmoothFov float32 `toml:"smooth_fov" yaml:"smooth_fov"`
}

// Defaults sets the settings of a new [Camera].
func (s *Settings) Defaults() {
	*s = Settings{
		Fov:    45,
		Aspect: float32(16) / 9,
		Near:   0.1,
		Far:    100,
	}
}

// Apply sets the target state, lens and smoothing of the camera from these
// settings. Out of range pitch and fov values are clamped, as reported by
// clamped. It returns an error for an invalid lens or a NaN angle, in
// which case the camera is unchanged.
func (s *Settings) Apply(c *Camera) (clamped bool, err error) {
	yaw, pitch, roll := linalg.DegToRad(s.Yaw), linalg.DegToRad(s.Pitch), linalg.DegToRad(s.Roll)
	if err := checkNaN("euler angles", yaw, pitch, roll); err != nil {
		return false, err
	}
	lc, err := c.SetLen(linalg.DegToRad(s.Fov), s.Aspect, s.Near, s.Far)
	if err != nil {
		return false, err
	}
	ec, _ := c.SetEuler(yaw, pitch, roll)
	c.SetPosition(s.Position)
	c.SmoothMove(s.SmoothPosition)
	c.SmoothRotate(s.SmoothEuler)
	c.SmoothZoom(s.SmoothFov)
	return lc || ec, nil
}

// NewFromSettings returns a new camera with the given settings,
// already at its target state.
func NewFromSettings(s *Settings) (*Camera, error) {
	c := New()
	if _, err := s.Apply(c); err != nil {
		return nil, err
	}
	return c, c.Snap()
}
