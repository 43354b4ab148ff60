// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"cmp"
	"fmt"
	"slices"

	"cogentcore.org/xgl/camera"
	"cogentcore.org/xgl/linalg"
)

// Actions are the camera inputs a script step can apply, with the number
// of arguments each takes. Angles are in degrees.
var Actions = map[string]int{
	"position":     3, // SetPosition
	"euler":        3, // SetEuler
	"look_at":      3, // LookAt
	"fov":          1, // SetFov
	"aspect":       1, // SetAspect
	"move":         3, // Move in camera coordinates
	"move_aligned": 3, // MoveAligned
	"forward":      1,
	"right":        1,
	"up":           1,
	"rotate":       3,
	"zoom":         1,
}

// Step is one camera input of a replay script.
type Step struct {

	// frame at the start of which the input is applied
	Frame int `toml:"frame" yaml:"frame"`

	// name of the input, one of the keys of [Actions]
	Action string `toml:"action" yaml:"action"`

	// arguments of the input
	Args []float32 `toml:"args" yaml:"args"`
}

func (s Step) String() string {
	return fmt.Sprintf("%d: %s %v", s.Frame, s.Action, s.Args)
}

// Validate returns [ErrInvalidStep] for an unknown action, a wrong number
// of arguments or a negative frame.
func (s *Step) Validate() error {
	n, ok := Actions[s.Action]
	if !ok {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidStep, s.Action)
	}
	if len(s.Args) != n {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidStep, s.Action, n, len(s.Args))
	}
	if s.Frame < 0 {
		return fmt.Errorf("%w: negative frame %d", ErrInvalidStep, s.Frame)
	}
	return nil
}

func (s *Step) vec() linalg.Vector3f {
	return linalg.Vec3(s.Args[0], s.Args[1], s.Args[2])
}

// Apply applies the input to the camera.
func (s *Step) Apply(c *camera.Camera) error {
	if err := s.Validate(); err != nil {
		return err
	}
	a := s.Args
	switch s.Action {
	case "position":
		c.SetPosition(s.vec())
	case "euler":
		_, err := c.SetEuler(linalg.DegToRad(a[0]), linalg.DegToRad(a[1]), linalg.DegToRad(a[2]))
		return err
	case "look_at":
		return c.LookAt(s.vec())
	case "fov":
		_, err := c.SetFov(linalg.DegToRad(a[0]))
		return err
	case "aspect":
		return c.SetAspect(a[0])
	case "move":
		c.Move(s.vec())
	case "move_aligned":
		c.MoveAligned(s.vec())
	case "forward":
		c.MoveForward(a[0])
	case "right":
		c.MoveRight(a[0])
	case "up":
		c.MoveUp(a[0])
	case "rotate":
		c.Rotate(linalg.DegToRad(a[0]), linalg.DegToRad(a[1]), linalg.DegToRad(a[2]))
	case "zoom":
		return c.Zoom(a[0])
	}
	return nil
}

// Replay creates a camera from the settings and runs it for the
// configured number of frames. At the start of each frame the steps for
// that frame are applied in script order, then the camera is updated by
// the time step and fn is called with the frame number. Replay stops at
// the first error, including one returned by fn.
func (cfg *Config) Replay(fn func(frame int, c *camera.Camera) error) (*camera.Camera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := camera.NewFromSettings(&cfg.Camera)
	if err != nil {
		return nil, err
	}
	steps := slices.Clone(cfg.Script)
	slices.SortStableFunc(steps, func(a, b Step) int { return cmp.Compare(a.Frame, b.Frame) })
	si := 0
	for frame := 0; frame < cfg.Frames; frame++ {
		for ; si < len(steps) && steps[si].Frame == frame; si++ {
			if err := steps[si].Apply(c); err != nil {
				return c, fmt.Errorf("frame %d: %v: %w", frame, steps[si], err)
			}
		}
		if err := c.Update(cfg.DeltaT); err != nil {
			return c, err
		}
		if fn != nil {
			if err := fn(frame, c); err != nil {
				return c, err
			}
		}
	}
	return c, nil
}
