// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import "cogentcore.org/xgl/linalg"

// The Move methods change the target position. Those without a suffix
// move along the current camera axes, so that moving forward while looking
// up also climbs. The Aligned variants move along the axes of the current
// yaw alone, level with the ground, and up and down along world Y.

// MoveForward moves the target position along the view direction.
func (c *Camera) MoveForward(distance float32) {
	c.targetPos.SetAdd(c.front.MulScalar(distance))
}

// MoveBackward moves the target position against the view direction.
func (c *Camera) MoveBackward(distance float32) {
	c.MoveForward(-distance)
}

// MoveLeft moves the target position to the left of the camera.
func (c *Camera) MoveLeft(distance float32) {
	c.MoveRight(-distance)
}

// MoveRight moves the target position to the right of the camera.
func (c *Camera) MoveRight(distance float32) {
	c.targetPos.SetAdd(c.right.MulScalar(distance))
}

// MoveUp moves the target position along the camera up direction.
func (c *Camera) MoveUp(distance float32) {
	c.targetPos.SetAdd(c.up.MulScalar(distance))
}

// MoveDown moves the target position against the camera up direction.
func (c *Camera) MoveDown(distance float32) {
	c.MoveUp(-distance)
}

// Move moves the target position by shift in camera coordinates:
// X to the right, Y up and Z backward.
func (c *Camera) Move(shift linalg.Vector3f) {
	d := c.right.MulScalar(shift.X()).Add(c.up.MulScalar(shift.Y())).Sub(c.front.MulScalar(shift.Z()))
	c.targetPos.SetAdd(d)
}

// MoveForwardAligned moves the target position horizontally
// in the direction the camera faces.
func (c *Camera) MoveForwardAligned(distance float32) {
	sy, cy := linalg.Sin(c.yaw), linalg.Cos(c.yaw)
	c.targetPos[0] += distance * sy
	c.targetPos[2] -= distance * cy
}

// MoveBackwardAligned moves the target position horizontally
// away from the direction the camera faces.
func (c *Camera) MoveBackwardAligned(distance float32) {
	c.MoveForwardAligned(-distance)
}

// MoveLeftAligned moves the target position horizontally to the left.
func (c *Camera) MoveLeftAligned(distance float32) {
	c.MoveRightAligned(-distance)
}

// MoveRightAligned moves the target position horizontally to the right.
func (c *Camera) MoveRightAligned(distance float32) {
	sy, cy := linalg.Sin(c.yaw), linalg.Cos(c.yaw)
	c.targetPos[0] += distance * cy
	c.targetPos[2] += distance * sy
}

// MoveUpAligned moves the target position up along world Y.
func (c *Camera) MoveUpAligned(distance float32) {
	c.targetPos[1] += distance
}

// MoveDownAligned moves the target position down along world Y.
func (c *Camera) MoveDownAligned(distance float32) {
	c.targetPos[1] -= distance
}

// MoveAligned moves the target position by shift in the level camera
// coordinates of the current yaw: X to the right, Y along world Y and
// Z backward.
func (c *Camera) MoveAligned(shift linalg.Vector3f) {
	sy, cy := linalg.Sin(c.yaw), linalg.Cos(c.yaw)
	c.targetPos[0] += shift.X()*cy - shift.Z()*sy
	c.targetPos[1] += shift.Y()
	c.targetPos[2] += shift.X()*sy + shift.Z()*cy
}
