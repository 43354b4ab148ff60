// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"cogentcore.org/xgl/linalg"
)

// Pose holds the position, orientation and scale of an object in the
// world, from which its model matrix is built.
// The zero value is not valid: use [NewPose] or call [Pose.Defaults].
type Pose[T linalg.Float] struct {

	// position of the center of the object
	Pos linalg.Vector3[T]

	// scale along each axis of the object
	Scale linalg.Vector3[T]

	// rotation of the object
	Rotation linalg.Matrix4[T]

	// Model matrix, containing all of the position, rotation and scale
	// information, as computed by UpdateMatrix.
	Matrix linalg.Matrix4[T] `display:"-"`
}

// NewPose returns a new pose at the origin with no rotation and unit scale.
func NewPose[T linalg.Float]() *Pose[T] {
	ps := &Pose[T]{}
	ps.Defaults()
	return ps
}

// Defaults sets the identity rotation and unit scale if they are zero.
func (ps *Pose[T]) Defaults() {
	if ps.Scale == (linalg.Vector3[T]{}) {
		ps.Scale = linalg.Vector3Scalar[T](1)
	}
	if ps.Rotation.IsEqual(linalg.Matrix4[T]{}) {
		ps.Rotation = linalg.Identity4[T](linalg.ColumnMajor)
	}
	ps.UpdateMatrix()
}

// UpdateMatrix updates the model matrix based on the position, rotation
// and scale. The object is scaled first, then rotated, then translated.
func (ps *Pose[T]) UpdateMatrix() {
	m := ScaleXYZ(ps.Scale.X(), ps.Scale.Y(), ps.Scale.Z())
	apply(&m, ps.Rotation)
	ApplyTranslate(&m, ps.Pos)
	ps.Matrix = m
}

// ModelMatrix updates and returns the model matrix.
func (ps *Pose[T]) ModelMatrix() linalg.Matrix4[T] {
	ps.UpdateMatrix()
	return ps.Matrix
}

// SetScale sets a uniform scale.
func (ps *Pose[T]) SetScale(k T) {
	ps.Scale = linalg.Vector3Scalar(k)
}

// SetEulerRotation sets the rotation from yaw, pitch and roll in radians.
func (ps *Pose[T]) SetEulerRotation(yaw, pitch, roll T) {
	ps.Rotation = Rotate(yaw, pitch, roll)
}

// SetAxisRotation sets rotation from axis and angle in radians.
// The rotation is unchanged on error.
func (ps *Pose[T]) SetAxisRotation(angle T, axis linalg.Vector3[T]) error {
	r, err := RotateAxis(angle, axis)
	if err != nil {
		return err
	}
	ps.Rotation = r
	return nil
}

// RotateOnAxis rotates around the specified axis the specified angle
// in radians, relative to the current rotation.
func (ps *Pose[T]) RotateOnAxis(angle T, axis linalg.Vector3[T]) error {
	_, err := ApplyRotateAxis(&ps.Rotation, angle, axis)
	return err
}

// MoveOnAxis moves (translates) the specified distance along the given
// local axis, relative to the current rotation.
func (ps *Pose[T]) MoveOnAxis(axis linalg.Vector3[T], dist T) error {
	n, err := axis.Normalize()
	if err != nil {
		return err
	}
	ps.Pos.SetAdd(ps.Rotation.MulDirection(n).MulScalar(dist))
	return nil
}

// MVP returns the model-view-projection matrix of this pose for the
// given camera view and projection matrices, updating the model matrix.
func (ps *Pose[T]) MVP(view, projection linalg.Matrix4[T]) linalg.Matrix4[T] {
	ps.UpdateMatrix()
	return projection.Mul(view).Mul(ps.Matrix)
}
