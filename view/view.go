// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view builds the 4x4 view matrices that take world coordinates
// into the eye space of a camera, where the camera sits at the origin
// looking down -Z with +Y up.
//
// Orientations are given as Euler angles in radians: a yaw of 0 looks down
// -Z and positive yaw turns toward +X, positive pitch looks up, and roll
// turns the camera about its view direction. The camera axes for a yaw y
// and pitch p (before roll) are
//
//	front = ( sin y cos p, sin p, -cos y cos p)
//	right = ( cos y,       0,      sin y      )
//	up    = (-sin y sin p, cos p,  cos y sin p)
package view

import (
	"fmt"

	"cogentcore.org/xgl/linalg"
)

// collinearTol is the length below which the cross product of the front
// and up directions is considered zero.
const collinearTol = 1e-6

// fromAxes returns the view matrix with the given camera axes as its
// rotation rows, translated so that pos maps to the origin.
func fromAxes[T linalg.Float](pos, right, up, back linalg.Vector3[T]) linalg.Matrix4[T] {
	return linalg.Matrix4FromRows(linalg.ColumnMajor,
		linalg.Vec4FromXYZ(right, -right.Dot(pos)),
		linalg.Vec4FromXYZ(up, -up.Dot(pos)),
		linalg.Vec4FromXYZ(back, -back.Dot(pos)),
		linalg.Vec4[T](0, 0, 0, 1),
	)
}

// LookAt returns the view matrix of a camera at pos looking at target,
// with the given up reference direction. It returns [linalg.ErrZeroVector]
// if target is pos or the view direction is parallel to up.
func LookAt[T linalg.Float](pos, target, up linalg.Vector3[T]) (linalg.Matrix4[T], error) {
	front, err := target.Sub(pos).Normalize()
	if err != nil {
		return linalg.Matrix4[T]{}, fmt.Errorf("%w: look-at target equals position %v", linalg.ErrZeroVector, pos)
	}
	side := front.Cross(up)
	if side.Norm() < collinearTol {
		return linalg.Matrix4[T]{}, fmt.Errorf("%w: view direction %v is parallel to up %v", linalg.ErrZeroVector, front, up)
	}
	right, _ := side.Normalize()
	upv := right.Cross(front)
	return fromAxes(pos, right, upv, front.Negate()), nil
}

// Euler returns the view matrix of a camera at pos with the given yaw,
// pitch and roll in radians. It is the inverse of
// transform.Rotate(yaw, pitch, roll) followed by a translation to pos.
func Euler[T linalg.Float](pos linalg.Vector3[T], yaw, pitch, roll T) linalg.Matrix4[T] {
	sy, cy := linalg.Sin(yaw), linalg.Cos(yaw)
	sp, cp := linalg.Sin(pitch), linalg.Cos(pitch)
	sr, cr := linalg.Sin(roll), linalg.Cos(roll)
	right := linalg.Vec3(cr*cy-sr*sy*sp, sr*cp, cr*sy+sr*cy*sp)
	up := linalg.Vec3(-sr*cy-cr*sy*sp, cr*cp, -sr*sy+cr*cy*sp)
	back := linalg.Vec3(-sy*cp, -sp, cy*cp)
	return fromAxes(pos, right, up, back)
}

// Axes returns the front, up and right directions of the camera
// with the given view matrix, in world coordinates.
func Axes[T linalg.Float](view linalg.Matrix4[T]) (front, up, right linalg.Vector3[T]) {
	front = view.Row(2).XYZ().Negate()
	up = view.Row(1).XYZ()
	right = view.Row(0).XYZ()
	return
}

// EulerFromAxes returns the yaw and pitch in radians of a camera looking
// along front, which need not be normalized. These are the angles for
// which [Euler] with zero roll has the same view direction.
func EulerFromAxes[T linalg.Float](front linalg.Vector3[T]) (yaw, pitch T) {
	yaw = linalg.Atan2(front.X(), -front.Z())
	pitch = linalg.Atan2(front.Y(), linalg.Sqrt(front.X()*front.X()+front.Z()*front.Z()))
	return
}

// Retranslate returns the given view matrix moved to the camera
// position pos, keeping its rotation.
func Retranslate[T linalg.Float](view linalg.Matrix4[T], pos linalg.Vector3[T]) linalg.Matrix4[T] {
	for r := 0; r < 3; r++ {
		view.Set(r, 3, -view.Row(r).XYZ().Dot(pos))
	}
	return view
}
