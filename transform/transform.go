// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform builds the 4x4 scale, rotation and translation
// matrices used to place objects in the world. Each builder returns a new
// [linalg.ColumnMajor] matrix, and has an Apply form that composes the
// same transform onto an existing matrix in place, so that
//
//	m := linalg.Identity4[float32](linalg.ColumnMajor)
//	transform.ApplyTranslate(transform.ApplyScale(&m, 2), pos)
//
// scales first and then translates.
package transform

import (
	"fmt"

	"cogentcore.org/xgl/linalg"
)

// apply sets m to x * m, keeping the major order of m, and returns m.
func apply[T linalg.Float](m *linalg.Matrix4[T], x linalg.Matrix4[T]) *linalg.Matrix4[T] {
	*m = x.ToMajor(m.Major()).Mul(*m)
	return m
}

// Scale returns the matrix scaling uniformly by k.
func Scale[T linalg.Float](k T) linalg.Matrix4[T] {
	return ScaleXYZ(k, k, k)
}

// ScaleXYZ returns the matrix scaling by kx, ky and kz along the axes.
func ScaleXYZ[T linalg.Float](kx, ky, kz T) linalg.Matrix4[T] {
	m := linalg.Identity4[T](linalg.ColumnMajor)
	m.Set(0, 0, kx)
	m.Set(1, 1, ky)
	m.Set(2, 2, kz)
	return m
}

// ApplyScale composes a uniform scale by k onto m.
func ApplyScale[T linalg.Float](m *linalg.Matrix4[T], k T) *linalg.Matrix4[T] {
	return apply(m, Scale(k))
}

// ApplyScaleXYZ composes a per-axis scale onto m.
func ApplyScaleXYZ[T linalg.Float](m *linalg.Matrix4[T], kx, ky, kz T) *linalg.Matrix4[T] {
	return apply(m, ScaleXYZ(kx, ky, kz))
}

// Rotate returns the rotation that turns the -Z axis to the view direction
// of a camera with the given yaw, pitch and roll in radians, as used by
// view.Euler: a roll about Z, then a pitch about X, then a yaw about -Y.
func Rotate[T linalg.Float](yaw, pitch, roll T) linalg.Matrix4[T] {
	sy, cy := linalg.Sin(yaw), linalg.Cos(yaw)
	sp, cp := linalg.Sin(pitch), linalg.Cos(pitch)
	sr, cr := linalg.Sin(roll), linalg.Cos(roll)
	return linalg.Matrix4FromRows(linalg.ColumnMajor,
		linalg.Vec4(cr*cy-sr*sy*sp, -sr*cy-cr*sy*sp, -sy*cp, 0),
		linalg.Vec4(sr*cp, cr*cp, -sp, 0),
		linalg.Vec4(cr*sy+sr*cy*sp, -sr*sy+cr*cy*sp, cy*cp, 0),
		linalg.Vec4[T](0, 0, 0, 1),
	)
}

// ApplyRotate composes an Euler rotation onto m.
func ApplyRotate[T linalg.Float](m *linalg.Matrix4[T], yaw, pitch, roll T) *linalg.Matrix4[T] {
	return apply(m, Rotate(yaw, pitch, roll))
}

// RotateAxis returns the counterclockwise rotation by angle radians about
// the given axis, which need not be normalized. It returns
// [linalg.ErrZeroVector] for a zero axis.
func RotateAxis[T linalg.Float](angle T, axis linalg.Vector3[T]) (linalg.Matrix4[T], error) {
	n, err := axis.Normalize()
	if err != nil {
		return linalg.Matrix4[T]{}, fmt.Errorf("%w: rotation axis", linalg.ErrZeroVector)
	}
	x, y, z := n.X(), n.Y(), n.Z()
	s, c := linalg.Sin(angle), linalg.Cos(angle)
	t := 1 - c
	return linalg.Matrix4FromRows(linalg.ColumnMajor,
		linalg.Vec4(t*x*x+c, t*x*y-s*z, t*x*z+s*y, 0),
		linalg.Vec4(t*x*y+s*z, t*y*y+c, t*y*z-s*x, 0),
		linalg.Vec4(t*x*z-s*y, t*y*z+s*x, t*z*z+c, 0),
		linalg.Vec4[T](0, 0, 0, 1),
	), nil
}

// ApplyRotateAxis composes an axis-angle rotation onto m.
// m is unchanged on error.
func ApplyRotateAxis[T linalg.Float](m *linalg.Matrix4[T], angle T, axis linalg.Vector3[T]) (*linalg.Matrix4[T], error) {
	r, err := RotateAxis(angle, axis)
	if err != nil {
		return m, err
	}
	return apply(m, r), nil
}

// Translate returns the matrix translating by shift.
func Translate[T linalg.Float](shift linalg.Vector3[T]) linalg.Matrix4[T] {
	m := linalg.Identity4[T](linalg.ColumnMajor)
	m.Set(0, 3, shift.X())
	m.Set(1, 3, shift.Y())
	m.Set(2, 3, shift.Z())
	return m
}

// ApplyTranslate composes a translation by shift onto m.
func ApplyTranslate[T linalg.Float](m *linalg.Matrix4[T], shift linalg.Vector3[T]) *linalg.Matrix4[T] {
	return apply(m, Translate(shift))
}
