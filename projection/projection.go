// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package projection builds the 4x4 clip matrices of orthographic and
// perspective cameras. It follows the OpenGL conventions: a right-handed
// eye space looking down -Z, column vectors, and normalized device depth
// in [-1, 1]. All results are in [linalg.ColumnMajor] order.
package projection

import (
	"fmt"

	"cogentcore.org/xgl/linalg"
)

// checkExtent returns an error if the interval [lo, hi] is empty.
func checkExtent[T linalg.Float](name string, lo, hi T) error {
	if lo == hi || linalg.IsNaN(lo) || linalg.IsNaN(hi) {
		return fmt.Errorf("%w: degenerate %s extent [%v, %v]", linalg.ErrInvalidArgument, name, lo, hi)
	}
	return nil
}

func checkBox[T linalg.Float](left, right, bottom, top, near, far T) error {
	if err := checkExtent("horizontal", left, right); err != nil {
		return err
	}
	if err := checkExtent("vertical", bottom, top); err != nil {
		return err
	}
	return checkExtent("depth", near, far)
}

func checkAspect[T linalg.Float](aspect T) error {
	if !(aspect > 0) {
		return fmt.Errorf("%w: aspect ratio %v must be positive", linalg.ErrInvalidArgument, aspect)
	}
	return nil
}

// Orthogonal returns the orthographic projection mapping the box
// [left, right] x [bottom, top] x [-near, -far] of eye space onto
// the normalized device cube.
func Orthogonal[T linalg.Float](left, right, bottom, top, near, far T) (linalg.Matrix4[T], error) {
	if err := checkBox(left, right, bottom, top, near, far); err != nil {
		return linalg.Matrix4[T]{}, err
	}
	m := linalg.NewMatrix4[T](linalg.ColumnMajor)
	m.Set(0, 0, 2/(right-left))
	m.Set(1, 1, 2/(top-bottom))
	m.Set(2, 2, -2/(far-near))
	m.Set(0, 3, -(right+left)/(right-left))
	m.Set(1, 3, -(top+bottom)/(top-bottom))
	m.Set(2, 3, -(far+near)/(far-near))
	m.Set(3, 3, 1)
	return m, nil
}

// OrthoSym returns the orthographic projection of a box of the given
// width and height centered on the view axis.
func OrthoSym[T linalg.Float](width, height, near, far T) (linalg.Matrix4[T], error) {
	return Orthogonal(-width/2, width/2, -height/2, height/2, near, far)
}

// OrthoAR returns the orthographic projection of a box of the given
// height centered on the view axis, with a width of height * aspect.
func OrthoAR[T linalg.Float](height, aspect, near, far T) (linalg.Matrix4[T], error) {
	if err := checkAspect(aspect); err != nil {
		return linalg.Matrix4[T]{}, err
	}
	return OrthoSym(height*aspect, height, near, far)
}

// checkDepth returns an error unless 0 < near and 0 < far,
// as required by a perspective divide.
func checkDepth[T linalg.Float](near, far T) error {
	if !(near > 0) || !(far > 0) {
		return fmt.Errorf("%w: perspective near %v and far %v must be positive", linalg.ErrInvalidArgument, near, far)
	}
	return nil
}

// Perspective returns the perspective projection of the frustum whose
// near plane at distance near spans [left, right] x [bottom, top],
// cut off at distance far.
func Perspective[T linalg.Float](left, right, bottom, top, near, far T) (linalg.Matrix4[T], error) {
	if err := checkBox(left, right, bottom, top, near, far); err != nil {
		return linalg.Matrix4[T]{}, err
	}
	if err := checkDepth(near, far); err != nil {
		return linalg.Matrix4[T]{}, err
	}
	m := linalg.NewMatrix4[T](linalg.ColumnMajor)
	m.Set(0, 0, 2*near/(right-left))
	m.Set(0, 2, (right+left)/(right-left))
	m.Set(1, 1, 2*near/(top-bottom))
	m.Set(1, 2, (top+bottom)/(top-bottom))
	m.Set(2, 2, -(far+near)/(far-near))
	m.Set(2, 3, -2*far*near/(far-near))
	m.Set(3, 2, -1)
	return m, nil
}

// PerspSym returns the perspective projection of a frustum whose near
// plane is width x height, centered on the view axis.
func PerspSym[T linalg.Float](width, height, near, far T) (linalg.Matrix4[T], error) {
	return Perspective(-width/2, width/2, -height/2, height/2, near, far)
}

// PerspAR returns the perspective projection of a frustum whose near
// plane has the given height and a width of height * aspect,
// centered on the view axis.
func PerspAR[T linalg.Float](height, aspect, near, far T) (linalg.Matrix4[T], error) {
	if err := checkAspect(aspect); err != nil {
		return linalg.Matrix4[T]{}, err
	}
	return PerspSym(height*aspect, height, near, far)
}

// PerspFov returns the perspective projection with the given vertical
// field of view in radians and aspect ratio (width / height). It is the
// same matrix as PerspSym(2*near*tan(fovy/2)*aspect, 2*near*tan(fovy/2),
// near, far).
func PerspFov[T linalg.Float](fovy, aspect, near, far T) (linalg.Matrix4[T], error) {
	if !(fovy > 0 && fovy < linalg.Pi) {
		return linalg.Matrix4[T]{}, fmt.Errorf("%w: field of view %v must be in (0, pi)", linalg.ErrInvalidArgument, fovy)
	}
	if err := checkAspect(aspect); err != nil {
		return linalg.Matrix4[T]{}, err
	}
	if err := checkDepth(near, far); err != nil {
		return linalg.Matrix4[T]{}, err
	}
	if err := checkExtent("depth", near, far); err != nil {
		return linalg.Matrix4[T]{}, err
	}
	f := 1 / linalg.Tan(fovy/2)
	m := linalg.NewMatrix4[T](linalg.ColumnMajor)
	m.Set(0, 0, f/aspect)
	m.Set(1, 1, f)
	m.Set(2, 2, (far+near)/(near-far))
	m.Set(2, 3, 2*far*near/(near-far))
	m.Set(3, 2, -1)
	return m, nil
}
