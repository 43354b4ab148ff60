// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2[T Float] [2]T

// Vector2f is a [Vector2] of float32.
type Vector2f = Vector2[float32]

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2[T Float](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar[T Float](s T) Vector2[T] {
	return Vector2[T]{s, s}
}

// X returns the X component.
func (v Vector2[T]) X() T { return v[0] }

// Y returns the Y component.
func (v Vector2[T]) Y() T { return v[1] }

// SetX sets the X component.
func (v *Vector2[T]) SetX(x T) { v[0] = x }

// SetY sets the Y component.
func (v *Vector2[T]) SetY(y T) { v[1] = y }

// Set sets this vector X and Y components.
func (v *Vector2[T]) Set(x, y T) {
	v[0] = x
	v[1] = y
}

// Len returns the number of components, 2.
func (v Vector2[T]) Len() int { return 2 }

// At returns the component at the given index.
func (v Vector2[T]) At(i int) (T, error) {
	if err := checkIndex(i, 2); err != nil {
		return 0, err
	}
	return v[i], nil
}

// SetAt sets the component at the given index.
func (v *Vector2[T]) SetAt(i int, value T) error {
	if err := checkIndex(i, 2); err != nil {
		return err
	}
	v[i] = value
	return nil
}

// Data returns the components as a slice sharing this vector's storage.
func (v *Vector2[T]) Data() []T { return v[:] }

// F32 returns this vector as an [f32.Vec2].
func (v Vector2[T]) F32() f32.Vec2 {
	return f32.Vec2{float32(v[0]), float32(v[1])}
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v[0], v[1])
}

// Fill sets all components to the given scalar value.
func (v *Vector2[T]) Fill(s T) {
	fillElems(v[:], s)
}

// Basic math operations:

// Negate returns the vector with each component negated.
func (v Vector2[T]) Negate() Vector2[T] {
	negElems(v[:], v[:])
	return v
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	addElems(v[:], v[:], other[:])
	return v
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector2[T]) AddScalar(s T) Vector2[T] {
	addScalarElems(v[:], v[:], s)
	return v
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector2[T]) SetAdd(other Vector2[T]) {
	addElems(v[:], v[:], other[:])
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector2[T]) SetAddScalar(s T) {
	addScalarElems(v[:], v[:], s)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	subElems(v[:], v[:], other[:])
	return v
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector2[T]) SubScalar(s T) Vector2[T] {
	subScalarElems(v[:], v[:], s)
	return v
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector2[T]) SetSub(other Vector2[T]) {
	subElems(v[:], v[:], other[:])
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector2[T]) SetSubScalar(s T) {
	subScalarElems(v[:], v[:], s)
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	mulElems(v[:], v[:], other[:])
	return v
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	mulScalarElems(v[:], v[:], s)
	return v
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector2[T]) SetMul(other Vector2[T]) {
	mulElems(v[:], v[:], other[:])
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector2[T]) SetMulScalar(s T) {
	mulScalarElems(v[:], v[:], s)
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector. It returns [ErrDivisionByZero] if any
// component of other is zero.
func (v Vector2[T]) Div(other Vector2[T]) (Vector2[T], error) {
	err := divElems(v[:], v[:], other[:])
	return v, err
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// It returns [ErrDivisionByZero] if s is zero.
func (v Vector2[T]) DivScalar(s T) (Vector2[T], error) {
	err := divScalarElems(v[:], v[:], s)
	return v, err
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
// This vector is unchanged on error.
func (v *Vector2[T]) SetDiv(other Vector2[T]) error {
	return divElems(v[:], v[:], other[:])
}

// SetDivScalar sets this to division by scalar.
// This vector is unchanged on error.
func (v *Vector2[T]) SetDivScalar(s T) error {
	return divScalarElems(v[:], v[:], s)
}

// IsEqual returns if this vector is equal to other.
func (v Vector2[T]) IsEqual(other Vector2[T]) bool {
	return v == other
}

// IsApproxEqual returns if this vector is within tol of other in every component.
func (v Vector2[T]) IsApproxEqual(other Vector2[T], tol T) bool {
	return approxEqualElems(v[:], other[:], tol)
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return dotElems(v[:], other[:])
}

// Norm2 returns the length squared of this vector.
// Norm2 can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector2[T]) Norm2() T {
	return v.Dot(v)
}

// Norm returns the length (magnitude) of this vector.
func (v Vector2[T]) Norm() T {
	return Sqrt(v.Norm2())
}

// Normalize returns this vector divided by its length (its unit vector).
// It returns [ErrDivisionByZero] for the zero vector.
func (v Vector2[T]) Normalize() (Vector2[T], error) {
	n := v.Norm()
	if n == 0 {
		return v, fmt.Errorf("%w: normalize of zero vector", ErrDivisionByZero)
	}
	return v.MulScalar(1 / n), nil
}

// Cross returns the z component of the cross product of this vector
// with other, taken as 3D vectors in the XY plane.
func (v Vector2[T]) Cross(other Vector2[T]) T {
	return v[0]*other[1] - v[1]*other[0]
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector2[T]) Lerp(other Vector2[T], alpha T) Vector2[T] {
	return Vector2[T]{v[0] + (other[0]-v[0])*alpha, v[1] + (other[1]-v[1])*alpha}
}
