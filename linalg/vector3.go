// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3[T Float] [3]T

// Vector3f is a [Vector3] of float32, the usual type for graphics.
type Vector3f = Vector3[float32]

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3[T Float](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar[T Float](s T) Vector3[T] {
	return Vector3[T]{s, s, s}
}

// Vec3FromXY returns a new [Vector3] from the given [Vector2] xy and z.
func Vec3FromXY[T Float](xy Vector2[T], z T) Vector3[T] {
	return Vector3[T]{xy[0], xy[1], z}
}

// Vec3FromYZ returns a new [Vector3] from the given x and [Vector2] yz.
func Vec3FromYZ[T Float](x T, yz Vector2[T]) Vector3[T] {
	return Vector3[T]{x, yz[0], yz[1]}
}

// X returns the X component.
func (v Vector3[T]) X() T { return v[0] }

// Y returns the Y component.
func (v Vector3[T]) Y() T { return v[1] }

// Z returns the Z component.
func (v Vector3[T]) Z() T { return v[2] }

// SetX sets the X component.
func (v *Vector3[T]) SetX(x T) { v[0] = x }

// SetY sets the Y component.
func (v *Vector3[T]) SetY(y T) { v[1] = y }

// SetZ sets the Z component.
func (v *Vector3[T]) SetZ(z T) { v[2] = z }

// Set sets this vector X, Y and Z components.
func (v *Vector3[T]) Set(x, y, z T) {
	v[0] = x
	v[1] = y
	v[2] = z
}

// Len returns the number of components, 3.
func (v Vector3[T]) Len() int { return 3 }

// At returns the component at the given index.
func (v Vector3[T]) At(i int) (T, error) {
	if err := checkIndex(i, 3); err != nil {
		return 0, err
	}
	return v[i], nil
}

// SetAt sets the component at the given index.
func (v *Vector3[T]) SetAt(i int, value T) error {
	if err := checkIndex(i, 3); err != nil {
		return err
	}
	v[i] = value
	return nil
}

// Data returns the components as a slice sharing this vector's storage,
// suitable for uploading.
func (v *Vector3[T]) Data() []T { return v[:] }

// XY returns the X and Y components as a [Vector2].
func (v Vector3[T]) XY() Vector2[T] { return Vector2[T]{v[0], v[1]} }

// F32 returns this vector as an [f32.Vec3].
func (v Vector3[T]) F32() f32.Vec3 {
	return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}

// Fill sets all components to the given scalar value.
func (v *Vector3[T]) Fill(s T) {
	fillElems(v[:], s)
}

// Basic math operations:

// Negate returns the vector with each component negated.
func (v Vector3[T]) Negate() Vector3[T] {
	negElems(v[:], v[:])
	return v
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	addElems(v[:], v[:], other[:])
	return v
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	addScalarElems(v[:], v[:], s)
	return v
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3[T]) SetAdd(other Vector3[T]) {
	addElems(v[:], v[:], other[:])
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector3[T]) SetAddScalar(s T) {
	addScalarElems(v[:], v[:], s)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	subElems(v[:], v[:], other[:])
	return v
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	subScalarElems(v[:], v[:], s)
	return v
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3[T]) SetSub(other Vector3[T]) {
	subElems(v[:], v[:], other[:])
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector3[T]) SetSubScalar(s T) {
	subScalarElems(v[:], v[:], s)
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	mulElems(v[:], v[:], other[:])
	return v
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	mulScalarElems(v[:], v[:], s)
	return v
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector3[T]) SetMul(other Vector3[T]) {
	mulElems(v[:], v[:], other[:])
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3[T]) SetMulScalar(s T) {
	mulScalarElems(v[:], v[:], s)
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector. It returns [ErrDivisionByZero] if any
// component of other is zero.
func (v Vector3[T]) Div(other Vector3[T]) (Vector3[T], error) {
	err := divElems(v[:], v[:], other[:])
	return v, err
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// It returns [ErrDivisionByZero] if s is zero.
func (v Vector3[T]) DivScalar(s T) (Vector3[T], error) {
	err := divScalarElems(v[:], v[:], s)
	return v, err
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
// This vector is unchanged on error.
func (v *Vector3[T]) SetDiv(other Vector3[T]) error {
	return divElems(v[:], v[:], other[:])
}

// SetDivScalar sets this to division by scalar.
// This vector is unchanged on error.
func (v *Vector3[T]) SetDivScalar(s T) error {
	return divScalarElems(v[:], v[:], s)
}

// IsEqual returns if this vector is equal to other.
func (v Vector3[T]) IsEqual(other Vector3[T]) bool {
	return v == other
}

// IsApproxEqual returns if this vector is within tol of other in every component.
func (v Vector3[T]) IsApproxEqual(other Vector3[T], tol T) bool {
	return approxEqualElems(v[:], other[:], tol)
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Norm2 returns the length squared of this vector.
// Norm2 can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector3[T]) Norm2() T {
	return v.Dot(v)
}

// Norm returns the length (magnitude) of this vector.
func (v Vector3[T]) Norm() T {
	return Sqrt(v.Norm2())
}

// Normalize returns this vector divided by its length (its unit vector).
// It returns [ErrDivisionByZero] for the zero vector.
func (v Vector3[T]) Normalize() (Vector3[T], error) {
	n := v.Norm()
	if n == 0 {
		return v, fmt.Errorf("%w: normalize of zero vector", ErrDivisionByZero)
	}
	return v.MulScalar(1 / n), nil
}

// Cross returns the cross product of this vector with other.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector3[T]) Lerp(other Vector3[T], alpha T) Vector3[T] {
	return Vector3[T]{v[0] + (other[0]-v[0])*alpha, v[1] + (other[1]-v[1])*alpha, v[2] + (other[2]-v[2])*alpha}
}
