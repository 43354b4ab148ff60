// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
type Vector4[T Float] [4]T

// Vector4f is a [Vector4] of float32.
type Vector4f = Vector4[float32]

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4[T Float](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar[T Float](s T) Vector4[T] {
	return Vector4[T]{s, s, s, s}
}

// Vec4FromXYZ returns a new [Vector4] from the given [Vector3] xyz and w component.
func Vec4FromXYZ[T Float](xyz Vector3[T], w T) Vector4[T] {
	return Vector4[T]{xyz[0], xyz[1], xyz[2], w}
}

// Vec4FromYZW returns a new [Vector4] from the given x component and [Vector3] yzw.
func Vec4FromYZW[T Float](x T, yzw Vector3[T]) Vector4[T] {
	return Vector4[T]{x, yzw[0], yzw[1], yzw[2]}
}

// Vec4FromXY returns a new [Vector4] from the given [Vector2] xy and z, w components.
func Vec4FromXY[T Float](xy Vector2[T], z, w T) Vector4[T] {
	return Vector4[T]{xy[0], xy[1], z, w}
}

// Vec4FromYZ returns a new [Vector4] from the given x, [Vector2] yz and w.
func Vec4FromYZ[T Float](x T, yz Vector2[T], w T) Vector4[T] {
	return Vector4[T]{x, yz[0], yz[1], w}
}

// Vec4FromZW returns a new [Vector4] from the given x, y and [Vector2] zw.
func Vec4FromZW[T Float](x, y T, zw Vector2[T]) Vector4[T] {
	return Vector4[T]{x, y, zw[0], zw[1]}
}

// X returns the X component.
func (v Vector4[T]) X() T { return v[0] }

// Y returns the Y component.
func (v Vector4[T]) Y() T { return v[1] }

// Z returns the Z component.
func (v Vector4[T]) Z() T { return v[2] }

// W returns the W component.
func (v Vector4[T]) W() T { return v[3] }

// SetX sets the X component.
func (v *Vector4[T]) SetX(x T) { v[0] = x }

// SetY sets the Y component.
func (v *Vector4[T]) SetY(y T) { v[1] = y }

// SetZ sets the Z component.
func (v *Vector4[T]) SetZ(z T) { v[2] = z }

// SetW sets the W component.
func (v *Vector4[T]) SetW(w T) { v[3] = w }

// Set sets this vector X, Y, Z and W components.
func (v *Vector4[T]) Set(x, y, z, w T) {
	v[0] = x
	v[1] = y
	v[2] = z
	v[3] = w
}

// Len returns the number of components, 4.
func (v Vector4[T]) Len() int { return 4 }

// At returns the component at the given index.
func (v Vector4[T]) At(i int) (T, error) {
	if err := checkIndex(i, 4); err != nil {
		return 0, err
	}
	return v[i], nil
}

// SetAt sets the component at the given index.
func (v *Vector4[T]) SetAt(i int, value T) error {
	if err := checkIndex(i, 4); err != nil {
		return err
	}
	v[i] = value
	return nil
}

// Data returns the components as a slice sharing this vector's storage.
func (v *Vector4[T]) Data() []T { return v[:] }

// XYZ returns the X, Y and Z components as a [Vector3].
func (v Vector4[T]) XYZ() Vector3[T] { return Vector3[T]{v[0], v[1], v[2]} }

// F32 returns this vector as an [f32.Vec4].
func (v Vector4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

func (v Vector4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}

// Fill sets all components to the given scalar value.
func (v *Vector4[T]) Fill(s T) {
	fillElems(v[:], s)
}

// Basic math operations:

// Negate returns the vector with each component negated.
func (v Vector4[T]) Negate() Vector4[T] {
	negElems(v[:], v[:])
	return v
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	addElems(v[:], v[:], other[:])
	return v
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector4[T]) AddScalar(s T) Vector4[T] {
	addScalarElems(v[:], v[:], s)
	return v
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector4[T]) SetAdd(other Vector4[T]) {
	addElems(v[:], v[:], other[:])
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector4[T]) SetAddScalar(s T) {
	addScalarElems(v[:], v[:], s)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	subElems(v[:], v[:], other[:])
	return v
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector4[T]) SubScalar(s T) Vector4[T] {
	subScalarElems(v[:], v[:], s)
	return v
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector4[T]) SetSub(other Vector4[T]) {
	subElems(v[:], v[:], other[:])
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector4[T]) SetSubScalar(s T) {
	subScalarElems(v[:], v[:], s)
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	mulElems(v[:], v[:], other[:])
	return v
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector4[T]) MulScalar(s T) Vector4[T] {
	mulScalarElems(v[:], v[:], s)
	return v
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector4[T]) SetMul(other Vector4[T]) {
	mulElems(v[:], v[:], other[:])
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector4[T]) SetMulScalar(s T) {
	mulScalarElems(v[:], v[:], s)
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector. It returns [ErrDivisionByZero] if any
// component of other is zero.
func (v Vector4[T]) Div(other Vector4[T]) (Vector4[T], error) {
	err := divElems(v[:], v[:], other[:])
	return v, err
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// It returns [ErrDivisionByZero] if s is zero.
func (v Vector4[T]) DivScalar(s T) (Vector4[T], error) {
	err := divScalarElems(v[:], v[:], s)
	return v, err
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
// This vector is unchanged on error.
func (v *Vector4[T]) SetDiv(other Vector4[T]) error {
	return divElems(v[:], v[:], other[:])
}

// SetDivScalar sets this to division by scalar.
// This vector is unchanged on error.
func (v *Vector4[T]) SetDivScalar(s T) error {
	return divScalarElems(v[:], v[:], s)
}

// IsEqual returns if this vector is equal to other.
func (v Vector4[T]) IsEqual(other Vector4[T]) bool {
	return v == other
}

// IsApproxEqual returns if this vector is within tol of other in every component.
func (v Vector4[T]) IsApproxEqual(other Vector4[T], tol T) bool {
	return approxEqualElems(v[:], other[:], tol)
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector4[T]) Dot(other Vector4[T]) T {
	return dotElems(v[:], other[:])
}

// Norm2 returns the length squared of this vector.
// Norm2 can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector4[T]) Norm2() T {
	return v.Dot(v)
}

// Norm returns the length (magnitude) of this vector.
func (v Vector4[T]) Norm() T {
	return Sqrt(v.Norm2())
}

// Normalize returns this vector divided by its length (its unit vector).
// It returns [ErrDivisionByZero] for the zero vector.
func (v Vector4[T]) Normalize() (Vector4[T], error) {
	n := v.Norm()
	if n == 0 {
		return v, fmt.Errorf("%w: normalize of zero vector", ErrDivisionByZero)
	}
	return v.MulScalar(1 / n), nil
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector4[T]) Lerp(other Vector4[T], alpha T) Vector4[T] {
	return Vector4[T]{v[0] + (other[0]-v[0])*alpha, v[1] + (other[1]-v[1])*alpha, v[2] + (other[2]-v[2])*alpha,
		v[3] + (other[3]-v[3])*alpha}
}

// PerspDiv returns the 3-vector of normalized display coordinates (NDC) from given 4-vector
// By dividing by the 4th W component. It returns [ErrDivisionByZero] if W is zero.
func (v Vector4[T]) PerspDiv() (Vector3[T], error) {
	if v[3] == 0 {
		return Vector3[T]{}, fmt.Errorf("%w: perspective divide with w = 0", ErrDivisionByZero)
	}
	return Vec3(v[0]/v[3], v[1]/v[3], v[2]/v[3]), nil
}

// MulMatrix4 returns this vector transformed by the given matrix, m * v,
// treating the vector as a column vector.
func (v Vector4[T]) MulMatrix4(m Matrix4[T]) Vector4[T] {
	return m.MulVector4(v)
}
