// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg is a generic vector, matrix and scalar math package for
// 3D graphics, parameterized over float32 and float64 element types.
//
// Vectors of 2, 3 and 4 components are plain arrays ([Vector2], [Vector3],
// [Vector4]) and so have value semantics; [VectorN] and [Matrix] carry their
// size at run time and check it on every operation. [Matrix4] is the fixed
// 4x4 matrix produced by the projection, view and transform packages.
package linalg

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the constraint satisfied by all element types: any type whose
// underlying type is float32 or float64.
type Float = constraints.Float

// These are generic wrappers: float32 values go through chewxy/math32,
// which has some optimized implementations, everything else through math.

// Mathematical constants.
const (
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// DegToRad converts a number from degrees to radians
func DegToRad[T Float](degrees T) T {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg[T Float](radians T) T {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Abs(f))
	}
	return T(math.Abs(float64(x)))
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sin(f))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Cos(f))
	}
	return T(math.Cos(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Tan(f))
	}
	return T(math.Tan(float64(x)))
}

// Atan returns the arctangent, in radians, of x.
//
// Special cases are:
//
//	Atan(±0) = ±0
//	Atan(±Inf) = ±Pi/2
func Atan[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Atan(f))
	}
	return T(math.Atan(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2[T Float](y, x T) T {
	if f, ok := any(y).(float32); ok {
		return T(math32.Atan2(f, float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// IsNaN reports whether x is an IEEE 754 “not-a-number” value.
func IsNaN[T Float](x T) bool {
	return x != x
}

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Lerp returns the linear interpolation between start and stop
// in proportion to amount.
func Lerp[T Float](start, stop, amount T) T {
	return (1-amount)*start + amount*stop
}
