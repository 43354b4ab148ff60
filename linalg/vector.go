// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

// FixedVector is the constraint satisfied by the fixed size vector types
// [Vector2], [Vector3] and [Vector4].
type FixedVector[T Float] interface {
	Vector2[T] | Vector3[T] | Vector4[T]
}

// elemsOf returns the storage of the given fixed size vector as a slice.
func elemsOf[T Float, V FixedVector[T]](v *V) []T {
	switch x := any(v).(type) {
	case *Vector2[T]:
		return x[:]
	case *Vector3[T]:
		return x[:]
	case *Vector4[T]:
		return x[:]
	}
	return nil
}

// The scalar-left operations below are the s op v counterparts of the
// AddScalar, SubScalar, MulScalar and DivScalar methods.

// ScalarAdd returns s + v, element-wise.
func ScalarAdd[T Float, V FixedVector[T]](s T, v V) V {
	e := elemsOf[T](&v)
	addScalarElems(e, e, s)
	return v
}

// ScalarSub returns s - v, element-wise.
func ScalarSub[T Float, V FixedVector[T]](s T, v V) V {
	e := elemsOf[T](&v)
	scalarSubElems(e, s, e)
	return v
}

// ScalarMul returns s * v, element-wise.
func ScalarMul[T Float, V FixedVector[T]](s T, v V) V {
	e := elemsOf[T](&v)
	mulScalarElems(e, e, s)
	return v
}

// ScalarDiv returns s / v, element-wise. It returns [ErrDivisionByZero]
// if any element of v is zero.
func ScalarDiv[T Float, V FixedVector[T]](s T, v V) (V, error) {
	e := elemsOf[T](&v)
	if err := scalarDivElems(e, s, e); err != nil {
		return v, err
	}
	return v, nil
}
