// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"
	"slices"
)

// VectorN is a vector with a number of components fixed at construction
// time, for sizes other than 2, 3 and 4. Binary operations require both
// operands to have the same length and return [ErrInvalidSize] otherwise.
// Methods never modify their operands except for the Set methods;
// use [VectorN.Clone] to get an independent copy.
type VectorN[T Float] struct {
	e []T
}

// NewVectorN returns a zero vector with n components.
// It returns [ErrInvalidSize] if n is not positive.
func NewVectorN[T Float](n int) (VectorN[T], error) {
	if n <= 0 {
		return VectorN[T]{}, fmt.Errorf("%w: vector length %d", ErrInvalidSize, n)
	}
	return VectorN[T]{e: make([]T, n)}, nil
}

// VecN returns a new [VectorN] with the given components, which are copied.
// It returns [ErrInvalidSize] if there are none.
func VecN[T Float](elems ...T) (VectorN[T], error) {
	if len(elems) == 0 {
		return VectorN[T]{}, fmt.Errorf("%w: vector length 0", ErrInvalidSize)
	}
	return VectorN[T]{e: slices.Clone(elems)}, nil
}

// Len returns the number of components.
func (v VectorN[T]) Len() int { return len(v.e) }

// Clone returns a copy of this vector that does not share storage.
func (v VectorN[T]) Clone() VectorN[T] {
	return VectorN[T]{e: slices.Clone(v.e)}
}

// Data returns the components as a slice sharing this vector's storage.
func (v VectorN[T]) Data() []T { return v.e }

// At returns the component at the given index.
func (v VectorN[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(v.e)); err != nil {
		return 0, err
	}
	return v.e[i], nil
}

// SetAt sets the component at the given index.
func (v VectorN[T]) SetAt(i int, value T) error {
	if err := checkIndex(i, len(v.e)); err != nil {
		return err
	}
	v.e[i] = value
	return nil
}

func (v VectorN[T]) String() string {
	return formatElems(v.e)
}

func (v VectorN[T]) checkSize(other VectorN[T]) error {
	if len(v.e) != len(other.e) {
		return fmt.Errorf("%w: vector lengths %d and %d", ErrInvalidSize, len(v.e), len(other.e))
	}
	return nil
}

// Fill sets all components to the given scalar value.
func (v VectorN[T]) Fill(s T) {
	fillElems(v.e, s)
}

// Negate returns the vector with each component negated.
func (v VectorN[T]) Negate() VectorN[T] {
	r := VectorN[T]{e: make([]T, len(v.e))}
	negElems(r.e, v.e)
	return r
}

// binary applies op into a new vector after checking sizes.
func (v VectorN[T]) binary(other VectorN[T], op func(dst, a, b []T)) (VectorN[T], error) {
	if err := v.checkSize(other); err != nil {
		return VectorN[T]{}, err
	}
	r := VectorN[T]{e: make([]T, len(v.e))}
	op(r.e, v.e, other.e)
	return r, nil
}

// Add returns the element-wise sum of this vector and other.
func (v VectorN[T]) Add(other VectorN[T]) (VectorN[T], error) {
	return v.binary(other, addElems[T])
}

// Sub returns the element-wise difference of this vector and other.
func (v VectorN[T]) Sub(other VectorN[T]) (VectorN[T], error) {
	return v.binary(other, subElems[T])
}

// Mul returns the element-wise product of this vector and other.
func (v VectorN[T]) Mul(other VectorN[T]) (VectorN[T], error) {
	return v.binary(other, mulElems[T])
}

// Div returns the element-wise quotient of this vector and other.
func (v VectorN[T]) Div(other VectorN[T]) (VectorN[T], error) {
	if err := v.checkSize(other); err != nil {
		return VectorN[T]{}, err
	}
	r := VectorN[T]{e: make([]T, len(v.e))}
	if err := divElems(r.e, v.e, other.e); err != nil {
		return VectorN[T]{}, err
	}
	return r, nil
}

// AddScalar returns a new vector with s added to each component.
func (v VectorN[T]) AddScalar(s T) VectorN[T] {
	r := VectorN[T]{e: make([]T, len(v.e))}
	addScalarElems(r.e, v.e, s)
	return r
}

// SubScalar returns a new vector with s subtracted from each component.
func (v VectorN[T]) SubScalar(s T) VectorN[T] {
	r := VectorN[T]{e: make([]T, len(v.e))}
	subScalarElems(r.e, v.e, s)
	return r
}

// MulScalar returns a new vector with each component multiplied by s.
func (v VectorN[T]) MulScalar(s T) VectorN[T] {
	r := VectorN[T]{e: make([]T, len(v.e))}
	mulScalarElems(r.e, v.e, s)
	return r
}

// DivScalar returns a new vector with each component divided by s.
func (v VectorN[T]) DivScalar(s T) (VectorN[T], error) {
	r := VectorN[T]{e: make([]T, len(v.e))}
	if err := divScalarElems(r.e, v.e, s); err != nil {
		return VectorN[T]{}, err
	}
	return r, nil
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v VectorN[T]) SetAdd(other VectorN[T]) error {
	if err := v.checkSize(other); err != nil {
		return err
	}
	addElems(v.e, v.e, other.e)
	return nil
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v VectorN[T]) SetSub(other VectorN[T]) error {
	if err := v.checkSize(other); err != nil {
		return err
	}
	subElems(v.e, v.e, other.e)
	return nil
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v VectorN[T]) SetMul(other VectorN[T]) error {
	if err := v.checkSize(other); err != nil {
		return err
	}
	mulElems(v.e, v.e, other.e)
	return nil
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v VectorN[T]) SetDiv(other VectorN[T]) error {
	if err := v.checkSize(other); err != nil {
		return err
	}
	return divElems(v.e, v.e, other.e)
}

// SetAddScalar sets this to addition with scalar.
func (v VectorN[T]) SetAddScalar(s T) { addScalarElems(v.e, v.e, s) }

// SetSubScalar sets this to subtraction of scalar.
func (v VectorN[T]) SetSubScalar(s T) { subScalarElems(v.e, v.e, s) }

// SetMulScalar sets this to multiplication by scalar.
func (v VectorN[T]) SetMulScalar(s T) { mulScalarElems(v.e, v.e, s) }

// SetDivScalar sets this to division by scalar.
func (v VectorN[T]) SetDivScalar(s T) error { return divScalarElems(v.e, v.e, s) }

// ScalarSubN returns s - v, element-wise.
func ScalarSubN[T Float](s T, v VectorN[T]) VectorN[T] {
	r := VectorN[T]{e: make([]T, len(v.e))}
	scalarSubElems(r.e, s, v.e)
	return r
}

// ScalarDivN returns s / v, element-wise.
func ScalarDivN[T Float](s T, v VectorN[T]) (VectorN[T], error) {
	r := VectorN[T]{e: make([]T, len(v.e))}
	if err := scalarDivElems(r.e, s, v.e); err != nil {
		return VectorN[T]{}, err
	}
	return r, nil
}

// IsEqual returns if this vector has the same length and components as other.
func (v VectorN[T]) IsEqual(other VectorN[T]) bool {
	return slices.Equal(v.e, other.e)
}

// IsApproxEqual returns if this vector is within tol of other in every component.
func (v VectorN[T]) IsApproxEqual(other VectorN[T], tol T) bool {
	return approxEqualElems(v.e, other.e, tol)
}

// Dot returns the dot product of this vector with other.
func (v VectorN[T]) Dot(other VectorN[T]) (T, error) {
	if err := v.checkSize(other); err != nil {
		return 0, err
	}
	return dotElems(v.e, other.e), nil
}

// Norm2 returns the length squared of this vector.
func (v VectorN[T]) Norm2() T {
	return dotElems(v.e, v.e)
}

// Norm returns the length (magnitude) of this vector.
func (v VectorN[T]) Norm() T {
	return Sqrt(v.Norm2())
}

// Normalize returns this vector divided by its length (its unit vector).
// It returns [ErrDivisionByZero] for the zero vector.
func (v VectorN[T]) Normalize() (VectorN[T], error) {
	n := v.Norm()
	if n == 0 {
		return VectorN[T]{}, fmt.Errorf("%w: normalize of zero vector", ErrDivisionByZero)
	}
	return v.MulScalar(1 / n), nil
}
