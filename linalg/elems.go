// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "fmt"

// Element-wise routines shared by all of the vector and matrix types.
// The destination may alias either operand; callers are responsible
// for checking that the lengths match.

func negElems[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func addElems[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subElems[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulElems[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// divElems checks every divisor before writing anything, so that dst
// is left untouched on error.
func divElems[T Float](dst, a, b []T) error {
	for i, d := range b {
		if d == 0 {
			return fmt.Errorf("%w: element %d of divisor is zero", ErrDivisionByZero, i)
		}
	}
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
	return nil
}

func addScalarElems[T Float](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func subScalarElems[T Float](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

// scalarSubElems sets dst to s - a.
func scalarSubElems[T Float](dst []T, s T, a []T) {
	for i := range dst {
		dst[i] = s - a[i]
	}
}

func mulScalarElems[T Float](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divScalarElems[T Float](dst, a []T, s T) error {
	if s == 0 {
		return fmt.Errorf("%w: scalar divisor is zero", ErrDivisionByZero)
	}
	for i := range dst {
		dst[i] = a[i] / s
	}
	return nil
}

// scalarDivElems sets dst to s / a.
func scalarDivElems[T Float](dst []T, s T, a []T) error {
	for i, d := range a {
		if d == 0 {
			return fmt.Errorf("%w: element %d of divisor is zero", ErrDivisionByZero, i)
		}
	}
	for i := range dst {
		dst[i] = s / a[i]
	}
	return nil
}

func dotElems[T Float](a, b []T) T {
	var d T
	for i := range a {
		d += a[i] * b[i]
	}
	return d
}

func fillElems[T Float](dst []T, s T) {
	for i := range dst {
		dst[i] = s
	}
}

func approxEqualElems[T Float](a, b []T, tol T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, n)
	}
	return nil
}

func formatElems[T Float](e []T) string {
	s := "("
	for i, v := range e {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(v)
	}
	return s + ")"
}
