// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/f32"
)

// Matrix4 is a 4x4 matrix stored in a fixed array, as used for the
// homogeneous transforms of 3D graphics. It is a value type: assignment
// copies it. The zero value is the zero matrix in [ColumnMajor] order.
type Matrix4[T Float] struct {
	e     [16]T
	major Major
}

// Matrix4f is a [Matrix4] of float32, the usual type for graphics.
type Matrix4f = Matrix4[float32]

// Identity4 returns the 4x4 identity matrix in the given major order.
func Identity4[T Float](major Major) Matrix4[T] {
	return Matrix4[T]{e: [16]T{0: 1, 5: 1, 10: 1, 15: 1}, major: major}
}

// NewMatrix4 returns the zero 4x4 matrix in the given major order.
func NewMatrix4[T Float](major Major) Matrix4[T] {
	return Matrix4[T]{major: major}
}

// Matrix4FromRows returns a new matrix in the given major order
// with the given rows.
func Matrix4FromRows[T Float](major Major, r0, r1, r2, r3 Vector4[T]) Matrix4[T] {
	m := Matrix4[T]{major: major}
	for r, row := range [4]Vector4[T]{r0, r1, r2, r3} {
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
	return m
}

// Major returns the storage order.
func (m Matrix4[T]) Major() Major { return m.major }

// Data returns the 16 elements in storage order as a slice sharing the
// matrix storage, suitable for uploading.
func (m *Matrix4[T]) Data() []T { return m.e[:] }

// Get returns element (r, c) without bounds checking beyond that of the
// underlying array.
func (m Matrix4[T]) Get(r, c int) T {
	return m.e[m.major.index(r, c, 4, 4)]
}

// Set sets element (r, c) without bounds checking beyond that of the
// underlying array.
func (m *Matrix4[T]) Set(r, c int, v T) {
	m.e[m.major.index(r, c, 4, 4)] = v
}

func checkElem4(r, c int) error {
	if r < 0 || r >= 4 || c < 0 || c >= 4 {
		return fmt.Errorf("%w: element (%d, %d) of 4x4 matrix", ErrOutOfRange, r, c)
	}
	return nil
}

// At returns the element at the given row and column.
func (m Matrix4[T]) At(r, c int) (T, error) {
	if err := checkElem4(r, c); err != nil {
		return 0, err
	}
	return m.Get(r, c), nil
}

// SetAt sets the element at the given row and column.
func (m *Matrix4[T]) SetAt(r, c int, v T) error {
	if err := checkElem4(r, c); err != nil {
		return err
	}
	m.Set(r, c, v)
	return nil
}

// Row returns the given row as a vector.
func (m Matrix4[T]) Row(r int) Vector4[T] {
	return Vector4[T]{m.Get(r, 0), m.Get(r, 1), m.Get(r, 2), m.Get(r, 3)}
}

// Col returns the given column as a vector.
func (m Matrix4[T]) Col(c int) Vector4[T] {
	return Vector4[T]{m.Get(0, c), m.Get(1, c), m.Get(2, c), m.Get(3, c)}
}

// inOrder returns the elements of other in the major order of m.
func (m Matrix4[T]) inOrder(other Matrix4[T]) [16]T {
	if other.major == m.major {
		return other.e
	}
	return other.ToMajor(m.major).e
}

// Negate returns the matrix with each element negated.
func (m Matrix4[T]) Negate() Matrix4[T] {
	negElems(m.e[:], m.e[:])
	return m
}

// Add returns the element-wise sum of this matrix and other.
func (m Matrix4[T]) Add(other Matrix4[T]) Matrix4[T] {
	o := m.inOrder(other)
	addElems(m.e[:], m.e[:], o[:])
	return m
}

// Sub returns the element-wise difference of this matrix and other.
func (m Matrix4[T]) Sub(other Matrix4[T]) Matrix4[T] {
	o := m.inOrder(other)
	subElems(m.e[:], m.e[:], o[:])
	return m
}

// SetAdd sets this to addition with other matrix (i.e., += or plus-equals).
func (m *Matrix4[T]) SetAdd(other Matrix4[T]) { *m = m.Add(other) }

// SetSub sets this to subtraction with other matrix (i.e., -= or minus-equals).
func (m *Matrix4[T]) SetSub(other Matrix4[T]) { *m = m.Sub(other) }

// AddScalar returns a new matrix with s added to each element.
func (m Matrix4[T]) AddScalar(s T) Matrix4[T] {
	addScalarElems(m.e[:], m.e[:], s)
	return m
}

// SubScalar returns a new matrix with s subtracted from each element.
func (m Matrix4[T]) SubScalar(s T) Matrix4[T] {
	subScalarElems(m.e[:], m.e[:], s)
	return m
}

// MulScalar returns a new matrix with each element multiplied by s.
func (m Matrix4[T]) MulScalar(s T) Matrix4[T] {
	mulScalarElems(m.e[:], m.e[:], s)
	return m
}

// DivScalar returns a new matrix with each element divided by s.
// It returns [ErrDivisionByZero] if s is zero.
func (m Matrix4[T]) DivScalar(s T) (Matrix4[T], error) {
	err := divScalarElems(m.e[:], m.e[:], s)
	return m, err
}

// SetAddScalar sets this to addition with scalar.
func (m *Matrix4[T]) SetAddScalar(s T) { addScalarElems(m.e[:], m.e[:], s) }

// SetSubScalar sets this to subtraction of scalar.
func (m *Matrix4[T]) SetSubScalar(s T) { subScalarElems(m.e[:], m.e[:], s) }

// SetMulScalar sets this to multiplication by scalar.
func (m *Matrix4[T]) SetMulScalar(s T) { mulScalarElems(m.e[:], m.e[:], s) }

// SetDivScalar sets this to division by scalar. It is unchanged on error.
func (m *Matrix4[T]) SetDivScalar(s T) error { return divScalarElems(m.e[:], m.e[:], s) }

// ScalarAddMatrix4 returns s + m, element-wise.
func ScalarAddMatrix4[T Float](s T, m Matrix4[T]) Matrix4[T] { return m.AddScalar(s) }

// ScalarSubMatrix4 returns s - m, element-wise.
func ScalarSubMatrix4[T Float](s T, m Matrix4[T]) Matrix4[T] {
	scalarSubElems(m.e[:], s, m.e[:])
	return m
}

// ScalarMulMatrix4 returns s * m, element-wise.
func ScalarMulMatrix4[T Float](s T, m Matrix4[T]) Matrix4[T] { return m.MulScalar(s) }

// ScalarDivMatrix4 returns s / m, element-wise.
// It returns [ErrDivisionByZero] if any element of m is zero.
func ScalarDivMatrix4[T Float](s T, m Matrix4[T]) (Matrix4[T], error) {
	err := scalarDivElems(m.e[:], s, m.e[:])
	return m, err
}

// Mul returns the matrix product m * other in the major order of m.
// Applied to a vector, the result applies other first, then m.
func (m Matrix4[T]) Mul(other Matrix4[T]) Matrix4[T] {
	r := Matrix4[T]{major: m.major}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += m.Get(i, k) * other.Get(k, j)
			}
			r.Set(i, j, sum)
		}
	}
	return r
}

// SetMul sets this to multiplication by other (i.e., *= or times-equals),
// so that m = m * other.
func (m *Matrix4[T]) SetMul(other Matrix4[T]) { *m = m.Mul(other) }

// MulVector4 returns m * v, treating v as a column vector.
func (m Matrix4[T]) MulVector4(v Vector4[T]) Vector4[T] {
	var r Vector4[T]
	for i := 0; i < 4; i++ {
		r[i] = m.Get(i, 0)*v[0] + m.Get(i, 1)*v[1] + m.Get(i, 2)*v[2] + m.Get(i, 3)*v[3]
	}
	return r
}

// MulPoint returns the point p transformed by m, treating it as the
// homogeneous point (p, 1) and discarding the resulting w.
func (m Matrix4[T]) MulPoint(p Vector3[T]) Vector3[T] {
	return m.MulVector4(Vec4FromXYZ(p, 1)).XYZ()
}

// MulDirection returns the direction d transformed by m, treating it as
// (d, 0) so that translation does not apply.
func (m Matrix4[T]) MulDirection(d Vector3[T]) Vector3[T] {
	return m.MulVector4(Vec4FromXYZ(d, 0)).XYZ()
}

// Transpose returns the transpose of this matrix, in the same major order.
func (m Matrix4[T]) Transpose() Matrix4[T] {
	r := Matrix4[T]{major: m.major}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.Set(j, i, m.Get(i, j))
		}
	}
	return r
}

// Transpose4 returns the transpose of m.
func Transpose4[T Float](m Matrix4[T]) Matrix4[T] { return m.Transpose() }

// ToMajor returns this matrix stored in the given major order, with the
// same value at every (row, column).
func (m Matrix4[T]) ToMajor(major Major) Matrix4[T] {
	if major == m.major {
		return m
	}
	r := m.Transpose()
	r.major = major
	return r
}

// IsEqual returns whether other has the same elements as m,
// regardless of their major orders.
func (m Matrix4[T]) IsEqual(other Matrix4[T]) bool {
	return m.e == m.inOrder(other)
}

// IsApproxEqual returns whether every element of other is within tol
// of that of m.
func (m Matrix4[T]) IsApproxEqual(other Matrix4[T], tol T) bool {
	o := m.inOrder(other)
	return approxEqualElems(m.e[:], o[:], tol)
}

// Matrix returns this matrix as a general [Matrix] with its own storage.
func (m Matrix4[T]) Matrix() Matrix[T] {
	e := make([]T, 16)
	copy(e, m.e[:])
	return Matrix[T]{rows: 4, cols: 4, major: m.major, e: e}
}

// Matrix4FromMatrix returns the given general matrix as a [Matrix4].
// It returns [ErrInvalidSize] unless it is 4x4.
func Matrix4FromMatrix[T Float](m Matrix[T]) (Matrix4[T], error) {
	if m.rows != 4 || m.cols != 4 {
		return Matrix4[T]{}, fmt.Errorf("%w: %dx%d matrix is not 4x4", ErrInvalidSize, m.rows, m.cols)
	}
	r := Matrix4[T]{major: m.major}
	copy(r.e[:], m.e)
	return r, nil
}

// Det returns the determinant of this matrix.
func (m Matrix4[T]) Det() T {
	d, _ := m.Matrix().Det()
	return d
}

// Inverse returns the inverse of this matrix.
// It returns [ErrDivisionByZero] if the matrix is singular.
func (m Matrix4[T]) Inverse() (Matrix4[T], error) {
	inv, err := m.Matrix().Inverse()
	if err != nil {
		return Matrix4[T]{}, err
	}
	return Matrix4FromMatrix(inv)
}

// F32 returns this matrix as an [f32.Mat4], which is in row-major order.
func (m Matrix4[T]) F32() f32.Mat4 {
	var r f32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i*4+j] = float32(m.Get(i, j))
		}
	}
	return r
}

func (m Matrix4[T]) String() string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%v, %v, %v, %v]", m.Get(i, 0), m.Get(i, 1), m.Get(i, 2), m.Get(i, 3))
	}
	return sb.String()
}
