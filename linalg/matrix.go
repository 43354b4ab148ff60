// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a rows x cols matrix whose elements are stored in a flat
// buffer in the given [Major] order. The shape and major order are fixed
// at construction. Methods that return a Matrix always return one with
// its own storage, and only the Set methods modify the receiver;
// assigning a Matrix shares storage, so use [Matrix.Clone] for a copy.
type Matrix[T Float] struct {
	rows, cols int
	major      Major
	e          []T
}

// NewMatrix returns a new zero matrix with the given shape and major order.
// It returns [ErrInvalidSize] if either dimension is not positive.
func NewMatrix[T Float](rows, cols int, major Major) (Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return Matrix[T]{}, fmt.Errorf("%w: matrix shape %dx%d", ErrInvalidSize, rows, cols)
	}
	return Matrix[T]{rows: rows, cols: cols, major: major, e: make([]T, rows*cols)}, nil
}

// MatrixFromRows returns a new matrix with the given major order whose
// rows are the given slices. It returns [ErrInvalidSize] if there are no
// rows or the rows do not all have the same non-zero length.
func MatrixFromRows[T Float](major Major, rows ...[]T) (Matrix[T], error) {
	if len(rows) == 0 {
		return Matrix[T]{}, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	m, err := NewMatrix[T](len(rows), len(rows[0]), major)
	if err != nil {
		return m, err
	}
	for r, row := range rows {
		if len(row) != m.cols {
			return Matrix[T]{}, fmt.Errorf("%w: row %d has %d elements, want %d", ErrInvalidSize, r, len(row), m.cols)
		}
		for c, v := range row {
			m.e[m.major.index(r, c, m.rows, m.cols)] = v
		}
	}
	return m, nil
}

// Identity returns the n x n identity matrix in the given major order.
func Identity[T Float](n int, major Major) (Matrix[T], error) {
	m, err := NewMatrix[T](n, n, major)
	if err != nil {
		return m, err
	}
	for i := 0; i < n; i++ {
		m.e[m.major.index(i, i, n, n)] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// Major returns the storage order.
func (m Matrix[T]) Major() Major { return m.major }

// IsSquare returns whether the matrix has as many rows as columns.
func (m Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// Data returns the flat element buffer in storage order, sharing the
// matrix storage, suitable for uploading.
func (m Matrix[T]) Data() []T { return m.e }

// Clone returns a copy of this matrix that does not share storage.
func (m Matrix[T]) Clone() Matrix[T] {
	m.e = slices.Clone(m.e)
	return m
}

// like returns a new zero matrix with the same major order and the given shape.
func (m Matrix[T]) like(rows, cols int) Matrix[T] {
	return Matrix[T]{rows: rows, cols: cols, major: m.major, e: make([]T, rows*cols)}
}

func (m Matrix[T]) at(r, c int) T {
	return m.e[m.major.index(r, c, m.rows, m.cols)]
}

func (m Matrix[T]) set(r, c int, v T) {
	m.e[m.major.index(r, c, m.rows, m.cols)] = v
}

func (m Matrix[T]) checkElem(r, c int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return fmt.Errorf("%w: element (%d, %d) of %dx%d matrix", ErrOutOfRange, r, c, m.rows, m.cols)
	}
	return nil
}

// At returns the element at the given row and column.
func (m Matrix[T]) At(r, c int) (T, error) {
	if err := m.checkElem(r, c); err != nil {
		return 0, err
	}
	return m.at(r, c), nil
}

// SetAt sets the element at the given row and column.
func (m Matrix[T]) SetAt(r, c int, v T) error {
	if err := m.checkElem(r, c); err != nil {
		return err
	}
	m.set(r, c, v)
	return nil
}

// sameShape returns an error unless other has the same shape as m.
func (m Matrix[T]) sameShape(other Matrix[T]) error {
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("%w: matrix shapes %dx%d and %dx%d", ErrInvalidSize, m.rows, m.cols, other.rows, other.cols)
	}
	return nil
}

// inOrder returns the elements of other laid out in the major order of m,
// which must have the same shape.
func (m Matrix[T]) inOrder(other Matrix[T]) []T {
	if other.major == m.major {
		return other.e
	}
	return other.ToMajor(m.major).e
}

// Negate returns the matrix with each element negated.
func (m Matrix[T]) Negate() Matrix[T] {
	r := m.like(m.rows, m.cols)
	negElems(r.e, m.e)
	return r
}

// Add returns the element-wise sum of this matrix and other.
// It returns [ErrInvalidSize] if the shapes differ.
func (m Matrix[T]) Add(other Matrix[T]) (Matrix[T], error) {
	if err := m.sameShape(other); err != nil {
		return Matrix[T]{}, err
	}
	r := m.like(m.rows, m.cols)
	addElems(r.e, m.e, m.inOrder(other))
	return r, nil
}

// Sub returns the element-wise difference of this matrix and other.
// It returns [ErrInvalidSize] if the shapes differ.
func (m Matrix[T]) Sub(other Matrix[T]) (Matrix[T], error) {
	if err := m.sameShape(other); err != nil {
		return Matrix[T]{}, err
	}
	r := m.like(m.rows, m.cols)
	subElems(r.e, m.e, m.inOrder(other))
	return r, nil
}

// SetAdd sets this to addition with other matrix (i.e., += or plus-equals).
func (m Matrix[T]) SetAdd(other Matrix[T]) error {
	if err := m.sameShape(other); err != nil {
		return err
	}
	addElems(m.e, m.e, m.inOrder(other))
	return nil
}

// SetSub sets this to subtraction with other matrix (i.e., -= or minus-equals).
func (m Matrix[T]) SetSub(other Matrix[T]) error {
	if err := m.sameShape(other); err != nil {
		return err
	}
	subElems(m.e, m.e, m.inOrder(other))
	return nil
}

// AddScalar returns a new matrix with s added to each element.
func (m Matrix[T]) AddScalar(s T) Matrix[T] {
	r := m.like(m.rows, m.cols)
	addScalarElems(r.e, m.e, s)
	return r
}

// SubScalar returns a new matrix with s subtracted from each element.
func (m Matrix[T]) SubScalar(s T) Matrix[T] {
	r := m.like(m.rows, m.cols)
	subScalarElems(r.e, m.e, s)
	return r
}

// MulScalar returns a new matrix with each element multiplied by s.
func (m Matrix[T]) MulScalar(s T) Matrix[T] {
	r := m.like(m.rows, m.cols)
	mulScalarElems(r.e, m.e, s)
	return r
}

// DivScalar returns a new matrix with each element divided by s.
// It returns [ErrDivisionByZero] if s is zero.
func (m Matrix[T]) DivScalar(s T) (Matrix[T], error) {
	r := m.like(m.rows, m.cols)
	if err := divScalarElems(r.e, m.e, s); err != nil {
		return Matrix[T]{}, err
	}
	return r, nil
}

// SetAddScalar sets this to addition with scalar.
func (m Matrix[T]) SetAddScalar(s T) { addScalarElems(m.e, m.e, s) }

// SetSubScalar sets this to subtraction of scalar.
func (m Matrix[T]) SetSubScalar(s T) { subScalarElems(m.e, m.e, s) }

// SetMulScalar sets this to multiplication by scalar.
func (m Matrix[T]) SetMulScalar(s T) { mulScalarElems(m.e, m.e, s) }

// SetDivScalar sets this to division by scalar. It is unchanged on error.
func (m Matrix[T]) SetDivScalar(s T) error { return divScalarElems(m.e, m.e, s) }

// ScalarAddMatrix returns s + m, element-wise.
func ScalarAddMatrix[T Float](s T, m Matrix[T]) Matrix[T] { return m.AddScalar(s) }

// ScalarSubMatrix returns s - m, element-wise.
func ScalarSubMatrix[T Float](s T, m Matrix[T]) Matrix[T] {
	r := m.like(m.rows, m.cols)
	scalarSubElems(r.e, s, m.e)
	return r
}

// ScalarMulMatrix returns s * m, element-wise.
func ScalarMulMatrix[T Float](s T, m Matrix[T]) Matrix[T] { return m.MulScalar(s) }

// ScalarDivMatrix returns s / m, element-wise.
// It returns [ErrDivisionByZero] if any element of m is zero.
func ScalarDivMatrix[T Float](s T, m Matrix[T]) (Matrix[T], error) {
	r := m.like(m.rows, m.cols)
	if err := scalarDivElems(r.e, s, m.e); err != nil {
		return Matrix[T]{}, err
	}
	return r, nil
}

// Mul returns the matrix product m * other, with the rows of m and the
// columns of other, in the major order of m. It returns [ErrInvalidSize]
// if the number of columns of m differs from the number of rows of other.
func (m Matrix[T]) Mul(other Matrix[T]) (Matrix[T], error) {
	if m.cols != other.rows {
		return Matrix[T]{}, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrInvalidSize, m.rows, m.cols, other.rows, other.cols)
	}
	r := m.like(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var sum T
			for k := 0; k < m.cols; k++ {
				sum += m.at(i, k) * other.at(k, j)
			}
			r.set(i, j, sum)
		}
	}
	return r, nil
}

// SetMul sets this to multiplication by other (i.e., *= or times-equals).
// Both matrices must be square and of the same size.
func (m Matrix[T]) SetMul(other Matrix[T]) error {
	if !m.IsSquare() {
		return fmt.Errorf("%w: in-place multiply of non-square %dx%d matrix", ErrInvalidSize, m.rows, m.cols)
	}
	if err := m.sameShape(other); err != nil {
		return err
	}
	r, _ := m.Mul(other)
	copy(m.e, r.e)
	return nil
}

// MulVectorN returns m * v, treating v as a column vector.
func (m Matrix[T]) MulVectorN(v VectorN[T]) (VectorN[T], error) {
	if m.cols != v.Len() {
		return VectorN[T]{}, fmt.Errorf("%w: cannot multiply %dx%d matrix by vector of length %d", ErrInvalidSize, m.rows, m.cols, v.Len())
	}
	r := VectorN[T]{e: make([]T, m.rows)}
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			r.e[i] += m.at(i, k) * v.e[k]
		}
	}
	return r, nil
}

// Transpose returns the cols x rows transpose of this matrix,
// in the same major order.
func (m Matrix[T]) Transpose() Matrix[T] {
	r := m.like(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.set(j, i, m.at(i, j))
		}
	}
	return r
}

// Transpose returns the transpose of m; see [Matrix.Transpose].
func Transpose[T Float](m Matrix[T]) Matrix[T] { return m.Transpose() }

// ToMajor returns this matrix stored in the given major order. This is a
// change of storage layout, not a transpose: At returns the same value for
// every element, only the order of [Matrix.Data] changes.
func (m Matrix[T]) ToMajor(major Major) Matrix[T] {
	r := Matrix[T]{rows: m.rows, cols: m.cols, major: major, e: make([]T, len(m.e))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.set(i, j, m.at(i, j))
		}
	}
	return r
}

// IsEqual returns whether other has the same shape and elements as m,
// regardless of their major orders.
func (m Matrix[T]) IsEqual(other Matrix[T]) bool {
	if m.sameShape(other) != nil {
		return false
	}
	return slices.Equal(m.e, m.inOrder(other))
}

// IsApproxEqual returns whether other has the same shape as m and
// elements within tol of those of m.
func (m Matrix[T]) IsApproxEqual(other Matrix[T], tol T) bool {
	if m.sameShape(other) != nil {
		return false
	}
	return approxEqualElems(m.e, m.inOrder(other), tol)
}

// dense returns this matrix as a gonum dense matrix.
func (m Matrix[T]) dense() *mat.Dense {
	d := make([]float64, 0, len(m.e))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			d = append(d, float64(m.at(i, j)))
		}
	}
	return mat.NewDense(m.rows, m.cols, d)
}

// Det returns the determinant of this square matrix.
func (m Matrix[T]) Det() (T, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("%w: determinant of non-square %dx%d matrix", ErrInvalidSize, m.rows, m.cols)
	}
	return T(mat.Det(m.dense())), nil
}

// Inverse returns the inverse of this square matrix. It returns
// [ErrDivisionByZero] if the matrix is singular or too close to singular
// for the inverse to be accurate.
func (m Matrix[T]) Inverse() (Matrix[T], error) {
	if !m.IsSquare() {
		return Matrix[T]{}, fmt.Errorf("%w: inverse of non-square %dx%d matrix", ErrInvalidSize, m.rows, m.cols)
	}
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		return Matrix[T]{}, fmt.Errorf("%w: singular matrix: %w", ErrDivisionByZero, err)
	}
	r := m.like(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.set(i, j, T(inv.At(i, j)))
		}
	}
	return r, nil
}

func (m Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, m.at(i, j))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
