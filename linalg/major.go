// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

// Major is the order in which the elements of a matrix are laid out
// in its flat storage buffer.
type Major int32

const (
	// ColumnMajor stores the columns contiguously: element (r, c) of an
	// R x C matrix is at index c*R + r. This is what OpenGL and WebGPU
	// expect by default, and it is the zero value.
	ColumnMajor Major = iota

	// RowMajor stores the rows contiguously: element (r, c) of an
	// R x C matrix is at index r*C + c.
	RowMajor
)

// index returns the flat index of element (r, c) in a rows x cols matrix.
func (m Major) index(r, c, rows, cols int) int {
	if m == RowMajor {
		return r*cols + c
	}
	return c*rows + r
}

// Other returns the opposite major order.
func (m Major) Other() Major {
	if m == RowMajor {
		return ColumnMajor
	}
	return RowMajor
}

// Transposed returns whether a matrix in this order must be transposed
// when uploaded to a graphics API that expects column-major data,
// such as the transpose argument of glUniformMatrix4fv.
func (m Major) Transposed() bool {
	return m == RowMajor
}

func (m Major) String() string {
	if m == RowMajor {
		return "RowMajor"
	}
	return "ColumnMajor"
}
