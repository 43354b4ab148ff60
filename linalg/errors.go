// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "cogentcore.org/xgl/base/errors"

// Errors returned by vector and matrix operations and by the packages
// built on them. They are always wrapped with context, so test for them
// with [errors.Is].
var (
	// ErrInvalidSize is returned when operand shapes do not match,
	// or when a size is not positive.
	ErrInvalidSize = errors.New("invalid size")

	// ErrOutOfRange is returned for an element index outside of the
	// vector or matrix.
	ErrOutOfRange = errors.New("index out of range")

	// ErrDivisionByZero is returned for a division by a zero scalar or
	// element, normalization of a zero vector, or inversion of a
	// singular matrix.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrZeroVector is returned when a direction is degenerate,
	// such as a zero rotation axis or collinear look-at vectors.
	ErrZeroVector = errors.New("zero vector")

	// ErrInvalidArgument is returned for parameters outside of their
	// valid domain, such as a non-positive aspect ratio or time step.
	ErrInvalidArgument = errors.New("invalid argument")
)
