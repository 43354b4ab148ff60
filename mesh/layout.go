// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"slices"
	"strings"
)

// Attribute describes where one vertex attribute lives in an interleaved
// vertex buffer, as passed to glVertexAttribPointer or a WebGPU
// vertex buffer layout.
type Attribute struct {

	// shader location of the attribute
	Index uint32

	// number of components, 1 to 4
	Size int

	// type of each component
	Type Types

	// whether integer values are normalized to [0, 1] or [-1, 1]
	Normalized bool

	// distance in bytes between consecutive vertices
	Stride int

	// offset in bytes of the attribute within a vertex
	Offset int
}

// Bytes returns the number of bytes taken by the attribute in each vertex.
func (a Attribute) Bytes() int {
	return a.Size * a.Type.Bytes()
}

func (a Attribute) String() string {
	return fmt.Sprintf("%d: %d x %v normalized=%v stride=%d offset=%d", a.Index, a.Size, a.Type, a.Normalized, a.Stride, a.Offset)
}

// Format is the part of an [Attribute] given when packing attributes
// one after another with [Pack].
type Format struct {
	Index      uint32
	Size       int
	Type       Types
	Normalized bool
}

// Layout is a set of attributes ordered by shader location,
// with at most one attribute per location.
type Layout struct {
	attrs []Attribute
}

// Add adds the attribute in order of its index. It returns
// [ErrIndexCollision] if the layout already has an attribute at
// that index, and [ErrInvalidAttribute] for an attribute that
// cannot be described to a graphics API.
func (l *Layout) Add(a Attribute) error {
	if a.Size < 1 || a.Size > 4 || a.Type.Bytes() == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAttribute, a)
	}
	i, found := slices.BinarySearchFunc(l.attrs, a.Index, func(e Attribute, idx uint32) int {
		switch {
		case e.Index < idx:
			return -1
		case e.Index > idx:
			return 1
		}
		return 0
	})
	if found {
		return fmt.Errorf("%w: attribute index %d", ErrIndexCollision, a.Index)
	}
	l.attrs = slices.Insert(l.attrs, i, a)
	return nil
}

// Attributes returns the attributes in order of index.
func (l *Layout) Attributes() []Attribute {
	return l.attrs
}

// Len returns the number of attributes.
func (l *Layout) Len() int {
	return len(l.attrs)
}

func (l *Layout) String() string {
	var sb strings.Builder
	for _, a := range l.attrs {
		sb.WriteString(a.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Pack returns the layout of a vertex buffer in which each vertex holds
// the given attributes one after another, in the given order.
func Pack(formats ...Format) (*Layout, error) {
	stride := 0
	for _, f := range formats {
		stride += f.Size * f.Type.Bytes()
	}
	l := &Layout{}
	offset := 0
	for _, f := range formats {
		a := Attribute{Index: f.Index, Size: f.Size, Type: f.Type, Normalized: f.Normalized, Stride: stride, Offset: offset}
		if err := l.Add(a); err != nil {
			return nil, err
		}
		offset += a.Bytes()
	}
	return l, nil
}
