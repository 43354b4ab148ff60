// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Types is a list of the scalar types that vertex attribute
// components can have in a vertex buffer.
type Types int32

const (
	UndefinedType Types = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
)

// Bytes returns number of bytes for this type
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

func (tp Types) String() string {
	if n, ok := typeNames[tp]; ok {
		return n
	}
	return "UndefinedType"
}

// TypeSizes gives our data type sizes in bytes
var TypeSizes = map[Types]int{
	Int8:    1,
	Uint8:   1,
	Int16:   2,
	Uint16:  2,
	Int32:   4,
	Uint32:  4,
	Float32: 4,
}

var typeNames = map[Types]string{
	Int8:    "Int8",
	Uint8:   "Uint8",
	Int16:   "Int16",
	Uint16:  "Uint16",
	Int32:   "Int32",
	Uint32:  "Uint32",
	Float32: "Float32",
}
