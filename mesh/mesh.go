// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh holds indexed triangle meshes and packs them into the
// interleaved vertex buffers and attribute layouts that a rendering
// backend uploads.
package mesh

import (
	"fmt"

	"cogentcore.org/xgl/base/errors"
	"cogentcore.org/xgl/linalg"
)

var (
	// ErrModelDataMismatch is returned when the per-vertex arrays of a
	// mesh have different lengths, or an index is past the last vertex.
	ErrModelDataMismatch = errors.New("model data mismatch")

	// ErrIndexCollision is returned when two attributes of a layout
	// have the same shader location.
	ErrIndexCollision = errors.New("attribute index collision")

	// ErrInvalidAttribute is returned for an attribute with an unknown
	// type or a size outside of 1 to 4 components.
	ErrInvalidAttribute = errors.New("invalid attribute")
)

// Shader locations of the attributes produced by [Mesh.Interleave].
const (
	PositionIndex uint32 = 0
	NormalIndex   uint32 = 1
	TexCoordIndex uint32 = 2
)

// Mesh is an indexed triangle mesh. Normals and texture coordinates are
// optional: each is either empty or has one entry per position.
type Mesh struct {

	// vertex positions
	Positions []linalg.Vector3f

	// vertex normals
	Normals []linalg.Vector3f

	// vertex texture coordinates
	TexCoords []linalg.Vector2f

	// vertex indexes, three per triangle
	Indices []uint32

	// texture samplers of the mesh
	Textures TextureSlots
}

// NVertex returns the number of vertices.
func (m *Mesh) NVertex() int { return len(m.Positions) }

// NIndex returns the number of indexes, the count to draw.
func (m *Mesh) NIndex() int { return len(m.Indices) }

// Validate returns [ErrModelDataMismatch] if the normals or texture
// coordinates do not match the positions, or an index is out of range.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) > 0 && len(m.Normals) != n {
		return fmt.Errorf("%w: %d normals for %d positions", ErrModelDataMismatch, len(m.Normals), n)
	}
	if len(m.TexCoords) > 0 && len(m.TexCoords) != n {
		return fmt.Errorf("%w: %d texture coordinates for %d positions", ErrModelDataMismatch, len(m.TexCoords), n)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d is past %d vertices", ErrModelDataMismatch, idx, i, n)
		}
	}
	return nil
}

// Layout returns the layout of the vertex buffer produced by
// [Mesh.Interleave]: the position, then the normal and texture
// coordinates when present.
func (m *Mesh) Layout() (*Layout, error) {
	fs := []Format{{Index: PositionIndex, Size: 3, Type: Float32}}
	if len(m.Normals) > 0 {
		fs = append(fs, Format{Index: NormalIndex, Size: 3, Type: Float32, Normalized: true})
	}
	if len(m.TexCoords) > 0 {
		fs = append(fs, Format{Index: TexCoordIndex, Size: 2, Type: Float32})
	}
	return Pack(fs...)
}

// Interleave returns the vertex data of the mesh as one buffer with the
// attributes of each vertex next to each other, along with its layout.
func (m *Mesh) Interleave() ([]float32, *Layout, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	l, err := m.Layout()
	if err != nil {
		return nil, nil, err
	}
	per := 3
	if len(m.Normals) > 0 {
		per += 3
	}
	if len(m.TexCoords) > 0 {
		per += 2
	}
	data := make([]float32, 0, per*len(m.Positions))
	for i, p := range m.Positions {
		data = append(data, p[:]...)
		if len(m.Normals) > 0 {
			data = append(data, m.Normals[i][:]...)
		}
		if len(m.TexCoords) > 0 {
			data = append(data, m.TexCoords[i][:]...)
		}
	}
	return data, l, nil
}
