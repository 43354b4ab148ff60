// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/xgl/linalg"
	"cogentcore.org/xgl/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	assert.Equal(t, 4, Float32.Bytes())
	assert.Equal(t, 2, Uint16.Bytes())
	assert.Equal(t, 0, UndefinedType.Bytes())
	assert.Equal(t, "Float32", Float32.String())
	assert.Equal(t, "UndefinedType", Types(99).String())
}

func TestPack(t *testing.T) {
	l, err := Pack(
		Format{Index: 0, Size: 3, Type: Float32},
		Format{Index: 2, Size: 2, Type: Float32},
		Format{Index: 1, Size: 4, Type: Uint8, Normalized: true},
	)
	require.NoError(t, err)
	as := l.Attributes()
	require.Len(t, as, 3)

	// sorted by index, offsets in the given order
	assert.Equal(t, Attribute{Index: 0, Size: 3, Type: Float32, Stride: 24, Offset: 0}, as[0])
	assert.Equal(t, Attribute{Index: 1, Size: 4, Type: Uint8, Normalized: true, Stride: 24, Offset: 20}, as[1])
	assert.Equal(t, Attribute{Index: 2, Size: 2, Type: Float32, Stride: 24, Offset: 12}, as[2])
	assert.Equal(t, 4, as[1].Bytes())
}

func TestLayoutErrors(t *testing.T) {
	_, err := Pack(Format{Index: 0, Size: 3, Type: Float32}, Format{Index: 0, Size: 2, Type: Float32})
	assert.ErrorIs(t, err, ErrIndexCollision)

	_, err = Pack(Format{Index: 0, Size: 5, Type: Float32})
	assert.ErrorIs(t, err, ErrInvalidAttribute)
	_, err = Pack(Format{Index: 0, Size: 0, Type: Float32})
	assert.ErrorIs(t, err, ErrInvalidAttribute)
	_, err = Pack(Format{Index: 0, Size: 3})
	assert.ErrorIs(t, err, ErrInvalidAttribute)

	l := &Layout{}
	require.NoError(t, l.Add(Attribute{Index: 3, Size: 1, Type: Int32}))
	assert.ErrorIs(t, l.Add(Attribute{Index: 3, Size: 2, Type: Int32}), ErrIndexCollision)
	assert.Equal(t, 1, l.Len())
}

func TestInterleave(t *testing.T) {
	m := &Mesh{
		Positions: []linalg.Vector3f{{1, 2, 3}, {4, 5, 6}},
		Normals:   []linalg.Vector3f{{0, 0, 1}, {0, 1, 0}},
		TexCoords: []linalg.Vector2f{{0.5, 0.25}, {1, 0}},
		Indices:   []uint32{0, 1, 1},
	}
	data, l, err := m.Interleave()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 0, 0, 1, 0.5, 0.25, 4, 5, 6, 0, 1, 0, 1, 0}, data)
	as := l.Attributes()
	require.Len(t, as, 3)
	assert.Equal(t, Attribute{Index: PositionIndex, Size: 3, Type: Float32, Stride: 32, Offset: 0}, as[0])
	assert.Equal(t, Attribute{Index: NormalIndex, Size: 3, Type: Float32, Normalized: true, Stride: 32, Offset: 12}, as[1])
	assert.Equal(t, Attribute{Index: TexCoordIndex, Size: 2, Type: Float32, Stride: 32, Offset: 24}, as[2])

	// positions only
	m = &Mesh{Positions: []linalg.Vector3f{{1, 2, 3}}}
	data, l, err = m.Interleave()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, data)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 12, l.Attributes()[0].Stride)
}

func TestInterleaveMismatch(t *testing.T) {
	m := &Mesh{
		Positions: []linalg.Vector3f{{1, 2, 3}, {4, 5, 6}},
		TexCoords: []linalg.Vector2f{{0, 0}},
	}
	_, _, err := m.Interleave()
	assert.ErrorIs(t, err, ErrModelDataMismatch)

	m = &Mesh{
		Positions: []linalg.Vector3f{{1, 2, 3}},
		Normals:   []linalg.Vector3f{{0, 0, 1}, {0, 0, 1}},
	}
	assert.ErrorIs(t, m.Validate(), ErrModelDataMismatch)

	m = &Mesh{Positions: []linalg.Vector3f{{1, 2, 3}}, Indices: []uint32{0, 1}}
	assert.ErrorIs(t, m.Validate(), ErrModelDataMismatch)
}

func TestTextureSlots(t *testing.T) {
	var ts TextureSlots
	assert.Equal(t, uint32(0), ts.AddNext("diffuse"))
	ts.Add("specular", 2)
	assert.Equal(t, uint32(1), ts.AddNext("normal"))
	assert.Equal(t, uint32(3), ts.AddNext("emissive"))
	assert.Equal(t, 4, ts.Len())
	assert.Equal(t, TextureSlot{Name: "specular", Unit: 2}, ts.Slots()[1])
}

func TestCube(t *testing.T) {
	m := Cube()
	require.NoError(t, m.Validate())
	assert.Equal(t, 24, m.NVertex())
	assert.Equal(t, 36, m.NIndex())

	for _, p := range m.Positions {
		for _, c := range p {
			assert.Equal(t, float32(0.5), linalg.Abs(c), "%v", p)
		}
	}
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Positions[m.Indices[i]], m.Positions[m.Indices[i+1]], m.Positions[m.Indices[i+2]]
		n := m.Normals[m.Indices[i]]
		// counter-clockwise seen from outside, on the face of the normal
		area := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, area.Dot(n), float32(0), "triangle %d", i/3)
		assert.Equal(t, float32(0.5), a.Dot(n))
	}

	data, l, err := m.Interleave()
	require.NoError(t, err)
	assert.Len(t, data, 24*8)
	assert.Equal(t, 32, l.Attributes()[0].Stride)
}

func TestScene(t *testing.T) {
	poses := Scene(0.5)
	require.Len(t, poses, len(ScenePositions))
	for i, ps := range poses {
		rot, err := transform.RotateAxis(float32(i)+0.5, SceneAxis)
		require.NoError(t, err)
		want := transform.Translate(ScenePositions[i]).Mul(rot)
		assert.True(t, want.IsApproxEqual(ps.Matrix, 1e-6), "cube %d", i)
		assert.True(t, ps.Matrix.MulPoint(linalg.Vector3f{}).IsApproxEqual(ScenePositions[i], 1e-6))
	}
}

func TestSceneZeroAxis(t *testing.T) {
	axis := SceneAxis
	SceneAxis = linalg.Vector3f{}
	defer func() { SceneAxis = axis }()

	for i, ps := range Scene(0.5) {
		assert.True(t, transform.Translate(ScenePositions[i]).IsApproxEqual(ps.Matrix, 1e-6), "cube %d", i)
	}
}
