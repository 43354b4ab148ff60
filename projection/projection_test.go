// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projection

import (
	"math"
	"testing"

	"cogentcore.org/xgl/linalg"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromMgl(m mgl64.Mat4) linalg.Matrix4[float64] {
	r := linalg.NewMatrix4[float64](linalg.ColumnMajor)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.Set(i, j, m.At(i, j))
		}
	}
	return r
}

func assertMatrix(t *testing.T, want, got linalg.Matrix4[float64]) {
	t.Helper()
	assert.True(t, want.IsApproxEqual(got, 1e-12), "want:\n%v\ngot:\n%v", want, got)
}

func TestOrthogonal(t *testing.T) {
	m, err := Orthogonal(-2.0, 3.0, -1.0, 4.0, 0.5, 20.0)
	require.NoError(t, err)
	assert.Equal(t, linalg.ColumnMajor, m.Major())
	assertMatrix(t, fromMgl(mgl64.Ortho(-2, 3, -1, 4, 0.5, 20)), m)

	// the corners of the box map to the corners of the cube
	p := m.MulPoint(linalg.Vec3(-2.0, -1.0, -0.5))
	assert.True(t, p.IsApproxEqual(linalg.Vec3(-1.0, -1.0, -1.0), 1e-12), "%v", p)
	p = m.MulPoint(linalg.Vec3(3.0, 4.0, -20.0))
	assert.True(t, p.IsApproxEqual(linalg.Vec3(1.0, 1.0, 1.0), 1e-12), "%v", p)

	sym, err := OrthoSym(4.0, 2.0, 1.0, 10.0)
	require.NoError(t, err)
	gen, err := Orthogonal(-2.0, 2.0, -1.0, 1.0, 1.0, 10.0)
	require.NoError(t, err)
	assertMatrix(t, gen, sym)

	ar, err := OrthoAR(2.0, 2.0, 1.0, 10.0)
	require.NoError(t, err)
	assertMatrix(t, gen, ar)
}

func TestPerspective(t *testing.T) {
	m, err := Perspective(-1.0, 2.0, -0.5, 1.5, 1.0, 50.0)
	require.NoError(t, err)
	assertMatrix(t, fromMgl(mgl64.Frustum(-1, 2, -0.5, 1.5, 1, 50)), m)

	// near and far planes map to -1 and 1 after the perspective divide
	for _, c := range []struct{ z, ndc float64 }{{-1, -1}, {-50, 1}} {
		v := m.MulVector4(linalg.Vec4(0.0, 0.0, c.z, 1.0))
		p, err := v.PerspDiv()
		require.NoError(t, err)
		assert.InDelta(t, c.ndc, p.Z(), 1e-12)
	}

	sym, err := PerspSym(4.0, 2.0, 1.0, 10.0)
	require.NoError(t, err)
	gen, err := Perspective(-2.0, 2.0, -1.0, 1.0, 1.0, 10.0)
	require.NoError(t, err)
	assertMatrix(t, gen, sym)

	ar, err := PerspAR(2.0, 2.0, 1.0, 10.0)
	require.NoError(t, err)
	assertMatrix(t, gen, ar)
}

func TestPerspFov(t *testing.T) {
	fovs := []float64{math.Pi / 18, math.Pi / 4, 1, 2}
	aspects := []float64{0.5, 1, 16.0 / 9}
	for _, fovy := range fovs {
		for _, aspect := range aspects {
			near, far := 0.1, 100.0
			m, err := PerspFov(fovy, aspect, near, far)
			require.NoError(t, err)
			assertMatrix(t, fromMgl(mgl64.Perspective(fovy, aspect, near, far)), m)

			h := 2 * near * math.Tan(fovy/2)
			sym, err := PerspSym(h*aspect, h, near, far)
			require.NoError(t, err)
			assert.True(t, sym.IsApproxEqual(m, 1e-9), "fovy %v aspect %v:\n%v\n%v", fovy, aspect, sym, m)

			ar, err := PerspAR(h, aspect, near, far)
			require.NoError(t, err)
			assert.True(t, ar.IsApproxEqual(m, 1e-9))
		}
	}
}

func TestPerspFovFloat32(t *testing.T) {
	m, err := PerspFov[float32](linalg.DegToRad[float32](45), 16.0/9, 0.1, 100)
	require.NoError(t, err)
	want := mgl64.Perspective(math.Pi/4, 16.0/9, 0.1, 100)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, want.At(i, j), float64(m.Get(i, j)), 1e-5, "(%d, %d)", i, j)
		}
	}
}

func TestInvalid(t *testing.T) {
	_, err := Orthogonal(1.0, 1.0, 0.0, 1.0, 0.0, 1.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = Orthogonal(0.0, 1.0, 2.0, 2.0, 0.0, 1.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = OrthoSym(1.0, 1.0, 5.0, 5.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = OrthoAR(1.0, 0.0, 0.1, 10.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)

	_, err = Perspective(-1.0, 1.0, -1.0, 1.0, 0.0, 10.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = PerspSym(0.0, 1.0, 0.1, 10.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = PerspAR(1.0, -1.0, 0.1, 10.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)

	_, err = PerspFov(0.0, 1.0, 0.1, 10.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = PerspFov(math.Pi, 1.0, 0.1, 10.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = PerspFov(1.0, 0.0, 0.1, 10.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = PerspFov(1.0, 1.0, -0.1, 10.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = PerspFov(1.0, 1.0, 1.0, 1.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = PerspFov(math.NaN(), 1.0, 1.0, 10.0)
	assert.ErrorIs(t, err, linalg.ErrInvalidArgument)
}
