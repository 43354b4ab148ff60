// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"math"
	"testing"

	"cogentcore.org/xgl/base/tolassert"
	"cogentcore.org/xgl/linalg"
	"cogentcore.org/xgl/transform"
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

func assertMatrix(t *testing.T, want, got linalg.Matrix4[float64], tol float64) {
	t.Helper()
	assert.True(t, want.IsApproxEqual(got, tol), "want:\n%v\ngot:\n%v", want, got)
}

func TestLookAt(t *testing.T) {
	pos := linalg.Vec3(1.0, 2.0, 3.0)
	target := linalg.Vec3(-2.0, 0.5, -4.0)
	up := linalg.Vec3(0.0, 1.0, 0.0)
	m, err := LookAt(pos, target, up)
	require.NoError(t, err)
	want := mgl64.LookAtV(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{-2, 0.5, -4}, mgl64.Vec3{0, 1, 0})
	assertMatrix(t, fromMgl(want), m, 1e-12)

	// the camera position goes to the origin and the target onto -Z
	assert.True(t, m.MulPoint(pos).IsApproxEqual(linalg.Vector3[float64]{}, 1e-12))
	p := m.MulPoint(target)
	assert.InDelta(t, 0, p.X(), 1e-12)
	assert.InDelta(t, 0, p.Y(), 1e-12)
	assert.InDelta(t, -target.Sub(pos).Norm(), p.Z(), 1e-12)
}

func TestLookAtDegenerate(t *testing.T) {
	pos := linalg.Vec3(1.0, 2.0, 3.0)
	_, err := LookAt(pos, pos, linalg.Vec3(0.0, 1.0, 0.0))
	assert.ErrorIs(t, err, linalg.ErrZeroVector)

	_, err = LookAt(pos, linalg.Vec3(1.0, 5.0, 3.0), linalg.Vec3(0.0, 1.0, 0.0))
	assert.ErrorIs(t, err, linalg.ErrZeroVector)
	_, err = LookAt(pos, linalg.Vec3(1.0, 2.0, 4.0), linalg.Vec3(0.0, 0.0, -3.0))
	assert.ErrorIs(t, err, linalg.ErrZeroVector)
	_, err = LookAt(pos, linalg.Vec3(1.0, 2.0, 4.0), linalg.Vector3[float64]{})
	assert.ErrorIs(t, err, linalg.ErrZeroVector)
}

func TestEuler(t *testing.T) {
	pos := linalg.Vec3(0.5, -1.0, 4.0)
	angles := []float64{0, 0.4, -1.1, 2.8}
	for _, yaw := range angles {
		for _, pitch := range angles {
			for _, roll := range angles {
				m := Euler(pos, yaw, pitch, roll)
				want := transform.Rotate(yaw, pitch, roll).Transpose().Mul(transform.Translate(pos.Negate()))
				assertMatrix(t, want, m, 1e-12)
				assert.Equal(t, linalg.ColumnMajor, m.Major())
			}
		}
	}

	// the default orientation is a plain translation
	assertMatrix(t, transform.Translate(pos.Negate()), Euler(pos, 0, 0, 0), 0)
}

func TestEulerLookAt(t *testing.T) {
	pos := linalg.Vec3(0.0, 0.0, 3.0)
	up := linalg.Vec3(0.0, 1.0, 0.0)
	fronts := []linalg.Vector3[float64]{
		linalg.Vec3(0.0, 0.0, -1.0),
		linalg.Vec3(1.0, 0.0, 0.0),
		linalg.Vec3(1.0, 2.0, 3.0),
		linalg.Vec3(-0.3, -0.8, -0.2),
		linalg.Vec3(0.0, 0.5, 1.0),
	}
	for _, front := range fronts {
		yaw, pitch := EulerFromAxes(front)
		la, err := LookAt(pos, pos.Add(front), up)
		require.NoError(t, err)
		assertMatrix(t, la, Euler(pos, yaw, pitch, 0), 1e-12)

		f, _, _ := Axes(la)
		n, err := front.Normalize()
		require.NoError(t, err)
		assert.True(t, f.IsApproxEqual(n, 1e-12), "%v != %v", f, n)
	}
}

func TestAxes(t *testing.T) {
	yaw, pitch := 0.7, -0.3
	front, up, right := Axes(Euler(linalg.Vec3(4.0, 5.0, 6.0), yaw, pitch, 0))
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	assert.True(t, front.IsApproxEqual(linalg.Vec3(sy*cp, sp, -cy*cp), 1e-12))
	assert.True(t, right.IsApproxEqual(linalg.Vec3(cy, 0, sy), 1e-12))
	assert.True(t, up.IsApproxEqual(linalg.Vec3(-sy*sp, cp, cy*sp), 1e-12))
	assert.True(t, right.Cross(up).IsApproxEqual(front.Negate(), 1e-12))

	y, p := EulerFromAxes(front)
	tolassert.EqualTol(t, yaw, y, 1e-12)
	tolassert.EqualTol(t, pitch, p, 1e-12)

	_, up, _ = Axes(Euler(linalg.Vector3[float64]{}, 0, 0, math.Pi/2))
	assert.True(t, up.IsApproxEqual(linalg.Vec3(-1.0, 0.0, 0.0), 1e-12), "%v", up)
}

func TestEulerFromAxesFloat32(t *testing.T) {
	yaw, pitch := EulerFromAxes(linalg.Vec3[float32](1, 0, -1))
	tolassert.EqualTol(t, float32(math.Pi/4), yaw, 1e-6)
	tolassert.EqualTol(t, 0, pitch, 1e-6)
}

func TestRetranslate(t *testing.T) {
	m := Euler(linalg.Vec3(1.0, 2.0, 3.0), 0.3, 0.2, 0.1)
	pos := linalg.Vec3(-5.0, 0.0, 7.0)
	assertMatrix(t, Euler(pos, 0.3, 0.2, 0.1), Retranslate(m, pos), 1e-12)
	assert.True(t, m.IsEqual(Euler(linalg.Vec3(1.0, 2.0, 3.0), 0.3, 0.2, 0.1)), "argument must not be modified")
}
