// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import "cogentcore.org/xgl/linalg"

// Uniforms contains the camera view and projection matricies, for uniform uploading.
type Uniforms struct {
	// View Camera: transforms world into camera-centered, 3D coordinates.
	View linalg.Matrix4f

	// Projection Camera: transforms camera coords into 2D render coordinates.
	Projection linalg.Matrix4f
}

// Uniforms returns the current view and projection matrices.
func (c *Camera) Uniforms() Uniforms {
	return Uniforms{View: c.viewMat, Projection: c.projMat}
}

// Data returns the view followed by the projection matrix as 32
// contiguous column-major values, the layout of a uniform block
// holding two mat4.
func (u *Uniforms) Data() []float32 {
	d := make([]float32, 0, 32)
	v := u.View.ToMajor(linalg.ColumnMajor)
	p := u.Projection.ToMajor(linalg.ColumnMajor)
	d = append(d, v.Data()...)
	return append(d, p.Data()...)
}
