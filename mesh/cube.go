// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/xgl/linalg"

// cubeFace is a face of the unit cube: its outward normal and the
// direction of increasing V texture coordinate.
type cubeFace struct {
	normal, up linalg.Vector3f
}

var cubeFaces = [6]cubeFace{
	{linalg.Vec3[float32](0, 0, 1), linalg.Vec3[float32](0, 1, 0)},
	{linalg.Vec3[float32](0, 0, -1), linalg.Vec3[float32](0, 1, 0)},
	{linalg.Vec3[float32](-1, 0, 0), linalg.Vec3[float32](0, 1, 0)},
	{linalg.Vec3[float32](1, 0, 0), linalg.Vec3[float32](0, 1, 0)},
	{linalg.Vec3[float32](0, -1, 0), linalg.Vec3[float32](0, 0, 1)},
	{linalg.Vec3[float32](0, 1, 0), linalg.Vec3[float32](0, 0, -1)},
}

// corners of a face in texture coordinates, in vertex order
var cubeTexCoords = [4]linalg.Vector2f{{1, 1}, {1, 0}, {0, 0}, {0, 1}}

// Cube returns a unit cube centered at the origin, with four vertices
// per face so that each face has its own normal and texture coordinates
// covering the whole texture. Triangles wind counter-clockwise seen
// from outside.
func Cube() *Mesh {
	m := &Mesh{
		Positions: make([]linalg.Vector3f, 0, 24),
		Normals:   make([]linalg.Vector3f, 0, 24),
		TexCoords: make([]linalg.Vector2f, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}
	for i, f := range cubeFaces {
		// u runs along increasing U texture coordinate
		u := f.normal.Cross(f.up)
		for _, tc := range cubeTexCoords {
			p := f.normal.Add(u.MulScalar(2*tc.X() - 1)).Add(f.up.MulScalar(2*tc.Y() - 1))
			m.Positions = append(m.Positions, p.MulScalar(0.5))
			m.Normals = append(m.Normals, f.normal)
			m.TexCoords = append(m.TexCoords, tc)
		}
		b := uint32(i * 4)
		m.Indices = append(m.Indices, b, b+1, b+3, b+1, b+2, b+3)
	}
	return m
}
