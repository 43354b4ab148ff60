// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/xgl/base/errors"
	"cogentcore.org/xgl/linalg"
	"cogentcore.org/xgl/transform"
)

// ScenePositions are the positions of the cubes of the demo scene.
var ScenePositions = []linalg.Vector3f{
	{0, 0, 0},
	{2, 5, -15},
	{-1.5, -2.2, -2.5},
	{-3.8, -2, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3, -7.5},
	{1.3, -2, -2.5},
	{1.5, 2, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1, -1.5},
}

// SceneAxis is the axis the cubes of the demo scene spin about.
var SceneAxis = linalg.Vector3f{1, 0.5, 0.3}

// Scene returns the poses of the cubes of the demo scene at time t in
// seconds: cube i is at ScenePositions[i], rotated by i + t radians
// about SceneAxis. If SceneAxis has been set to zero, the error is
// logged and the cubes are not rotated.
func Scene(t float32) []transform.Pose[float32] {
	poses := make([]transform.Pose[float32], len(ScenePositions))
	for i, p := range ScenePositions {
		ps := &poses[i]
		ps.Pos = p
		ps.Defaults()
		errors.Log(ps.SetAxisRotation(float32(i)+t, SceneAxis))
		ps.UpdateMatrix()
	}
	return poses
}
