// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"cogentcore.org/xgl/linalg"
	"cogentcore.org/xgl/projection"
	"github.com/spf13/cobra"
)

func (a *app) projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print a projection matrix",
	}
	box := func(name, short string, build func(l, r, b, t, n, f float64) (linalg.Matrix4[float64], error)) *cobra.Command {
		c := &cobra.Command{
			Use:   name,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				v := a.v
				m, err := build(v.GetFloat64("left"), v.GetFloat64("right"), v.GetFloat64("bottom"), v.GetFloat64("top"), v.GetFloat64("near"), v.GetFloat64("far"))
				if err != nil {
					return err
				}
				printMatrix(a, cmd.OutOrStdout(), "projection", m)
				return nil
			},
		}
		f := c.Flags()
		f.Float64("left", -1, "left clipping plane")
		f.Float64("right", 1, "right clipping plane")
		f.Float64("bottom", -1, "bottom clipping plane")
		f.Float64("top", 1, "top clipping plane")
		f.Float64("near", 0.1, "near clipping plane distance")
		f.Float64("far", 100, "far clipping plane distance")
		return c
	}
	fov := &cobra.Command{
		Use:   "fov",
		Short: "Perspective projection from a vertical field of view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.v
			m, err := projection.PerspFov(linalg.DegToRad(v.GetFloat64("fov")), v.GetFloat64("aspect"), v.GetFloat64("near"), v.GetFloat64("far"))
			if err != nil {
				return err
			}
			printMatrix(a, cmd.OutOrStdout(), "projection", m)
			return nil
		},
	}
	f := fov.Flags()
	f.Float64("fov", 45, "vertical field of view in degrees")
	f.Float64("aspect", 16.0/9.0, "aspect ratio (width / height)")
	f.Float64("near", 0.1, "near clipping plane distance")
	f.Float64("far", 100, "far clipping plane distance")

	cmd.AddCommand(
		box("ortho", "Orthographic projection of a box", projection.Orthogonal[float64]),
		box("persp", "Perspective projection of a frustum", projection.Perspective[float64]),
		fov,
	)
	return cmd
}
