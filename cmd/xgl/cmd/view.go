// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/xgl/linalg"
	"cogentcore.org/xgl/view"
	"github.com/spf13/cobra"
)

func (a *app) viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print a view matrix and its axes",
	}
	lookat := &cobra.Command{
		Use:   "lookat",
		Short: "View from a position toward a target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := a.vec3("pos")
			if err != nil {
				return err
			}
			target, err := a.vec3("target")
			if err != nil {
				return err
			}
			up, err := a.vec3("up")
			if err != nil {
				return err
			}
			m, err := view.LookAt(pos, target, up)
			if err != nil {
				return err
			}
			a.printView(cmd, m)
			return nil
		},
	}
	f := lookat.Flags()
	f.String("pos", "0,0,3", "camera position")
	f.String("target", "0,0,0", "point looked at")
	f.String("up", "0,1,0", "world up direction")

	euler := &cobra.Command{
		Use:   "euler",
		Short: "View from a position with yaw, pitch and roll",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := a.vec3("pos")
			if err != nil {
				return err
			}
			m := view.Euler(pos, linalg.DegToRad(a.v.GetFloat64("yaw")), linalg.DegToRad(a.v.GetFloat64("pitch")), linalg.DegToRad(a.v.GetFloat64("roll")))
			a.printView(cmd, m)
			return nil
		},
	}
	f = euler.Flags()
	f.String("pos", "0,0,3", "camera position")
	f.Float64("yaw", 0, "yaw in degrees, positive turns right")
	f.Float64("pitch", 0, "pitch in degrees, positive looks up")
	f.Float64("roll", 0, "roll in degrees")

	cmd.AddCommand(lookat, euler)
	return cmd
}

// printView prints the view matrix, its axes and the yaw and pitch
// of its view direction in degrees.
func (a *app) printView(cmd *cobra.Command, m linalg.Matrix4[float64]) {
	w := cmd.OutOrStdout()
	printMatrix(a, w, "view", m)
	front, up, right := view.Axes(m)
	yaw, pitch := view.EulerFromAxes(front)
	fmt.Fprintf(w, "front: %v\nup: %v\nright: %v\n", front, up, right)
	fmt.Fprintf(w, "yaw: %.4g pitch: %.4g\n", linalg.RadToDeg(yaw), linalg.RadToDeg(pitch))
}
