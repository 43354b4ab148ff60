// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/xgl/mesh"
	"github.com/spf13/cobra"
)

func (a *app) modelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Print the model matrices of the demo scene cubes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, ps := range mesh.Scene(float32(a.v.GetFloat64("time"))) {
				printMatrix(a, w, fmt.Sprintf("cube %d at %v", i, ps.Pos), ps.Matrix)
			}
			return nil
		},
	}
	cmd.Flags().Float64("time", 0, "scene time in seconds")
	return cmd
}
