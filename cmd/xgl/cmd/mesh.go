// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/xgl/mesh"
	"github.com/spf13/cobra"
)

func (a *app) meshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mesh",
		Short: "Print the vertex layout of the demo cube",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mesh.Cube()
			data, l, err := m.Interleave()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "vertices: %d indices: %d floats: %d\n", m.NVertex(), m.NIndex(), len(data))
			fmt.Fprint(w, l)
			if a.v.GetBool("data") {
				stride := l.Attributes()[0].Stride / 4
				for i := 0; i < len(data); i += stride {
					fmt.Fprintln(w, data[i:i+stride])
				}
			}
			return nil
		},
	}
}
