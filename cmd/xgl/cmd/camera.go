// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"

	"cogentcore.org/xgl/camera"
	"cogentcore.org/xgl/config"
	"github.com/spf13/cobra"
)

func (a *app) cameraCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camera [config file]",
		Short: "Replay a camera input script and print the camera matrices",
		Long: `Replay a camera input script and print the camera matrices.

The config file is TOML or YAML, chosen by its extension, and is looked
for on the --path directories. Without a file the demo camera is run
with no inputs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &config.Config{}
			cfg.Defaults()
			if len(args) == 1 {
				if err := config.Open(cfg, args[0], a.v.GetStringSlice("path")...); err != nil {
					return err
				}
			}
			if n := a.v.GetInt("frames"); n > 0 {
				cfg.Frames = n
			}
			w := cmd.OutOrStdout()
			every := a.v.GetInt("every")
			c, err := cfg.Replay(func(frame int, c *camera.Camera) error {
				if every > 0 && frame%every == 0 {
					printCamera(a, cmd, frame, c)
				}
				return nil
			})
			if err != nil {
				return err
			}
			slog.Info("replayed camera script", "frames", cfg.Frames, "steps", len(cfg.Script))
			fmt.Fprintln(w, "final:")
			printCamera(a, cmd, cfg.Frames, c)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringSlice("path", nil, "directories to look for the config file in")
	f.Int("frames", 0, "number of frames to replay, overriding the config file")
	f.Int("every", 0, "also print the camera every this many frames")
	return cmd
}

func printCamera(a *app, cmd *cobra.Command, frame int, c *camera.Camera) {
	w := cmd.OutOrStdout()
	yaw, pitch, roll := c.Euler()
	fmt.Fprintf(w, "frame %d position: %v yaw: %.4g pitch: %.4g roll: %.4g fov: %.4g\n", frame, c.Position(), yaw, pitch, roll, c.Fov())
	printMatrix(a, w, "view", c.View())
	printMatrix(a, w, "projection", c.Projection())
}
