// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the xgl tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/xgl/base/errors"
	"cogentcore.org/xgl/base/logx"
	"cogentcore.org/xgl/linalg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the settings shared by all commands. Flag values are read
// through v, so that each can also be given in an XGL_ environment
// variable, with dashes replaced by underscores.
type app struct {
	v *viper.Viper
}

// NewRoot returns the root xgl command with all of its subcommands.
func NewRoot() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("XGL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "xgl",
		Short:         "Build and inspect the matrices of a 3D camera",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			logx.UserLevel = logx.LevelFromFlags(a.v.GetBool("vv"), a.v.GetBool("verbose"), a.v.GetBool("quiet"))
			logx.SetDefaultLogger()
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.BoolP("verbose", "v", false, "show info messages")
	pf.Bool("vv", false, "show debug messages")
	pf.BoolP("quiet", "q", false, "only show errors")
	pf.Bool("row-major", false, "print flat matrix data in row-major instead of column-major order")
	pf.Bool("data", false, "print the flat element buffer of each matrix")

	root.AddCommand(a.projectCmd(), a.viewCmd(), a.modelsCmd(), a.cameraCmd(), a.meshCmd())

	// errors are logged here rather than printed by cobra
	for _, c := range root.Commands() {
		wrapRunE(c)
	}
	return root
}

// wrapRunE makes the command and its subcommands log any error they return.
func wrapRunE(c *cobra.Command) {
	if run := c.RunE; run != nil {
		c.RunE = func(cmd *cobra.Command, args []string) error {
			return errors.Log(run(cmd, args))
		}
	}
	for _, sc := range c.Commands() {
		wrapRunE(sc)
	}
}

func (a *app) major() linalg.Major {
	if a.v.GetBool("row-major") {
		return linalg.RowMajor
	}
	return linalg.ColumnMajor
}

// vec3 returns the vector flag with the given name, given as three
// comma-separated numbers.
func (a *app) vec3(name string) (linalg.Vector3[float64], error) {
	s := a.v.GetString(name)
	fs := strings.Split(s, ",")
	if len(fs) != 3 {
		return linalg.Vector3[float64]{}, fmt.Errorf("%w: --%s %q must be three comma-separated numbers", linalg.ErrInvalidArgument, name, s)
	}
	var v linalg.Vector3[float64]
	for i, f := range fs {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return v, fmt.Errorf("%w: --%s: %v", linalg.ErrInvalidArgument, name, err)
		}
		v[i] = x
	}
	return v, nil
}

// printMatrix writes the matrix under the given label, followed by its
// flat element buffer in the selected order if requested.
func printMatrix[T linalg.Float](a *app, w io.Writer, label string, m linalg.Matrix4[T]) {
	fmt.Fprintf(w, "%s:\n%v\n", label, m)
	if a.v.GetBool("data") {
		mm := m.ToMajor(a.major())
		fmt.Fprintf(w, "%s data (%v): %v\n", label, mm.Major(), mm.Data())
	}
	slog.Debug("printed matrix", "label", label, "major", a.major())
}
