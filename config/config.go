// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of the xgl command:
// the camera settings and a script of camera inputs to replay,
// read from TOML or YAML files.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/xgl/base/errors"
	"cogentcore.org/xgl/base/fsx"
	"cogentcore.org/xgl/base/iox/tomlx"
	"cogentcore.org/xgl/base/iox/yamlx"
	"cogentcore.org/xgl/camera"
	"cogentcore.org/xgl/linalg"
)

var (
	// ErrNotFound is returned when a config file is not on any of
	// the include paths.
	ErrNotFound = errors.New("config file not found")

	// ErrUnknownFormat is returned for a config file whose extension
	// is not .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("unknown config file format")

	// ErrInvalidStep is returned for a script step with an unknown
	// action or the wrong number of arguments.
	ErrInvalidStep = errors.New("invalid script step")
)

// Config is the configuration of a camera replay.
type Config struct {

	// camera settings at the start of the replay
	Camera camera.Settings `toml:"camera" yaml:"camera"`

	// time step of each frame, in seconds
	DeltaT float32 `toml:"delta_t" yaml:"delta_t"`

	// number of frames to replay
	Frames int `toml:"frames" yaml:"frames"`

	// camera inputs, applied at the start of their frame
	Script []Step `toml:"script" yaml:"script"`
}

// Defaults sets the configuration of the demo scene: a camera three
// units back from the origin with smoothed rotation and zoom, run for
// one second at 60 frames per second.
func (cfg *Config) Defaults() {
	cfg.Camera.Defaults()
	cfg.Camera.Position = linalg.Vec3[float32](0, 0, 3)
	cfg.Camera.SmoothEuler = 0.1
	cfg.Camera.SmoothFov = 0.1
	cfg.DeltaT = float32(1) / 60
	cfg.Frames = 60
	cfg.Script = nil
}

// Validate checks the time step and every script step.
func (cfg *Config) Validate() error {
	if !(cfg.DeltaT > 0) {
		return fmt.Errorf("%w: time step %v must be positive", linalg.ErrInvalidArgument, cfg.DeltaT)
	}
	if cfg.Frames < 0 {
		return fmt.Errorf("%w: frame count %d is negative", linalg.ErrInvalidArgument, cfg.Frames)
	}
	for i := range cfg.Script {
		if err := cfg.Script[i].Validate(); err != nil {
			return fmt.Errorf("script step %d: %w", i, err)
		}
	}
	return nil
}

// Open reads the config from the given file on top of the current values,
// looking for it on the given paths (the current directory if none).
// The format is chosen by the file extension. When the file is found on
// more than one path, each is read in order so that later paths
// overwrite earlier ones.
func Open(cfg *Config, file string, paths ...string) error {
	open, err := opener(file)
	if err != nil {
		return err
	}
	files := fsx.FindFilesOnPaths(paths, file)
	if len(files) == 0 {
		return fmt.Errorf("%w: %q on %v", ErrNotFound, file, paths)
	}
	if err := open(cfg, files...); err != nil {
		return fmt.Errorf("config %q: %w", file, err)
	}
	return cfg.Validate()
}

// Save writes the config to the given file, in the format given by the
// file extension.
func Save(cfg *Config, file string) error {
	switch ext(file) {
	case ".toml":
		return tomlx.Save(cfg, file)
	case ".yaml", ".yml":
		return yamlx.Save(cfg, file)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, file)
}

func opener(file string) (func(v any, filenames ...string) error, error) {
	switch ext(file) {
	case ".toml":
		return tomlx.OpenFiles, nil
	case ".yaml", ".yml":
		return yamlx.OpenFiles, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, file)
}

func ext(file string) string {
	return strings.ToLower(filepath.Ext(file))
}
