// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system utilities for locating
// configuration files.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/xgl/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// A directory is not a file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// An absolute file is returned as is if it exists, and a relative
// file is also tried in the current directory when paths is empty.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, file := range files {
		if filepath.IsAbs(file) {
			if ok, _ := FileExists(file); ok {
				res = append(res, file)
			}
			continue
		}
		dirs := paths
		if len(dirs) == 0 {
			dirs = []string{"."}
		}
		for _, dir := range dirs {
			fp := filepath.Join(dir, file)
			ok, _ := FileExists(fp)
			if !ok {
				continue
			}
			if fa, err := filepath.Abs(fp); err == nil {
				fp = fa
			}
			res = append(res, fp)
		}
	}
	return res
}
