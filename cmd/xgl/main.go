// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xgl prints the projection, view and model matrices built by
// the xgl packages, and replays camera input scripts.
package main

import (
	"os"

	"cogentcore.org/xgl/cmd/xgl/cmd"
)

func main() {
	if err := cmd.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
