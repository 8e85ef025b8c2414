// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command wrapgen generates wrapper classes for a native object system
// from its class API descriptor.
package main

import (
	"os"

	"wrapgen.dev/wrapgen/cmd/wrapgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
