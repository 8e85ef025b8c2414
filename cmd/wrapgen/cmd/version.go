// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wrapgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wrapgen %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
