// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cmd

import (
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"wrapgen.dev/wrapgen/generator"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List available generation targets",
	RunE:  runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Target", "Version", "Extensions", "Description")

	for _, name := range generator.List() {
		g, ok := generator.Get(name)
		if !ok {
			continue
		}
		meta := g.Metadata()
		table.Append(
			meta.Name,
			meta.Version,
			strings.Join(meta.FileExtensions, ", "),
			meta.Description,
		)
	}

	table.Render()
	return nil
}
