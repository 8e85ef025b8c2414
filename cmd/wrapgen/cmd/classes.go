// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"wrapgen.dev/wrapgen/internal/load"
)

var classesAPISource string

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the classes in a descriptor",
	Long: `Load a class API descriptor and print every class with its base,
lifecycle category, and member counts.`,
	RunE: runClasses,
}

func init() {
	rootCmd.AddCommand(classesCmd)

	classesCmd.Flags().StringVarP(&classesAPISource, "api", "i", "", "class API descriptor (file path or URL)")
	classesCmd.MarkFlagRequired("api")
}

func runClasses(cmd *cobra.Command, args []string) error {
	result, err := load.Load(cmd.Context(), classesAPISource, load.Options{})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Class", "Base", "Category", "Constants", "Methods", "Properties")

	for _, c := range result.API.Classes {
		table.Append(
			c.Name,
			c.BaseClass,
			c.Category().String(),
			strconv.Itoa(len(c.Constants)),
			strconv.Itoa(len(c.Methods)),
			strconv.Itoa(len(c.Properties)),
		)
	}

	table.Render()
	fmt.Printf("\nTotal classes: %d (from %s)\n", len(result.API.Classes), result.Source)
	return nil
}
