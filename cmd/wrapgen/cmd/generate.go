// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wrapgen.dev/wrapgen/generator"
	"wrapgen.dev/wrapgen/internal/load"
)

var (
	apiSource   string
	targetName  string
	outputDir   string
	outputFile  string
	packageName string
	runtimePath string
	classList   []string
	resolveDeps bool
	dryRun      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate wrapper code for a target language",
	Long: `Load a class API descriptor (JSON or YAML, from a file or URL) and
generate wrapper source for the selected target.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&apiSource, "api", "i", "", "class API descriptor (file path or URL)")
	generateCmd.Flags().StringVarP(&targetName, "target", "t", "golang", "generation target")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	generateCmd.Flags().StringVar(&outputFile, "output-file", "", "output filename (default per target)")
	generateCmd.Flags().StringVarP(&packageName, "package", "p", "", "package name for generated code")
	generateCmd.Flags().StringVar(&runtimePath, "runtime", "", "runtime import path (golang) or module (python)")
	generateCmd.Flags().StringSliceVar(&classList, "classes", nil, "generate only these classes")
	generateCmd.Flags().BoolVar(&resolveDeps, "resolve-deps", false, "pull base classes into the class filter")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print generated files to stdout instead of writing")

	generateCmd.MarkFlagRequired("api")

	viper.BindPFlag("target", generateCmd.Flags().Lookup("target"))
	viper.BindPFlag("package", generateCmd.Flags().Lookup("package"))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	target := viper.GetString("target")
	gen, ok := generator.Get(target)
	if !ok {
		return fmt.Errorf("unknown target %q (available: %s)", target, strings.Join(generator.List(), ", "))
	}

	ctx := cmd.Context()
	result, err := load.Load(ctx, apiSource, load.Options{})
	if err != nil {
		return err
	}
	log.Infof("loaded %d classes from %s", len(result.API.Classes), result.Source)

	opts := make(map[string]string)
	if pkg := viper.GetString("package"); pkg != "" {
		opts["package"] = pkg
	}
	if runtimePath != "" {
		opts["runtime"] = runtimePath
	}

	out, err := gen.Generate(ctx, result.API, generator.Config{
		OutputDir:   outputDir,
		OutputFile:  outputFile,
		Classes:     classList,
		ResolveDeps: resolveDeps,
		Source:      result.Source,
		Options:     opts,
	})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(out.Files))
	for name := range out.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	if dryRun {
		for _, name := range names {
			fmt.Printf("-- %s --\n", name)
			os.Stdout.Write(out.Files[name])
		}
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, name := range names {
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, out.Files[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Infof("wrote %s", path)
	}
	return nil
}
