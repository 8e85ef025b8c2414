// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package cmd implements the wrapgen CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	"wrapgen.dev/wrapgen/generator"
	"wrapgen.dev/wrapgen/generators/golang"
	"wrapgen.dev/wrapgen/generators/python"

	_ "github.com/tliron/commonlog/simple"
)

var (
	cfgFile   string
	verbosity int

	log = commonlog.GetLogger("wrapgen")
)

var rootCmd = &cobra.Command{
	Use:   "wrapgen",
	Short: "Generate wrapper classes from a native class API descriptor",
	Long: `wrapgen reads the class API descriptor published by a native object
system and generates wrapper classes implementing its object lifetime
protocol: constructor resolution at definition time, category-aware
construction, explicit ownership, and root-only teardown.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wrapgen/config)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	generator.Register(golang.NewGenerator())
	generator.Register(python.NewGenerator())
}

// initConfig sets up logging and reads the config file and environment.
func initConfig() {
	commonlog.Configure(verbosity, nil)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		viper.AddConfigPath(filepath.Join(home, ".wrapgen"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("wrapgen")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Infof("using config file %s", viper.ConfigFileUsed())
	}
}
