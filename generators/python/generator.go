// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package python

import (
	"context"

	"wrapgen.dev/wrapgen/generator"
	"wrapgen.dev/wrapgen/model"
)

// Generator implements [generator.Generator] for Python code generation.
type Generator struct{}

// NewGenerator creates a new Python generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "python",
		Version:        "1.0.0",
		Description:    "Generate Python wrapper classes over a runtime module",
		FileExtensions: []string{".py"},
		URL:            "https://wrapgen.dev",
	}
}

// Generate produces Python output files from the class API.
func (g *Generator) Generate(ctx context.Context, api *model.API, cfg generator.Config) (*generator.Output, error) {
	internalCfg := Config{
		RuntimeModule: cfg.Option("runtime", "wrapgen_runtime"),
		Classes:       cfg.Classes,
		ResolveDeps:   cfg.ResolveDeps,
		Source:        cfg.Source,
		Renderer:      cfg.Renderer,
	}

	gen := New(api, internalCfg)
	out, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	result := generator.NewOutput()

	filename := "wrappers.py"
	if cfg.OutputFile != "" {
		filename = cfg.OutputFile
	}

	result.Add(filename, out.Python)
	return result, nil
}
