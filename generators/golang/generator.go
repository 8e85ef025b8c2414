// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"context"

	"wrapgen.dev/wrapgen/generator"
	"wrapgen.dev/wrapgen/model"
)

// Generator implements [generator.Generator] for Go code generation.
type Generator struct{}

// NewGenerator creates a new Go generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "golang",
		Version:        "1.0.0",
		Description:    "Generate Go wrapper types over the bind runtime",
		FileExtensions: []string{".go"},
		URL:            "https://wrapgen.dev",
	}
}

// Generate produces Go output files from the class API.
func (g *Generator) Generate(ctx context.Context, api *model.API, cfg generator.Config) (*generator.Output, error) {
	internalCfg := Config{
		PackageName:    cfg.Option("package", "wrappers"),
		RuntimePackage: cfg.Option("runtime", "wrapgen.dev/wrapgen/bind"),
		Classes:        cfg.Classes,
		ResolveDeps:    cfg.ResolveDeps,
		Source:         cfg.Source,
		Renderer:       cfg.Renderer,
	}

	gen := New(api, internalCfg)
	out, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	result := generator.NewOutput()

	filename := "wrappers.go"
	if cfg.OutputFile != "" {
		filename = cfg.OutputFile
	}

	result.Add(filename, out.Go)
	return result, nil
}
