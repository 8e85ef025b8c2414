// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for wrapper code generators.
package generator

import (
	"context"

	"wrapgen.dev/wrapgen/model"
)

// Generator is the interface that all wrapper generators must implement.
//
// Generation is a single-pass, side-effect-free transformation of the class
// API: generating twice from the same descriptor set must yield
// byte-identical output.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces output files from the class API.
	Generate(ctx context.Context, api *model.API, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short target identifier (e.g., "golang", "python").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".go"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}

// MemberRenderer renders individual method and property descriptors as
// members of a generated wrapper type. The descriptors are opaque to the
// generator core; a renderer is the external collaborator that interprets
// them. Targets fall back to a built-in stub renderer when Config carries
// none.
type MemberRenderer interface {
	// Method renders one method descriptor as member source text.
	Method(c *model.Class, m *model.Method) (string, error)

	// Property renders one property descriptor as member source text.
	Property(c *model.Class, p *model.Property) (string, error)
}
