// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Config contains generator configuration.
type Config struct {
	// OutputDir is the output directory.
	OutputDir string

	// OutputFile is for single file output (optional).
	OutputFile string

	// Classes filters to specific class names (empty = all).
	Classes []string

	// ResolveDeps includes transitive base classes when filtering.
	ResolveDeps bool

	// Source is the descriptor provenance (for generated file headers).
	Source string

	// Renderer produces member bindings for methods and properties.
	// Nil selects the target's built-in stub renderer.
	Renderer MemberRenderer

	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}
