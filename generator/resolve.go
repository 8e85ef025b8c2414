// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "wrapgen.dev/wrapgen/model"

// ResolveDeps expands a class filter to include every transitive base class
// from the API. Returns nil if filter is nil (meaning "generate all
// classes").
//
// A filtered subclass cannot be emitted without its chain: its wrapper type
// embeds the parent wrapper, and the teardown handler lives on the chain's
// root. Unknown names stay in the filter so the caller can report them.
func ResolveDeps(api *model.API, filter map[string]bool) map[string]bool {
	if filter == nil {
		return nil
	}

	expanded := make(map[string]bool)
	for name := range filter {
		expanded[name] = true
		c, ok := api.Lookup(name)
		if !ok {
			continue
		}
		for _, base := range api.BaseChain(c) {
			expanded[base.Name] = true
		}
	}
	return expanded
}
