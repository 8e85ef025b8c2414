// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package load reads a native class API descriptor from a local file or an
// HTTP(S) URL. Descriptors are JSON arrays as published by the engine's
// metadata-extraction tool; a YAML rendition of the same schema is accepted
// and normalized to JSON before parsing.
package load

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"wrapgen.dev/wrapgen/model"
)

// Format identifies the on-disk encoding of a descriptor.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Options configures descriptor loading.
type Options struct {
	// Timeout for network operations. Zero means 60 seconds.
	Timeout time.Duration
}

// Result contains the loaded descriptor and its provenance.
type Result struct {
	// API is the parsed and validated class descriptor set.
	API *model.API

	// Source describes where the descriptor was loaded from.
	Source string

	// Format is the detected input encoding.
	Format Format
}

// Load reads, decodes, and validates the descriptor named by source. A
// source starting with http:// or https:// is fetched over the network;
// anything else is treated as a local path.
func Load(ctx context.Context, source string, opts Options) (*Result, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return loadFromURL(ctx, source, opts)
	}
	return loadFromFile(source)
}

func loadFromFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	format := detectFormat(path, data)
	api, err := parseDescriptor(data, format)
	if err != nil {
		return nil, err
	}

	return &Result{
		API:    api,
		Source: fmt.Sprintf("file://%s", path),
		Format: format,
	}, nil
}

func loadFromURL(ctx context.Context, url string, opts Options) (*Result, error) {
	reqCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch descriptor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	format := detectFormat(url, data)
	api, err := parseDescriptor(data, format)
	if err != nil {
		return nil, err
	}

	return &Result{
		API:    api,
		Source: url,
		Format: format,
	}, nil
}

// detectFormat picks the encoding from the file extension, falling back to
// content sniffing: a descriptor is a JSON array, so a leading bracket or
// brace means JSON.
func detectFormat(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}

	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return FormatJSON
	}
	return FormatYAML
}

func parseDescriptor(data []byte, format Format) (*model.API, error) {
	if format == FormatYAML {
		normalized, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		data = normalized
	}
	return model.Parse(data)
}

// yamlToJSON re-encodes a YAML document as JSON so the descriptor parser
// only ever sees one format.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
