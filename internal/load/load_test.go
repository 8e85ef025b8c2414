// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package load

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const jsonDescriptor = `[
	{"name": "Object", "instantiable": true},
	{"name": "Node", "base_class": "Object", "instantiable": true}
]`

const yamlDescriptor = `- name: Object
  instantiable: true
- name: Node
  base_class: Object
  instantiable: true
`

func TestLoadFromFile(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		content    string
		wantErr    bool
		wantFormat Format
	}{
		{
			name:       "json by extension",
			filename:   "api.json",
			content:    jsonDescriptor,
			wantFormat: FormatJSON,
		},
		{
			name:       "yaml by extension",
			filename:   "api.yaml",
			content:    yamlDescriptor,
			wantFormat: FormatYAML,
		},
		{
			name:       "yml by extension",
			filename:   "api.yml",
			content:    yamlDescriptor,
			wantFormat: FormatYAML,
		},
		{
			name:       "json sniffed without extension",
			filename:   "api",
			content:    jsonDescriptor,
			wantFormat: FormatJSON,
		},
		{
			name:       "yaml sniffed without extension",
			filename:   "api",
			content:    yamlDescriptor,
			wantFormat: FormatYAML,
		},
		{
			name:     "invalid json",
			filename: "api.json",
			content:  `{broken`,
			wantErr:  true,
		},
		{
			name:     "invalid descriptor",
			filename: "api.json",
			content:  `[{"name": "Node", "base_class": "Ghost"}]`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write descriptor: %v", err)
			}

			result, err := Load(context.Background(), path, Options{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if result.Format != tt.wantFormat {
				t.Errorf("format = %q, want %q", result.Format, tt.wantFormat)
			}
			if !strings.HasPrefix(result.Source, "file://") {
				t.Errorf("source = %q, want file:// prefix", result.Source)
			}
			if got := len(result.API.Classes); got != 2 {
				t.Errorf("classes = %d, want 2", got)
			}
			if _, ok := result.API.Lookup("Node"); !ok {
				t.Error("Node missing from loaded API")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"), Options{})
	if err == nil {
		t.Fatal("Load() succeeded on missing file")
	}
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api.json":
			w.Write([]byte(jsonDescriptor))
		case "/api.yaml":
			w.Write([]byte(yamlDescriptor))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("json", func(t *testing.T) {
		result, err := Load(context.Background(), srv.URL+"/api.json", Options{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if result.Format != FormatJSON {
			t.Errorf("format = %q, want %q", result.Format, FormatJSON)
		}
		if result.Source != srv.URL+"/api.json" {
			t.Errorf("source = %q, want the request URL", result.Source)
		}
		if got := len(result.API.Classes); got != 2 {
			t.Errorf("classes = %d, want 2", got)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		result, err := Load(context.Background(), srv.URL+"/api.yaml", Options{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if result.Format != FormatYAML {
			t.Errorf("format = %q, want %q", result.Format, FormatYAML)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Load(context.Background(), srv.URL+"/absent.json", Options{})
		if err == nil {
			t.Fatal("Load() succeeded on 404")
		}
		if !strings.Contains(err.Error(), "404") {
			t.Errorf("error %q does not mention the status", err)
		}
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		want Format
	}{
		{name: "json extension wins", file: "x.json", data: "- yaml", want: FormatJSON},
		{name: "yaml extension wins", file: "x.yaml", data: "[1]", want: FormatYAML},
		{name: "leading whitespace json", file: "x", data: "\n\t [1]", want: FormatJSON},
		{name: "object json", file: "x", data: "{}", want: FormatJSON},
		{name: "fallback yaml", file: "x", data: "classes:", want: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormat(tt.file, []byte(tt.data)); got != tt.want {
				t.Errorf("detectFormat(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}
