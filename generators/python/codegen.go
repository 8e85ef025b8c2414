// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package python generates Python wrapper classes from a native class API.
//
// The generated module mirrors the wrapper lifecycle contract:
//   - the native constructor is resolved once per class, at class
//     definition time, via the runtime module's resolve_constructor
//   - __init__ is the standard fallible path with the three-way branch on
//     the lifecycle category
//   - new and from_ptr bypass __init__ through cls.__new__
//   - __del__ is emitted on root classes only; subclasses inherit it
package python

import (
	"bytes"
	"fmt"
	"strings"

	"wrapgen.dev/wrapgen/generator"
	"wrapgen.dev/wrapgen/model"
)

// Config controls Python code generation.
type Config struct {
	// RuntimeModule is the Python module providing resolve_constructor
	// and destroy.
	RuntimeModule string

	// Classes filters generation to specific classes (empty = all).
	Classes []string

	// ResolveDeps pulls base classes into a class filter.
	ResolveDeps bool

	// Source describes where the descriptor came from (header comment).
	Source string

	// Renderer produces member bindings. Nil selects StubRenderer.
	Renderer generator.MemberRenderer
}

// Output contains the generated Python content.
type Output struct {
	Python []byte
}

// Codegen generates Python wrapper source from the class API.
type Codegen struct {
	api      *model.API
	config   Config
	renderer generator.MemberRenderer

	classFilter map[string]bool
}

// New creates a new Python Codegen.
func New(api *model.API, cfg Config) *Codegen {
	if cfg.RuntimeModule == "" {
		cfg.RuntimeModule = "wrapgen_runtime"
	}
	c := &Codegen{
		api:      api,
		config:   cfg,
		renderer: cfg.Renderer,
	}
	if c.renderer == nil {
		c.renderer = StubRenderer{}
	}
	if len(cfg.Classes) > 0 {
		c.classFilter = make(map[string]bool)
		for _, name := range cfg.Classes {
			c.classFilter[name] = true
		}
	}
	return c
}

// Generate produces the Python source file.
func (g *Codegen) Generate() (*Output, error) {
	if g.classFilter != nil && g.config.ResolveDeps {
		g.classFilter = generator.ResolveDeps(g.api, g.classFilter)
	}

	selected, err := g.selectClasses()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(g.fileHeader())
	if len(selected) > 0 {
		fmt.Fprintf(&buf, "from %s import resolve_constructor, destroy\n", g.config.RuntimeModule)
	}

	// A Python class statement needs its base defined first.
	for _, c := range topoOrder(g.api, selected) {
		buf.WriteString("\n\n")
		if err := g.generateClass(&buf, c); err != nil {
			return nil, err
		}
	}

	return &Output{Python: buf.Bytes()}, nil
}

func (g *Codegen) selectClasses() ([]*model.Class, error) {
	if g.classFilter == nil {
		return g.api.Classes, nil
	}

	seen := make(map[string]bool)
	var selected []*model.Class
	for _, c := range g.api.Classes {
		if g.classFilter[c.Name] {
			selected = append(selected, c)
			seen[c.Name] = true
		}
	}

	for name := range g.classFilter {
		if !seen[name] {
			return nil, fmt.Errorf("unknown class %q in filter", name)
		}
	}

	for _, c := range selected {
		if c.BaseClass != "" && !seen[c.BaseClass] {
			return nil, fmt.Errorf("class %q requires base class %q: add it to the filter or enable resolve-deps", c.Name, c.BaseClass)
		}
	}

	return selected, nil
}

// topoOrder returns classes with every base before its subclasses,
// preserving descriptor order between unrelated classes.
func topoOrder(api *model.API, classes []*model.Class) []*model.Class {
	selected := make(map[string]bool, len(classes))
	for _, c := range classes {
		selected[c.Name] = true
	}

	emitted := make(map[string]bool, len(classes))
	ordered := make([]*model.Class, 0, len(classes))

	var emit func(c *model.Class)
	emit = func(c *model.Class) {
		if emitted[c.Name] {
			return
		}
		emitted[c.Name] = true
		if c.BaseClass != "" && selected[c.BaseClass] {
			if base, ok := api.Lookup(c.BaseClass); ok {
				emit(base)
			}
		}
		ordered = append(ordered, c)
	}

	for _, c := range classes {
		emit(c)
	}
	return ordered
}

// ── Per-class emission ──────────────────────────────────────────────

func (g *Codegen) generateClass(buf *bytes.Buffer, c *model.Class) error {
	isRoot := c.BaseClass == ""

	if isRoot {
		fmt.Fprintf(buf, "class %s:\n", c.Name)
	} else {
		fmt.Fprintf(buf, "class %s(%s):\n", c.Name, c.BaseClass)
	}
	g.generateDocstring(buf, c)

	if isRoot {
		buf.WriteString("    __slots__ = (\"_ptr\", \"_owner\")\n")
	} else {
		buf.WriteString("    __slots__ = ()\n")
	}

	// Constructor resolution happens here, at class definition time, so
	// a registry mismatch aborts the module import.
	if c.Singleton {
		buf.WriteString("    _constructor = None\n")
	} else {
		fmt.Fprintf(buf, "    _constructor = staticmethod(resolve_constructor(%q))\n", c.Name)
	}

	g.generateConstants(buf, c)
	g.generateInit(buf, c)
	g.generateNew(buf, c)
	if isRoot {
		g.generateFromPtr(buf, c)
		g.generateDel(buf, c)
	}
	return g.generateMembers(buf, c)
}

func (g *Codegen) generateDocstring(buf *bytes.Buffer, c *model.Class) {
	switch c.Category() {
	case model.CategorySingleton:
		if c.SingletonName != "" {
			fmt.Fprintf(buf, "    \"\"\"Wrapper for the native %s singleton (accessor %q).\"\"\"\n\n", c.Name, c.SingletonName)
		} else {
			fmt.Fprintf(buf, "    \"\"\"Wrapper for the native %s singleton.\"\"\"\n\n", c.Name)
		}
	case model.CategoryAbstract:
		fmt.Fprintf(buf, "    \"\"\"Wrapper for the native %s class (not instantiable).\"\"\"\n\n", c.Name)
	default:
		fmt.Fprintf(buf, "    \"\"\"Wrapper for the native %s class.\"\"\"\n\n", c.Name)
	}
}

func (g *Codegen) generateConstants(buf *bytes.Buffer, c *model.Class) {
	names := c.ConstantNames()
	if len(names) == 0 {
		return
	}
	buf.WriteString("\n")
	for _, name := range names {
		fmt.Fprintf(buf, "    %s = %d\n", name, c.Constants[name])
	}
}

func (g *Codegen) generateInit(buf *bytes.Buffer, c *model.Class) {
	buf.WriteString("\n    def __init__(self):\n")
	switch c.Category() {
	case model.CategorySingleton:
		fmt.Fprintf(buf, "        raise TypeError(\"%s is a singleton, cannot instantiate directly\")\n", c.Name)
	case model.CategoryAbstract:
		fmt.Fprintf(buf, "        raise TypeError(\"%s is not instantiable\")\n", c.Name)
	default:
		buf.WriteString("        ptr = self._constructor()\n")
		buf.WriteString("        if not ptr:\n")
		fmt.Fprintf(buf, "            raise MemoryError(\"%s: native constructor returned null\")\n", c.Name)
		buf.WriteString("        self._ptr = ptr\n")
		buf.WriteString("        self._owner = True\n")
	}
}

func (g *Codegen) generateNew(buf *bytes.Buffer, c *model.Class) {
	buf.WriteString("\n    @classmethod\n")
	buf.WriteString("    def new(cls):\n")
	switch c.Category() {
	case model.CategorySingleton:
		fmt.Fprintf(buf, "        raise TypeError(\"%s is a singleton, cannot instantiate directly\")\n", c.Name)
	case model.CategoryAbstract:
		fmt.Fprintf(buf, "        raise TypeError(\"%s is not instantiable\")\n", c.Name)
	default:
		buf.WriteString("        ptr = cls._constructor()\n")
		buf.WriteString("        if not ptr:\n")
		fmt.Fprintf(buf, "            raise MemoryError(\"%s: native constructor returned null\")\n", c.Name)
		buf.WriteString("        self = cls.__new__(cls)\n")
		buf.WriteString("        self._ptr = ptr\n")
		buf.WriteString("        self._owner = True\n")
		buf.WriteString("        return self\n")
	}
}

func (g *Codegen) generateFromPtr(buf *bytes.Buffer, c *model.Class) {
	buf.WriteString("\n    @classmethod\n")
	buf.WriteString("    def from_ptr(cls, ptr, owner=False):\n")
	buf.WriteString("        self = cls.__new__(cls)\n")
	buf.WriteString("        self._ptr = ptr\n")
	buf.WriteString("        self._owner = owner\n")
	buf.WriteString("        return self\n")
}

// generateDel emits the root-only finalizer. An instance whose __init__
// raised has no slots assigned, so the slot reads must be guarded.
func (g *Codegen) generateDel(buf *bytes.Buffer, c *model.Class) {
	buf.WriteString("\n    def __del__(self):\n")
	buf.WriteString("        ptr = getattr(self, \"_ptr\", None)\n")
	buf.WriteString("        if ptr is not None and self._owner:\n")
	buf.WriteString("            destroy(ptr)\n")
	buf.WriteString("        self._ptr = None\n")
}

func (g *Codegen) generateMembers(buf *bytes.Buffer, c *model.Class) error {
	for _, m := range c.Methods {
		text, err := g.renderer.Method(c, m)
		if err != nil {
			return fmt.Errorf("render method %s.%s: %w", c.Name, m.Name, err)
		}
		buf.WriteString(text)
	}
	for _, p := range c.Properties {
		text, err := g.renderer.Property(c, p)
		if err != nil {
			return fmt.Errorf("render property %s.%s: %w", c.Name, p.Name, err)
		}
		buf.WriteString(text)
	}
	return nil
}

func (g *Codegen) fileHeader() string {
	var lines []string
	lines = append(lines, "# Code generated by wrapgen. DO NOT EDIT.")
	if g.config.Source != "" {
		lines = append(lines, fmt.Sprintf("# Source: %s", g.config.Source))
	}
	lines = append(lines, "", "")
	return strings.Join(lines, "\n")
}
