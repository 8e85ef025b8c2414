// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package golang generates Go wrapper types from a native class API.
//
// The generated code follows the wrapper lifecycle contract of
// wrapgen.dev/wrapgen/bind:
//   - one bind.Class definition per native class, resolved in a single
//     DefineClasses call at module load
//   - a fallible NewX constructor per class (the standard path)
//   - CreateX and XFromPtr bypass factories
//   - a Free teardown method on root classes only; derived wrappers embed
//     their parent and inherit it
//
// Constants are emitted sorted by name, methods and properties in
// descriptor order. Output is deterministic: the same API yields
// byte-identical source.
package golang

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"wrapgen.dev/wrapgen/generator"
	"wrapgen.dev/wrapgen/internal/naming"
	"wrapgen.dev/wrapgen/model"
)

// Config controls Go code generation.
type Config struct {
	// PackageName is the package name for generated code.
	PackageName string

	// RuntimePackage is the import path of the wrapper runtime.
	RuntimePackage string

	// Classes filters generation to specific classes (empty = all).
	Classes []string

	// ResolveDeps pulls base classes into a class filter.
	ResolveDeps bool

	// Source describes where the descriptor came from (header comment).
	Source string

	// Renderer produces member bindings. Nil selects StubRenderer.
	Renderer generator.MemberRenderer
}

// Output contains the generated Go content.
type Output struct {
	Go []byte
}

// Codegen generates Go wrapper source from the class API.
type Codegen struct {
	api      *model.API
	config   Config
	renderer generator.MemberRenderer

	classFilter map[string]bool
}

// New creates a new Go Codegen.
func New(api *model.API, cfg Config) *Codegen {
	if cfg.PackageName == "" {
		cfg.PackageName = "wrappers"
	}
	if cfg.RuntimePackage == "" {
		cfg.RuntimePackage = "wrapgen.dev/wrapgen/bind"
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

// Generate produces the Go source file.
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
	fmt.Fprintf(&buf, "package %s\n\n", g.config.PackageName)

	if len(selected) > 0 {
		fmt.Fprintf(&buf, "import %q\n\n", g.config.RuntimePackage)
		g.generateClassVars(&buf, selected)
		g.generateDefineClasses(&buf, selected)
	}

	for _, c := range selected {
		if err := g.generateClass(&buf, c); err != nil {
			return nil, err
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return &Output{Go: src}, nil
}

// selectClasses returns the classes to emit, in descriptor order, after
// checking the filter for unknown names and missing base classes.
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

	// A subclass wrapper embeds its parent wrapper, so the whole chain
	// must be part of the output.
	for _, c := range selected {
		if c.BaseClass != "" && !seen[c.BaseClass] {
			return nil, fmt.Errorf("class %q requires base class %q: add it to the filter or enable resolve-deps", c.Name, c.BaseClass)
		}
	}

	return selected, nil
}

// ── Class definitions ───────────────────────────────────────────────

func (g *Codegen) generateClassVars(buf *bytes.Buffer, classes []*model.Class) {
	buf.WriteString("var (\n")
	for _, c := range classes {
		fmt.Fprintf(buf, "\t%s *bind.Class\n", classVar(c))
	}
	buf.WriteString(")\n\n")
}

func (g *Codegen) generateDefineClasses(buf *bytes.Buffer, classes []*model.Class) {
	buf.WriteString("// DefineClasses resolves every class constructor against the host\n")
	buf.WriteString("// registry. Call it once at module load, before constructing any\n")
	buf.WriteString("// wrapper. An error is a definition-time fault: the class descriptors\n")
	buf.WriteString("// and the native registry disagree, and the module must not load.\n")
	buf.WriteString("func DefineClasses(host bind.Host) error {\n")
	buf.WriteString("\tvar err error\n")

	// Base classes are defined before their subclasses; the descriptor
	// order is kept otherwise.
	for _, c := range topoOrder(g.api, classes) {
		var fields []string
		fields = append(fields, fmt.Sprintf("Name: %q", c.Name))
		if c.Singleton {
			fields = append(fields, "Singleton: true")
		}
		if c.Category() == model.CategoryNormal {
			fields = append(fields, "Instantiable: true")
		}
		if c.BaseClass != "" {
			if base, ok := g.api.Lookup(c.BaseClass); ok {
				fields = append(fields, fmt.Sprintf("Base: %s", classVar(base)))
			}
		}
		fmt.Fprintf(buf, "\tif %s, err = bind.Define(host, bind.Spec{%s}); err != nil {\n", classVar(c), strings.Join(fields, ", "))
		buf.WriteString("\t\treturn err\n")
		buf.WriteString("\t}\n")
	}

	buf.WriteString("\treturn nil\n")
	buf.WriteString("}\n\n")
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
	typeName := naming.TypeName(c.Name)
	isRoot := c.BaseClass == ""

	g.generateTypeDecl(buf, c, typeName, isRoot)
	g.generateConstants(buf, c, typeName)
	g.generateNew(buf, c, typeName)
	if c.Category() == model.CategoryNormal {
		g.generateCreate(buf, c, typeName)
	}
	g.generateFromPtr(buf, c, typeName)
	if isRoot {
		g.generateFree(buf, c, typeName)
	}
	return g.generateMembers(buf, c)
}

func (g *Codegen) generateTypeDecl(buf *bytes.Buffer, c *model.Class, typeName string, isRoot bool) {
	switch c.Category() {
	case model.CategorySingleton:
		fmt.Fprintf(buf, "// %s wraps the native %s singleton. The single native instance is\n", typeName, c.Name)
		if c.SingletonName != "" {
			fmt.Fprintf(buf, "// obtained through the external %q accessor; wrap it with %sFromPtr.\n", c.SingletonName, typeName)
		} else {
			fmt.Fprintf(buf, "// obtained through an external accessor; wrap it with %sFromPtr.\n", typeName)
		}
	case model.CategoryAbstract:
		fmt.Fprintf(buf, "// %s wraps the native %s class. %s is not instantiable; wrappers\n", typeName, c.Name, c.Name)
		fmt.Fprintf(buf, "// exist only around pointers obtained from the native side.\n")
	default:
		fmt.Fprintf(buf, "// %s wraps the native %s class.\n", typeName, c.Name)
	}

	if isRoot {
		fmt.Fprintf(buf, "type %s struct {\n\tbind.Handle\n}\n\n", typeName)
	} else {
		fmt.Fprintf(buf, "type %s struct {\n\t%s\n}\n\n", typeName, naming.TypeName(c.BaseClass))
	}
}

func (g *Codegen) generateConstants(buf *bytes.Buffer, c *model.Class, typeName string) {
	names := c.ConstantNames()
	if len(names) == 0 {
		return
	}

	fmt.Fprintf(buf, "// %s constants.\n", typeName)
	buf.WriteString("const (\n")
	for _, name := range names {
		fmt.Fprintf(buf, "\t%s%s = %d\n", typeName, naming.ScreamingToCamel(name), c.Constants[name])
	}
	buf.WriteString(")\n\n")
}

func (g *Codegen) generateNew(buf *bytes.Buffer, c *model.Class, typeName string) {
	switch c.Category() {
	case model.CategorySingleton:
		fmt.Fprintf(buf, "// New%s always fails with bind.ErrSingleton: %s has exactly one\n", typeName, c.Name)
		fmt.Fprintf(buf, "// native instance, obtained through an external accessor.\n")
	case model.CategoryAbstract:
		fmt.Fprintf(buf, "// New%s always fails with bind.ErrNotInstantiable.\n", typeName)
	default:
		fmt.Fprintf(buf, "// New%s constructs a fresh native %s and binds an owning wrapper.\n", typeName, c.Name)
	}
	fmt.Fprintf(buf, "func New%s() (*%s, error) {\n", typeName, typeName)
	fmt.Fprintf(buf, "\th, err := %s.Instantiate()\n", classVar(c))
	buf.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	fmt.Fprintf(buf, "\treturn %s, nil\n", g.wrapperLiteral(c, "h"))
	buf.WriteString("}\n\n")
}

func (g *Codegen) generateCreate(buf *bytes.Buffer, c *model.Class, typeName string) {
	fmt.Fprintf(buf, "// Create%s constructs a fresh native %s, bypassing the\n", typeName, c.Name)
	fmt.Fprintf(buf, "// instantiability checks of New%s. For call sites that construct on\n", typeName)
	buf.WriteString("// behalf of native code with its own error-reporting convention.\n")
	fmt.Fprintf(buf, "func Create%s() (*%s, error) {\n", typeName, typeName)
	fmt.Fprintf(buf, "\th, err := %s.CreateOwned()\n", classVar(c))
	buf.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	fmt.Fprintf(buf, "\treturn %s, nil\n", g.wrapperLiteral(c, "h"))
	buf.WriteString("}\n\n")
}

func (g *Codegen) generateFromPtr(buf *bytes.Buffer, c *model.Class, typeName string) {
	fmt.Fprintf(buf, "// %sFromPtr wraps an already-obtained native pointer. No constructor\n", typeName)
	buf.WriteString("// runs and the pointer is not checked: it originates from the native\n")
	buf.WriteString("// side. owned records whether the wrapper releases the object on Free;\n")
	buf.WriteString("// pass false for borrowed references.\n")
	fmt.Fprintf(buf, "func %sFromPtr(p bind.Ptr, owned bool) *%s {\n", typeName, typeName)
	fmt.Fprintf(buf, "\treturn %s\n", g.wrapperLiteral(c, fmt.Sprintf("%s.WrapExisting(p, owned)", classVar(c))))
	buf.WriteString("}\n\n")
}

func (g *Codegen) generateFree(buf *bytes.Buffer, c *model.Class, typeName string) {
	recv := naming.Receiver(typeName)
	fmt.Fprintf(buf, "// Free releases the native object if this wrapper owns it. Wrappers\n")
	fmt.Fprintf(buf, "// derived from %s inherit this method; it reaches the native side at\n", typeName)
	buf.WriteString("// most once per instance, and never for borrowed references.\n")
	fmt.Fprintf(buf, "func (%s *%s) Free() {\n\t%s.Release()\n}\n\n", recv, typeName, recv)
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

// wrapperLiteral builds the nested composite literal binding a handle into
// a wrapper of class c: the Handle sits in the chain's root type, each
// derived type embeds its parent.
func (g *Codegen) wrapperLiteral(c *model.Class, handleExpr string) string {
	chain := append(g.api.BaseChain(c), c)
	expr := fmt.Sprintf("%s{Handle: %s}", naming.TypeName(chain[0].Name), handleExpr)
	for i := 1; i < len(chain); i++ {
		expr = fmt.Sprintf("%s{%s: %s}", naming.TypeName(chain[i].Name), naming.TypeName(chain[i-1].Name), expr)
	}
	return "&" + expr
}

func classVar(c *model.Class) string {
	return "class" + naming.TypeName(c.Name)
}

func (g *Codegen) fileHeader() string {
	var lines []string
	lines = append(lines, "// Code generated by wrapgen. DO NOT EDIT.")
	if g.config.Source != "" {
		lines = append(lines, fmt.Sprintf("// Source: %s", g.config.Source))
	}
	lines = append(lines, "", "")
	return strings.Join(lines, "\n")
}
