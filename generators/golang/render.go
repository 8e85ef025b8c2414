// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"fmt"
	"strings"

	"wrapgen.dev/wrapgen/internal/naming"
	"wrapgen.dev/wrapgen/model"
)

// reservedMembers are names already occupied on every wrapper type by the
// embedded bind.Handle or the generated teardown method.
var reservedMembers = map[string]bool{
	"Free":      true,
	"Release":   true,
	"NativePtr": true,
	"Owned":     true,
	"Bound":     true,
	"Class":     true,
}

// StubRenderer is the built-in member renderer. It attaches every method
// and property as a panicking stub so generated wrappers compile without a
// dispatch layer; typed marshaling belongs to an external renderer.
type StubRenderer struct{}

// Method renders a panicking method stub.
func (StubRenderer) Method(c *model.Class, m *model.Method) (string, error) {
	typeName := naming.TypeName(c.Name)
	goName := naming.SnakeToCamel(m.Name)
	if reservedMembers[goName] {
		return fmt.Sprintf("// Method %q of %s collides with a reserved wrapper member; bind it\n// through a custom renderer.\n\n", m.Name, c.Name), nil
	}

	var buf strings.Builder
	recv := naming.Receiver(typeName)
	fmt.Fprintf(&buf, "// %s invokes the native method %q.\n", goName, m.Name)
	fmt.Fprintf(&buf, "func (%s *%s) %s(args ...any) any {\n", recv, typeName, goName)
	fmt.Fprintf(&buf, "\tpanic(%q)\n", "wrapgen: no member renderer for "+c.Name+"."+m.Name)
	buf.WriteString("}\n\n")
	return buf.String(), nil
}

// Property renders panicking getter and setter stubs.
func (StubRenderer) Property(c *model.Class, p *model.Property) (string, error) {
	typeName := naming.TypeName(c.Name)
	getName := naming.SnakeToCamel(p.Name)
	setName := "Set" + getName
	if reservedMembers[getName] || reservedMembers[setName] {
		return fmt.Sprintf("// Property %q of %s collides with a reserved wrapper member; bind it\n// through a custom renderer.\n\n", p.Name, c.Name), nil
	}

	var buf strings.Builder
	recv := naming.Receiver(typeName)
	fmt.Fprintf(&buf, "// %s reads the native property %q.\n", getName, p.Name)
	fmt.Fprintf(&buf, "func (%s *%s) %s() any {\n", recv, typeName, getName)
	fmt.Fprintf(&buf, "\tpanic(%q)\n", "wrapgen: no member renderer for "+c.Name+"."+p.Name)
	buf.WriteString("}\n\n")
	fmt.Fprintf(&buf, "// %s writes the native property %q.\n", setName, p.Name)
	fmt.Fprintf(&buf, "func (%s *%s) %s(v any) {\n", recv, typeName, setName)
	fmt.Fprintf(&buf, "\tpanic(%q)\n", "wrapgen: no member renderer for "+c.Name+"."+p.Name)
	buf.WriteString("}\n\n")
	return buf.String(), nil
}
