// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package python

import (
	"fmt"
	"strings"

	"wrapgen.dev/wrapgen/model"
)

// reservedMembers are names already occupied on every generated class by
// the lifecycle protocol.
var reservedMembers = map[string]bool{
	"new":      true,
	"from_ptr": true,
}

// StubRenderer is the built-in member renderer. Every method and property
// becomes a stub raising NotImplementedError so the generated module
// imports cleanly without a dispatch layer.
type StubRenderer struct{}

// Method renders a raising method stub.
func (StubRenderer) Method(c *model.Class, m *model.Method) (string, error) {
	if reservedMembers[m.Name] {
		return fmt.Sprintf("\n    # Method %q collides with a reserved wrapper member; bind it\n    # through a custom renderer.\n", m.Name), nil
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "\n    def %s(self, *args):\n", m.Name)
	fmt.Fprintf(&buf, "        raise NotImplementedError(\"no member renderer for %s.%s\")\n", c.Name, m.Name)
	return buf.String(), nil
}

// Property renders a raising property stub with getter and setter.
func (StubRenderer) Property(c *model.Class, p *model.Property) (string, error) {
	if reservedMembers[p.Name] {
		return fmt.Sprintf("\n    # Property %q collides with a reserved wrapper member; bind it\n    # through a custom renderer.\n", p.Name), nil
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "\n    @property\n    def %s(self):\n", p.Name)
	fmt.Fprintf(&buf, "        raise NotImplementedError(\"no member renderer for %s.%s\")\n", c.Name, p.Name)
	fmt.Fprintf(&buf, "\n    @%s.setter\n    def %s(self, value):\n", p.Name, p.Name)
	fmt.Fprintf(&buf, "        raise NotImplementedError(\"no member renderer for %s.%s\")\n", c.Name, p.Name)
	return buf.String(), nil
}
