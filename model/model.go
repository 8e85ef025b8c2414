// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the data structures for parsing a native class API
// descriptor.
//
// The descriptor is published by the engine's metadata-extraction tool as a
// JSON array with one record per native class (name, base class, lifecycle
// flags, constants, methods, properties). This package provides Go types that
// map directly to that schema, enabling parsing and validation of the
// descriptor for wrapper generation.
//
// Method and property descriptors are deliberately opaque: wrapgen consumes
// them only to know how many bindings to render and under which names. Their
// full payload is preserved verbatim for the member renderer.
package model

import (
	"encoding/json"
	"fmt"
	"slices"
)

// API is the complete class descriptor set for one engine version.
type API struct {
	// Classes holds all class descriptors in declaration order.
	Classes []*Class

	byName map[string]*Class
}

// Class describes a single native class.
type Class struct {
	// Name is the unique class identifier. It is also the key used to
	// resolve the native constructor function at definition time.
	Name string `json:"name"`

	// BaseClass names the parent class, or is empty for a root class.
	// Classes form single-inheritance chains; multiple inheritance does
	// not exist in the native type system.
	BaseClass string `json:"base_class,omitempty"`

	// Singleton marks classes with exactly one native instance. Singleton
	// classes have no per-instance constructor: the instance is obtained
	// through an external accessor, never constructed by wrappers.
	Singleton bool `json:"singleton,omitempty"`

	// SingletonName is the accessor name of the singleton instance.
	// Pass-through metadata: wrappers document it but never call it.
	SingletonName string `json:"singleton_name,omitempty"`

	// Instantiable reports whether fresh instances may be constructed.
	// Ignored for singletons.
	Instantiable bool `json:"instantiable"`

	// Constants maps constant names to their integer values. Rendered
	// verbatim; constants carry no runtime behavior.
	Constants map[string]int64 `json:"constants,omitempty"`

	// Methods lists the class's method descriptors in declaration order.
	Methods []*Method `json:"methods,omitempty"`

	// Properties lists the class's property descriptors in declaration order.
	Properties []*Property `json:"properties,omitempty"`
}

// Category is the lifecycle category of a class. Every class is in exactly
// one category; the generated construction path branches on it.
type Category int

const (
	// CategoryNormal classes construct fresh native instances on demand.
	CategoryNormal Category = iota

	// CategorySingleton classes refuse construction; the single native
	// instance is obtained through an external accessor.
	CategorySingleton

	// CategoryAbstract classes refuse construction unconditionally.
	CategoryAbstract
)

// String returns the category name as used in CLI output and errors.
func (c Category) String() string {
	switch c {
	case CategoryNormal:
		return "instantiable"
	case CategorySingleton:
		return "singleton"
	case CategoryAbstract:
		return "abstract"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Category returns the lifecycle category of the class. Singleton takes
// precedence over the instantiable flag: a descriptor marking a singleton
// instantiable is treated as a singleton.
func (c *Class) Category() Category {
	switch {
	case c.Singleton:
		return CategorySingleton
	case !c.Instantiable:
		return CategoryAbstract
	default:
		return CategoryNormal
	}
}

// ConstantNames returns the class's constant names sorted alphabetically.
// Descriptor constants arrive as an unordered mapping, so generators emit
// them in sorted order to keep output deterministic.
func (c *Class) ConstantNames() []string {
	names := make([]string, 0, len(c.Constants))
	for name := range c.Constants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Method is an opaque method descriptor. Only the name is interpreted here;
// the raw payload is preserved for the member renderer.
type Method struct {
	// Name is the native method name (e.g. "add_child").
	Name string

	// Raw is the full descriptor as it appeared in the API file.
	Raw json.RawMessage
}

// UnmarshalJSON captures the method name and keeps the payload verbatim.
func (m *Method) UnmarshalJSON(data []byte) error {
	var probe struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Name == "" {
		return fmt.Errorf("method descriptor missing name")
	}
	m.Name = probe.Name
	m.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the original descriptor payload.
func (m *Method) MarshalJSON() ([]byte, error) {
	if m.Raw != nil {
		return m.Raw, nil
	}
	return json.Marshal(struct {
		Name string `json:"name"`
	}{Name: m.Name})
}

// Property is an opaque property descriptor, handled like Method.
type Property struct {
	// Name is the native property name (e.g. "visible").
	Name string

	// Raw is the full descriptor as it appeared in the API file.
	Raw json.RawMessage
}

// UnmarshalJSON captures the property name and keeps the payload verbatim.
func (p *Property) UnmarshalJSON(data []byte) error {
	var probe struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Name == "" {
		return fmt.Errorf("property descriptor missing name")
	}
	p.Name = probe.Name
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the original descriptor payload.
func (p *Property) MarshalJSON() ([]byte, error) {
	if p.Raw != nil {
		return p.Raw, nil
	}
	return json.Marshal(struct {
		Name string `json:"name"`
	}{Name: p.Name})
}

// Parse decodes a JSON class descriptor array and validates it.
func Parse(data []byte) (*API, error) {
	var classes []*Class
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("parse class descriptors: %w", err)
	}

	api := &API{Classes: classes}
	if err := api.Validate(); err != nil {
		return nil, err
	}
	return api, nil
}

// Validate checks descriptor-level invariants: non-empty unique names,
// resolvable base classes, and acyclic inheritance chains. All violations
// are definition-time faults; generation must not proceed past them.
func (a *API) Validate() error {
	a.byName = make(map[string]*Class, len(a.Classes))
	for _, c := range a.Classes {
		if c.Name == "" {
			return fmt.Errorf("class descriptor with empty name")
		}
		if _, dup := a.byName[c.Name]; dup {
			return fmt.Errorf("duplicate class %q", c.Name)
		}
		a.byName[c.Name] = c
	}

	for _, c := range a.Classes {
		if c.BaseClass == "" {
			continue
		}
		if _, ok := a.byName[c.BaseClass]; !ok {
			return fmt.Errorf("class %q: unknown base class %q", c.Name, c.BaseClass)
		}
		// Walk up the chain; revisiting the starting class means a cycle.
		seen := map[string]bool{c.Name: true}
		for cur := a.byName[c.BaseClass]; cur != nil; {
			if seen[cur.Name] {
				return fmt.Errorf("class %q: inheritance cycle through %q", c.Name, cur.Name)
			}
			seen[cur.Name] = true
			if cur.BaseClass == "" {
				break
			}
			cur = a.byName[cur.BaseClass]
		}
	}

	return nil
}

// Lookup returns the class with the given name.
func (a *API) Lookup(name string) (*Class, bool) {
	if a.byName == nil {
		if err := a.Validate(); err != nil {
			return nil, false
		}
	}
	c, ok := a.byName[name]
	return c, ok
}

// BaseChain returns the inheritance chain of c from the root class down to
// c's direct base. Returns nil for root classes. The API must have been
// validated; unknown bases terminate the walk.
func (a *API) BaseChain(c *Class) []*Class {
	var chain []*Class
	for cur := c; cur.BaseClass != ""; {
		base, ok := a.Lookup(cur.BaseClass)
		if !ok {
			break
		}
		chain = append(chain, base)
		cur = base
	}
	slices.Reverse(chain)
	return chain
}

// Root returns the root class of c's inheritance chain (c itself for roots).
// The root is where the generated teardown handler lives; derived wrappers
// inherit it rather than redefining it.
func (a *API) Root(c *Class) *Class {
	chain := a.BaseChain(c)
	if len(chain) == 0 {
		return c
	}
	return chain[0]
}
