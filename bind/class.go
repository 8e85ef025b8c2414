// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package bind

import "fmt"

// Spec declares one native class to [Define]. Generated code fills it from
// the class descriptor the wrappers were generated from.
type Spec struct {
	// Name is the unique class name, used as the constructor lookup key.
	Name string

	// Singleton marks classes whose single native instance is obtained
	// through an external accessor. No constructor is resolved for them.
	Singleton bool

	// Instantiable reports whether the standard construction path may
	// create fresh instances. Ignored for singletons.
	Instantiable bool

	// Base is the already-defined parent class, or nil for roots.
	Base *Class
}

// Class is the runtime definition of one native class: its lifecycle
// category and the constructor handle resolved once at definition time.
// A Class is immutable after Define returns and safe for concurrent use.
type Class struct {
	name         string
	singleton    bool
	instantiable bool
	base         *Class
	host         Host

	// ctor is the cached constructor handle. Resolved once in Define for
	// non-singleton classes, read-only afterwards.
	ctor Constructor
}

// Define resolves and caches the native constructor for the class and
// returns its runtime definition. For non-singleton classes the lookup runs
// here, exactly once; an unknown class name or a nil handle is returned as a
// *DefinitionError so that module load aborts immediately. Singleton classes
// skip the resolver entirely.
func Define(host Host, spec Spec) (*Class, error) {
	c := &Class{
		name:         spec.Name,
		singleton:    spec.Singleton,
		instantiable: spec.Instantiable,
		base:         spec.Base,
		host:         host,
	}

	if !spec.Singleton {
		ctor, err := host.ResolveConstructor(spec.Name)
		if err != nil {
			return nil, &DefinitionError{Class: spec.Name, Err: err}
		}
		if ctor == nil {
			return nil, &DefinitionError{Class: spec.Name}
		}
		c.ctor = ctor
	}

	return c, nil
}

// Name returns the native class name.
func (c *Class) Name() string { return c.name }

// Base returns the parent class definition, or nil for root classes.
func (c *Class) Base() *Class { return c.base }

// Singleton reports whether the class is a singleton.
func (c *Class) Singleton() bool { return c.singleton }

// Instantiable reports whether the standard construction path may create
// fresh instances.
func (c *Class) Instantiable() bool { return c.instantiable && !c.singleton }

// Instantiate is the standard construction path. It branches on the class's
// lifecycle category:
//
//   - singleton: fails with [ErrSingleton], no native call
//   - non-instantiable: fails with [ErrNotInstantiable], no native call
//   - normal: invokes the cached constructor; a null pointer fails with
//     [ErrOutOfMemory], otherwise the returned handle is bound and owning
//
// A failed construction never yields a bound handle.
func (c *Class) Instantiate() (Handle, error) {
	switch {
	case c.singleton:
		return Handle{}, fmt.Errorf("%s: %w", c.name, ErrSingleton)
	case !c.instantiable:
		return Handle{}, fmt.Errorf("%s: %w", c.name, ErrNotInstantiable)
	}

	p := c.ctor()
	if p == 0 {
		return Handle{}, fmt.Errorf("%s: %w", c.name, ErrOutOfMemory)
	}
	return Handle{class: c, ptr: p, owned: true}, nil
}

// CreateOwned constructs a fresh native instance bypassing the
// instantiability checks of Instantiate. It exists for call sites that
// already hold the guarantees those checks enforce — typically wrappers
// constructed on behalf of native code whose error-reporting convention
// differs from the public path. A null pointer from the constructor is
// still an allocation fault.
//
// Only defined for normal-instantiable classes; calling it on a class
// without a constructor is a programming error and panics.
func (c *Class) CreateOwned() (Handle, error) {
	if c.ctor == nil {
		panic(fmt.Sprintf("bind: CreateOwned on class %s without constructor", c.name))
	}
	p := c.ctor()
	if p == 0 {
		return Handle{}, fmt.Errorf("%s: %w", c.name, ErrOutOfMemory)
	}
	return Handle{class: c, ptr: p, owned: true}, nil
}

// WrapExisting binds an already-obtained native pointer. No constructor is
// invoked and no null check is enforced: the pointer originates from the
// native side and its provenance was determined by the caller. The owned
// flag records whether this wrapper must release the object on teardown
// (owned=false wraps a borrowed reference).
//
// Available for every class, including singletons.
func (c *Class) WrapExisting(p Ptr, owned bool) Handle {
	return Handle{class: c, ptr: p, owned: owned}
}
