// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package bind

import (
	"errors"
	"fmt"
	"testing"
)

// fakeHost is a call-count probe implementing the native boundary.
type fakeHost struct {
	constructors map[string]Constructor
	resolveErrs  map[string]error

	resolveCalls map[string]int
	destroyCalls map[Ptr]int
	destroyed    []Ptr
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		constructors: make(map[string]Constructor),
		resolveErrs:  make(map[string]error),
		resolveCalls: make(map[string]int),
		destroyCalls: make(map[Ptr]int),
	}
}

func (f *fakeHost) ResolveConstructor(className string) (Constructor, error) {
	f.resolveCalls[className]++
	if err := f.resolveErrs[className]; err != nil {
		return nil, err
	}
	ctor, ok := f.constructors[className]
	if !ok {
		return nil, fmt.Errorf("unknown class %q", className)
	}
	return ctor, nil
}

func (f *fakeHost) Destroy(p Ptr) {
	f.destroyCalls[p]++
	f.destroyed = append(f.destroyed, p)
}

// returning registers a constructor yielding p and returns its call counter.
func (f *fakeHost) returning(className string, p Ptr) *int {
	calls := new(int)
	f.constructors[className] = func() Ptr {
		*calls++
		return p
	}
	return calls
}

func TestDefine(t *testing.T) {
	t.Run("resolves once per class", func(t *testing.T) {
		host := newFakeHost()
		host.returning("Node", 0x1000)

		c, err := Define(host, Spec{Name: "Node", Instantiable: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		// Multiple constructions reuse the cached handle.
		for i := 0; i < 3; i++ {
			if _, err := c.Instantiate(); err != nil {
				t.Fatalf("Instantiate: %v", err)
			}
		}
		if got := host.resolveCalls["Node"]; got != 1 {
			t.Errorf("resolve calls = %d, want 1", got)
		}
	})

	t.Run("singleton skips resolver", func(t *testing.T) {
		host := newFakeHost()

		c, err := Define(host, Spec{Name: "Engine", Singleton: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}
		if got := host.resolveCalls["Engine"]; got != 0 {
			t.Errorf("resolve calls = %d, want 0", got)
		}
		if c.Instantiable() {
			t.Error("singleton reported instantiable")
		}
	})

	t.Run("abstract class still resolves", func(t *testing.T) {
		// Non-instantiable, non-singleton classes resolve at definition
		// time so registry mismatches surface immediately.
		host := newFakeHost()
		calls := host.returning("Script", 0x2000)

		if _, err := Define(host, Spec{Name: "Script", Instantiable: false}); err != nil {
			t.Fatalf("Define: %v", err)
		}
		if got := host.resolveCalls["Script"]; got != 1 {
			t.Errorf("resolve calls = %d, want 1", got)
		}
		if *calls != 0 {
			t.Errorf("constructor calls = %d, want 0", *calls)
		}
	})

	t.Run("unknown class is a definition fault", func(t *testing.T) {
		host := newFakeHost()

		_, err := Define(host, Spec{Name: "Ghost", Instantiable: true})
		if err == nil {
			t.Fatal("expected error")
		}
		var defErr *DefinitionError
		if !errors.As(err, &defErr) {
			t.Fatalf("error = %v, want *DefinitionError", err)
		}
		if defErr.Class != "Ghost" {
			t.Errorf("Class = %q, want %q", defErr.Class, "Ghost")
		}
	})

	t.Run("nil constructor is a definition fault", func(t *testing.T) {
		host := newFakeHost()
		host.constructors["Broken"] = nil

		_, err := Define(host, Spec{Name: "Broken", Instantiable: true})
		var defErr *DefinitionError
		if !errors.As(err, &defErr) {
			t.Fatalf("error = %v, want *DefinitionError", err)
		}
	})
}

func TestInstantiate(t *testing.T) {
	t.Run("singleton always fails without native call", func(t *testing.T) {
		host := newFakeHost()
		c, err := Define(host, Spec{Name: "Engine", Singleton: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		h, err := c.Instantiate()
		if !errors.Is(err, ErrSingleton) {
			t.Fatalf("error = %v, want ErrSingleton", err)
		}
		if h.Bound() {
			t.Error("failed construction yielded a bound handle")
		}
		if got := host.resolveCalls["Engine"]; got != 0 {
			t.Errorf("resolve calls = %d, want 0", got)
		}
	})

	t.Run("abstract always fails without native call", func(t *testing.T) {
		host := newFakeHost()
		calls := host.returning("Script", 0x2000)
		c, err := Define(host, Spec{Name: "Script", Instantiable: false})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		if _, err := c.Instantiate(); !errors.Is(err, ErrNotInstantiable) {
			t.Fatalf("error = %v, want ErrNotInstantiable", err)
		}
		if *calls != 0 {
			t.Errorf("constructor calls = %d, want 0", *calls)
		}
	})

	t.Run("null pointer is an allocation fault", func(t *testing.T) {
		host := newFakeHost()
		host.returning("Node", 0)
		c, err := Define(host, Spec{Name: "Node", Instantiable: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		h, err := c.Instantiate()
		if !errors.Is(err, ErrOutOfMemory) {
			t.Fatalf("error = %v, want ErrOutOfMemory", err)
		}
		if h.Bound() {
			t.Error("failed construction yielded a bound handle")
		}
	})

	t.Run("success binds an owning handle", func(t *testing.T) {
		host := newFakeHost()
		host.returning("Node", 0x1000)
		c, err := Define(host, Spec{Name: "Node", Instantiable: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		h, err := c.Instantiate()
		if err != nil {
			t.Fatalf("Instantiate: %v", err)
		}
		if h.NativePtr() != 0x1000 {
			t.Errorf("NativePtr = %#x, want 0x1000", h.NativePtr())
		}
		if !h.Owned() {
			t.Error("standard construction must own the native object")
		}

		h.Release()
		if got := host.destroyCalls[0x1000]; got != 1 {
			t.Errorf("destroy calls = %d, want 1", got)
		}
	})
}

func TestCreateOwned(t *testing.T) {
	t.Run("bypasses instantiability checks", func(t *testing.T) {
		host := newFakeHost()
		calls := host.returning("Script", 0x3000)
		// Abstract via the standard path, but CreateOwned goes straight
		// to the cached constructor.
		c, err := Define(host, Spec{Name: "Script", Instantiable: false})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		h, err := c.CreateOwned()
		if err != nil {
			t.Fatalf("CreateOwned: %v", err)
		}
		if *calls != 1 {
			t.Errorf("constructor calls = %d, want 1", *calls)
		}
		if !h.Bound() || !h.Owned() {
			t.Errorf("handle bound=%v owned=%v, want bound owning", h.Bound(), h.Owned())
		}
	})

	t.Run("null pointer is still an allocation fault", func(t *testing.T) {
		host := newFakeHost()
		host.returning("Node", 0)
		c, err := Define(host, Spec{Name: "Node", Instantiable: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		if _, err := c.CreateOwned(); !errors.Is(err, ErrOutOfMemory) {
			t.Fatalf("error = %v, want ErrOutOfMemory", err)
		}
	})

	t.Run("panics on singleton", func(t *testing.T) {
		host := newFakeHost()
		c, err := Define(host, Spec{Name: "Engine", Singleton: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		defer func() {
			if recover() == nil {
				t.Error("expected panic for class without constructor")
			}
		}()
		c.CreateOwned() //nolint:errcheck
	})
}

func TestWrapExisting(t *testing.T) {
	t.Run("borrowed reference never destroys", func(t *testing.T) {
		host := newFakeHost()
		c, err := Define(host, Spec{Name: "Engine", Singleton: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		h := c.WrapExisting(0x2000, false)
		if !h.Bound() || h.Owned() {
			t.Errorf("handle bound=%v owned=%v, want bound non-owning", h.Bound(), h.Owned())
		}
		h.Release()
		h.Release()
		if len(host.destroyed) != 0 {
			t.Errorf("destroyed = %v, want none", host.destroyed)
		}
	})

	t.Run("transferred ownership destroys exactly once", func(t *testing.T) {
		host := newFakeHost()
		host.returning("Node", 0x1000)
		c, err := Define(host, Spec{Name: "Node", Instantiable: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		h := c.WrapExisting(0x4000, true)
		h.Release()
		h.Release()
		if got := host.destroyCalls[0x4000]; got != 1 {
			t.Errorf("destroy calls = %d, want 1", got)
		}
		if h.Bound() {
			t.Error("handle still bound after release")
		}
	})
}

// TestScenarios covers the two descriptor scenarios end to end.
func TestScenarios(t *testing.T) {
	t.Run("Node standard construction and teardown", func(t *testing.T) {
		host := newFakeHost()
		host.returning("Node", 0x1000)

		node, err := Define(host, Spec{Name: "Node", Instantiable: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		h, err := node.Instantiate()
		if err != nil {
			t.Fatalf("Instantiate: %v", err)
		}
		if h.NativePtr() != 0x1000 || !h.Owned() {
			t.Fatalf("handle ptr=%#x owned=%v, want 0x1000 owning", h.NativePtr(), h.Owned())
		}

		h.Release()
		if got := host.destroyCalls[0x1000]; got != 1 {
			t.Errorf("destroy(0x1000) calls = %d, want 1", got)
		}
	})

	t.Run("Engine singleton refuses construction but wraps", func(t *testing.T) {
		host := newFakeHost()

		engine, err := Define(host, Spec{Name: "Engine", Singleton: true})
		if err != nil {
			t.Fatalf("Define: %v", err)
		}

		if _, err := engine.Instantiate(); !errors.Is(err, ErrSingleton) {
			t.Fatalf("error = %v, want ErrSingleton", err)
		}

		h := engine.WrapExisting(0x2000, false)
		if !h.Bound() {
			t.Fatal("from_ptr on singleton must still bind")
		}
		h.Release()
		if len(host.destroyed) != 0 {
			t.Errorf("destroyed = %v, want none", host.destroyed)
		}
	})
}
