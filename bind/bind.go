// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package bind implements the object-lifetime contract shared by all
// generated wrapper types.
//
// Generated code defines one [Class] per native class at module load time
// and constructs wrappers through the three entry points it exposes:
//
//   - [Class.Instantiate] — the standard fallible path. Refuses singleton
//     and non-instantiable classes, otherwise invokes the cached native
//     constructor and returns an owning [Handle].
//   - [Class.CreateOwned] — bypasses the instantiability checks and calls
//     the cached constructor directly. For call sites that must construct
//     without going through the public fallible path.
//   - [Class.WrapExisting] — wraps an already-obtained native pointer with
//     an explicit ownership flag. No constructor call, no null check: the
//     pointer originates from the native side and is assumed valid.
//
// Constructor resolution happens exactly once per class, when [Define] runs;
// the resolved handle is cached for the life of the process and is read-only
// afterwards. Independent instances share no other mutable state, so no
// locking is needed between them. If the native API is not itself
// thread-safe for concurrent creation or destruction, that constraint is
// inherited unchanged and remains the caller's responsibility.
package bind

// Ptr is an opaque handle to an object allocated and managed by the native
// engine. The zero value is the null pointer.
type Ptr uintptr

// Constructor creates a fresh native instance of one class. It returns 0
// when the native allocation fails.
type Constructor func() Ptr

// Host is the boundary to the native side. The embedding host supplies one
// implementation for the whole process.
type Host interface {
	// ResolveConstructor looks up the native "create instance" function
	// for a class name. It is queried exactly once per non-singleton
	// class, at definition time; a failed lookup is a definition-time
	// fault, never deferred into instance construction.
	ResolveConstructor(className string) (Constructor, error)

	// Destroy releases a native object. Called at most once per owned,
	// bound wrapper.
	Destroy(p Ptr)
}
