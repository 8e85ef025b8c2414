// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package bind

// Handle binds a wrapper to its native object: the native pointer plus the
// ownership flag fixed at creation. It is the ownership/teardown trait of
// generated wrappers, embedded once in the root wrapper type of each
// inheritance chain. Derived wrapper types embed their parent and therefore
// inherit the single teardown path instead of redeclaring it — a derived
// wrapper is, underneath, the same native instance as its base.
//
// Lifecycle: unbound (zero value) → bound (pointer assigned, ownership
// fixed) → released. Release is reachable at most once, and only from a
// bound, owning handle.
type Handle struct {
	class *Class
	ptr   Ptr
	owned bool
}

// Class returns the runtime class definition this handle was created by,
// or nil for the zero handle.
func (h *Handle) Class() *Class { return h.class }

// NativePtr returns the bound native pointer, 0 when unbound or released.
func (h *Handle) NativePtr() Ptr { return h.ptr }

// Bound reports whether the handle currently holds a native pointer.
func (h *Handle) Bound() bool { return h.ptr != 0 }

// Owned reports whether this wrapper is responsible for releasing the
// native object. The flag is set at creation and never mutated.
func (h *Handle) Owned() bool { return h.owned }

// Release tears the wrapper down. The native object is destroyed only when
// the handle is bound and owning; a borrowed reference is never released.
// Either way the handle is unbound afterwards, so a second Release (or any
// further use of the pointer) cannot reach the native side again.
func (h *Handle) Release() {
	if h.ptr != 0 && h.owned {
		h.class.host.Destroy(h.ptr)
	}
	h.ptr = 0
}
