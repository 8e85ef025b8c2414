// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package bind

import (
	"errors"
	"fmt"
)

// Sentinel errors for the standard construction path. None of them is
// recoverable by retry: the first two are contract violations, the third is
// genuine resource exhaustion.
var (
	// ErrSingleton is returned when the standard construction path is
	// invoked on a singleton class.
	ErrSingleton = errors.New("singleton class, cannot instantiate directly")

	// ErrNotInstantiable is returned when the standard construction path
	// is invoked on a non-instantiable class.
	ErrNotInstantiable = errors.New("class is not instantiable")

	// ErrOutOfMemory is returned when the native constructor yields a
	// null pointer.
	ErrOutOfMemory = errors.New("native constructor returned null")
)

// DefinitionError reports a failed constructor lookup at class definition
// time. It indicates a mismatch between the class descriptor set and the
// native registry; module load must abort rather than defer the fault into
// instance construction.
type DefinitionError struct {
	// Class is the class name whose constructor could not be resolved.
	Class string

	// Err is the underlying lookup failure, if the host reported one.
	Err error
}

func (e *DefinitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("define class %s: %v", e.Class, e.Err)
	}
	return fmt.Sprintf("define class %s: no constructor resolved", e.Class)
}

func (e *DefinitionError) Unwrap() error { return e.Err }
