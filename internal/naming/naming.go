// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming converts native identifiers (CamelCase class names,
// snake_case members, SCREAMING_SNAKE constants) to Go names.
package naming

import (
	"strings"
	"unicode"
)

// TypeName returns a Go-safe exported type name for a native class name.
// Class names are CamelCase already; names starting with "_" (internal
// classes) are prefixed with "X".
func TypeName(name string) string {
	if name == "" {
		return ""
	}
	if name[0] == '_' {
		return "X" + name[1:]
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// SnakeToCamel converts a snake_case member name to an exported Go name:
// "add_child" becomes "AddChild", "set_2d_mode" becomes "Set2dMode".
func SnakeToCamel(name string) string {
	var result strings.Builder
	upperNext := true
	for _, r := range name {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			result.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// ScreamingToCamel converts a SCREAMING_SNAKE constant name to CamelCase:
// "NOTIFICATION_READY" becomes "NotificationReady".
func ScreamingToCamel(name string) string {
	var result strings.Builder
	upperNext := true
	for _, r := range name {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			result.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			result.WriteRune(unicode.ToLower(r))
		}
	}
	return result.String()
}

// Receiver returns a short receiver name for a Go type: the lowered first
// letter, with "x" for names that don't start with a letter.
func Receiver(typeName string) string {
	for _, r := range typeName {
		if unicode.IsLetter(r) {
			return string(unicode.ToLower(r))
		}
		break
	}
	return "x"
}
