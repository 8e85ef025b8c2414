// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Wrapgen Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package naming

import "testing"

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Node", want: "Node"},
		{name: "Node2D", want: "Node2D"},
		{name: "_OS", want: "XOS"},
		{name: "thread", want: "Thread"},
		{name: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeName(tt.name); got != tt.want {
				t.Errorf("TypeName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "add_child", want: "AddChild"},
		{name: "free", want: "Free"},
		{name: "get_node_or_null", want: "GetNodeOrNull"},
		{name: "set_2d_mode", want: "Set2dMode"},
		{name: "_ready", want: "Ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnakeToCamel(tt.name); got != tt.want {
				t.Errorf("SnakeToCamel(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestScreamingToCamel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "NOTIFICATION_READY", want: "NotificationReady"},
		{name: "CONNECT_DEFERRED", want: "ConnectDeferred"},
		{name: "OK", want: "Ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScreamingToCamel(tt.name); got != tt.want {
				t.Errorf("ScreamingToCamel(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestReceiver(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Node", want: "n"},
		{name: "Object", want: "o"},
		{name: "2DThing", want: "x"},
		{name: "", want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Receiver(tt.name); got != tt.want {
				t.Errorf("Receiver(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
