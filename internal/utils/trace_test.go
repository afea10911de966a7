// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"
)

func TestValidTraceID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "uuid", id: "0190b7c4-5a2e-7c3d-8f4b-00000000000a", want: true},
		{name: "max length", id: strings.Repeat("a", MaxTraceIDLength), want: true},
		{name: "empty", id: "", want: false},
		{name: "too long", id: strings.Repeat("a", MaxTraceIDLength+1), want: false},
		{name: "space", id: "trace id", want: false},
		{name: "newline", id: "trace\nfake=1", want: false},
		{name: "non ascii", id: "trace-é", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidTraceID(tt.id); got != tt.want {
				t.Errorf("ValidTraceID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
