// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		id := g.Generate()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsValidUUID(t *testing.T) {
	tests := map[string]bool{
		"0190b7c4-5a2e-7c3d-8f4b-1a2b3c4d5e6f":          true,
		"0190B7C4-5A2E-7C3D-8F4B-1A2B3C4D5E6F":          true,
		"not-a-uuid":                                    false,
		"":                                              false,
		"0190b7c45a2e7c3d8f4b1a2b3c4d5e6f":              false,
		"urn:uuid:0190b7c4-5a2e-7c3d-8f4b-1a2b3c4d5e6f": false,
	}

	for in, want := range tests {
		if got := IsValidUUID(in); got != want {
			t.Errorf("IsValidUUID(%q) = %v, want %v", in, got, want)
		}
	}
}
