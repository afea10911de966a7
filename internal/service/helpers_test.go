// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
)

// sequentialIDs generates predictable UUID-shaped identifiers.
type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) Generate() string {
	s.n++
	return fmt.Sprintf("00000000-0000-7000-8000-%012d", s.n)
}

const (
	testUserID  = "0190b7c4-5a2e-7c3d-8f4b-000000000001"
	testOtherID = "0190b7c4-5a2e-7c3d-8f4b-000000000002"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-fit-tracker-test",
		TokenDuration: time.Hour,
		BcryptCost:    4,
		Version:       "test",
	}
}

func ptr[T any](v T) *T { return &v }
