// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("hash must differ from the password")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}

	if err := CheckPassword(hash, "s3cret!"); err != nil {
		t.Errorf("expected matching password, got: %v", err)
	}
}

func TestHashPassword_UsesCost(t *testing.T) {
	hash, err := HashPassword("pw", 5)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != 5 {
		t.Errorf("expected cost 5, got %d", cost)
	}
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("pw", 99)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	cost, _ := bcrypt.Cost([]byte(hash))
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost, got %d", cost)
	}
}

func TestHashPassword_SaltsEveryHash(t *testing.T) {
	first, _ := HashPassword("same", bcrypt.MinCost)
	second, _ := HashPassword("same", bcrypt.MinCost)

	if first == second {
		t.Error("expected different hashes for the same password")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, _ := HashPassword("right", bcrypt.MinCost)

	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-hash", "pw")
	if err == nil || errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected a non-mismatch error, got %v", err)
	}
}
