// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/models"
)

var (
	// ErrValidationFailed is matched by every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedType is returned when the value passed to Validate is not a struct.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrNothingToUpdate is returned for patch payloads that carry no fields.
	ErrNothingToUpdate = errors.New("at least one field must be provided for update")
)

// ValidationError lists every field that failed validation.
// Field names are JSON paths, e.g. "exercises[1].reps".
type ValidationError struct {
	Violations []models.FieldError
}

// NewValidationError builds a ValidationError from the given violations.
func NewValidationError(violations ...models.FieldError) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+" "+v.Message)
	}

	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
