// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("request body too large")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress   = errors.New("empty address")
	ErrInvalidAddress = errors.New("address must include host and scheme")
	ErrNotLoggedIn    = errors.New("not logged in")
)

// APIError is a non-2xx response of the server. It unwraps to the sentinel
// matching its status code, so callers can test it with [errors.Is].
type APIError struct {
	StatusCode int
	Message    string
	Details    []models.FieldError

	kind error
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("http %d: %s (%d field errors)", e.StatusCode, e.Message, len(e.Details))
}

func (e *APIError) Unwrap() error {
	return e.kind
}
