// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not follow the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request errors detected by handlers before any service call.
var (
	// ErrInvalidQueryParameter is returned for a query parameter that cannot
	// be parsed, e.g. a malformed date in ?from=.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	// ErrMissingUserID means an authenticated route ran without the user id
	// the auth middleware puts into the request context.
	ErrMissingUserID = errors.New("user id is missing in request context")
)
