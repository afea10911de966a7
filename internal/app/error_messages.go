// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fitness tracker handlers and middleware.
//
// All Msg* constants are the human-readable "error" strings written into JSON
// error bodies. Keeping them in one place keeps the wording of the API
// consistent between handlers and middleware.
package app

const (
	// MsgValidationFailed accompanies a list of field violations.
	MsgValidationFailed = "validation failed"

	// MsgInvalidRequest is returned when the request cannot be checked at all,
	// e.g. the body decoded into an unexpected type.
	MsgInvalidRequest = "invalid request"

	MsgEmptyBody     = "request body is empty"
	MsgMalformedJSON = "malformed JSON body"
	MsgInvalidGZip   = "invalid gzip data"
	MsgBodyTooLarge  = "request body too large"

	// MsgAuthenticationRequired is returned when a protected route is called
	// without credentials.
	MsgAuthenticationRequired = "authentication required"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "invalid or expired token"

	// MsgInvalidCredentials is returned for every failed login, whether the
	// email is unknown or the password is wrong.
	MsgInvalidCredentials = "invalid credentials"

	MsgEmailAlreadyRegistered = "email already registered"
	MsgProfileAlreadyExists   = "profile already exists"
	MsgResourceAlreadyExists  = "resource already exists"

	MsgResourceNotFound = "resource not found"
	MsgRouteNotFound    = "route not found"
	MsgMethodNotAllowed = "method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
