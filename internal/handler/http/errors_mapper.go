// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/app"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// errorStatus binds a sentinel to the status and client message it maps to.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order, so more specific sentinels come before
// the ones they wrap.
var errorStatuses = []errorStatus{
	{validators.ErrNothingToUpdate, http.StatusBadRequest, validators.ErrNothingToUpdate.Error()},
	{validators.ErrUnsupportedType, http.StatusBadRequest, app.MsgInvalidRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgEmptyBody},
	{utils.ErrMalformedJSON, http.StatusBadRequest, app.MsgMalformedJSON},
	{ErrInvalidQueryParameter, http.StatusBadRequest, ErrInvalidQueryParameter.Error()},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgAuthenticationRequired},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, ErrInvalidAuthorizationHeader.Error()},
	{ErrEmptyToken, http.StatusUnauthorized, ErrEmptyToken.Error()},
	{ErrMissingUserID, http.StatusUnauthorized, app.MsgAuthenticationRequired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyRegistered},
	{store.ErrProfileAlreadyExists, http.StatusConflict, app.MsgProfileAlreadyExists},
	{store.ErrDuplicateKey, http.StatusConflict, app.MsgResourceAlreadyExists},
	{store.ErrNotFound, http.StatusNotFound, app.MsgResourceNotFound},
}

// statusFromError returns the HTTP status and the client-facing body for err.
// Anything not listed in errorStatuses is an internal fault.
func statusFromError(err error) (int, models.ErrorResponse) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, models.ErrorResponse{
			Error:   app.MsgValidationFailed,
			Details: validationErr.Violations,
		}
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: app.MsgBodyTooLarge}
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, models.ErrorResponse{Error: e.message}
		}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Error: app.MsgInternalServerError}
}

// writeError logs err and answers with its mapped status. Internal faults are
// logged in full and never echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, body := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
