// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.WorkoutInput
	if err = utils.DecodeJSON(r.Body, &input); err != nil {
		writeError(w, r, err)
		return
	}

	workout, err := h.services.WorkoutService.Create(r.Context(), userID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, workout, http.StatusCreated)
}

func (h *Handler) listWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter, err := workoutFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	workouts, err := h.services.WorkoutService.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, workouts, http.StatusOK)
}

func (h *Handler) getWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	workout, err := h.services.WorkoutService.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) deleteWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.WorkoutService.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// workoutFilterFromQuery reads the optional ?from= and ?to= bounds. A bare
// date in ?to= covers the whole day.
func workoutFilterFromQuery(r *http.Request) (models.WorkoutFilter, error) {
	var filter models.WorkoutFilter
	query := r.URL.Query()

	if raw := query.Get("from"); raw != "" {
		from, err := parseQueryTime(raw, false)
		if err != nil {
			return filter, queryParameterError("from", err)
		}
		filter.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := parseQueryTime(raw, true)
		if err != nil {
			return filter, queryParameterError("to", err)
		}
		filter.To = &to
	}

	return filter, nil
}

// parseQueryTime accepts an RFC 3339 timestamp or a YYYY-MM-DD date.
func parseQueryTime(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}

	d, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is neither a date nor an RFC 3339 timestamp", ErrInvalidQueryParameter, raw)
	}
	if endOfDay {
		d = d.Add(24*time.Hour - time.Microsecond)
	}

	return d, nil
}

func queryParameterError(field string, err error) error {
	return fmt.Errorf("%w: %w", validators.NewValidationError(models.FieldError{
		Field:   field,
		Message: "must be a date (YYYY-MM-DD) or an RFC 3339 timestamp",
	}), err)
}
