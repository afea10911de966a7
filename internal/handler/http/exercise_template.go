// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createExerciseTemplate(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ExerciseTemplateInput
	if err = utils.DecodeJSON(r.Body, &input); err != nil {
		writeError(w, r, err)
		return
	}

	template, err := h.services.ExerciseTemplateService.Create(r.Context(), userID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, template, http.StatusCreated)
}

func (h *Handler) listExerciseTemplates(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var filter models.ExerciseTemplateFilter
	if category := r.URL.Query().Get("category"); category != "" {
		c := models.Category(category)
		filter.Category = &c
	}

	templates, err := h.services.ExerciseTemplateService.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, templates, http.StatusOK)
}

func (h *Handler) getExerciseTemplate(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	template, err := h.services.ExerciseTemplateService.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, template, http.StatusOK)
}

// updateExerciseTemplate serves both PUT and PATCH as a partial update.
func (h *Handler) updateExerciseTemplate(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.ExerciseTemplatePatch
	if err = utils.DecodeJSON(r.Body, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	template, err := h.services.ExerciseTemplateService.Update(r.Context(), chi.URLParam(r, "id"), userID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, template, http.StatusOK)
}

func (h *Handler) deleteExerciseTemplate(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ExerciseTemplateService.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
