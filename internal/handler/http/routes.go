// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withMetrics, withRecover, h.withCORS, withGZip)
	if h.maxBodyBytes > 0 {
		router.Use(middleware.RequestSize(h.maxBodyBytes))
	}

	router.Get("/health", h.health)
	router.Handle("/metrics", observability.Handler())

	router.Route("/api", func(api chi.Router) {
		api.Get("/version", h.getServerVersion)

		api.Route("/users", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Get("/me", h.me)
		})

		// routes with authorization
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/profiles", func(r chi.Router) {
				r.Post("/", h.createProfile)
				r.Get("/me", h.getProfile)
				r.Put("/me", h.updateProfile)
				r.Patch("/me", h.updateProfile)
				r.Delete("/me", h.deleteProfile)
			})

			r.Route("/exercise-templates", func(r chi.Router) {
				r.Post("/", h.createExerciseTemplate)
				r.Get("/", h.listExerciseTemplates)
				r.Get("/{id}", h.getExerciseTemplate)
				r.Put("/{id}", h.updateExerciseTemplate)
				r.Patch("/{id}", h.updateExerciseTemplate)
				r.Delete("/{id}", h.deleteExerciseTemplate)
			})

			r.Route("/workouts", func(r chi.Router) {
				r.Post("/", h.createWorkout)
				r.Get("/", h.listWorkouts)
				r.Get("/{id}", h.getWorkout)
				r.Delete("/{id}", h.deleteWorkout)
			})
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS answers browser preflight requests for the configured origins.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	options := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if len(h.allowedOrigins) > 0 {
		options.AllowedOrigins = h.allowedOrigins
	}

	return cors.Handler(options)(next)
}
