// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/observability"
	"github.com/go-chi/chi/v5"
)

// withMetrics records request count and latency per route pattern, so
// /api/workouts/{id} is one series regardless of the id.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		observability.ObserveHTTPRequest(r.Method, route, mw.statusCode(), time.Since(start))
	})
}
