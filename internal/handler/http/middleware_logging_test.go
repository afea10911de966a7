// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithBufferedLogger attaches a JSON logger writing to buf to the
// request context, the way withTraceID does for live traffic.
func requestWithBufferedLogger(method, target string, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(l.WithContext(req.Context()))
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		status     int
		body       string
		wantStatus float64
		wantSize   float64
		wantLevel  string
	}{
		{name: "created", method: http.MethodPost, target: "/api/workouts", status: http.StatusCreated, body: `{"id":"w1"}`, wantStatus: 201, wantSize: 11, wantLevel: "info"},
		{name: "no content", method: http.MethodDelete, target: "/api/workouts/w1", status: http.StatusNoContent, wantStatus: 204, wantSize: 0, wantLevel: "info"},
		{name: "not found", method: http.MethodGet, target: "/api/workouts/missing?x=1", status: http.StatusNotFound, body: `{}`, wantStatus: 404, wantSize: 2, wantLevel: "info"},
		{name: "implicit ok", method: http.MethodGet, target: "/health", body: `{"status":"ok"}`, wantStatus: 200, wantSize: 15, wantLevel: "info"},
		{name: "server error", method: http.MethodGet, target: "/api/workouts", status: http.StatusInternalServerError, body: `{}`, wantStatus: 500, wantSize: 2, wantLevel: "warn"},
	}

	h := NewHandler(nil, configForTests(), logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			req := requestWithBufferedLogger(tt.method, tt.target, &buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			entry := decodeLogLine(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
			assert.NotContains(t, entry, "route")
		})
	}
}

func TestWithLogging_RoutePattern(t *testing.T) {
	h := NewHandler(nil, configForTests(), logger.Nop())

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/workouts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var buf bytes.Buffer
	req := requestWithBufferedLogger(http.MethodGet, "/api/workouts/w1", &buf)
	router.ServeHTTP(httptest.NewRecorder(), req)

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "/api/workouts/{id}", entry["route"])
	assert.Equal(t, "/api/workouts/w1", entry["uri"])
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := NewHandler(nil, configForTests(), logger.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	var buf bytes.Buffer
	req := requestWithBufferedLogger(http.MethodGet, "/", &buf)

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)
	})
}
