// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/adapter"
	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) adapter.ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	api.SetToken("token")
	return api
}

func TestRun_Health(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), api, &out, []string{"health"}))
	assert.JSONEq(t, `{"status":"ok"}`, out.String())
}

func TestRun_WorkoutsListDateFlags(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/workouts", r.URL.Path)
		assert.Equal(t, "2026-03-01T00:00:00Z", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-03-31T23:59:59.999999Z", r.URL.Query().Get("to"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	var out bytes.Buffer
	err := run(context.Background(), api, &out, []string{"workouts", "list", "-from", "2026-03-01", "-to", "2026-03-31"})

	require.NoError(t, err)
	var workouts []models.Workout
	require.NoError(t, json.Unmarshal(out.Bytes(), &workouts))
	assert.Empty(t, workouts)
}

func TestRun_DeletePrintsNothing(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/exercise-templates/t-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), api, &out, []string{"templates", "delete", "t-1"}))
	assert.Empty(t, out.String())
}

func TestRun_Errors(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown command", args: []string{"dance"}},
		{name: "missing action", args: []string{"workouts"}},
		{name: "missing id", args: []string{"workouts", "get"}},
		{name: "unknown action", args: []string{"profile", "explode"}},
		{name: "bad date", args: []string{"workouts", "list", "-from", "March"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, run(context.Background(), api, &out, tt.args))
			assert.Empty(t, out.String())
		})
	}
}

func TestParseFlagDate(t *testing.T) {
	got, err := parseFlagDate("", false)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseFlagDate("2026-03-31", true)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 999999000, time.UTC), *got)
}
