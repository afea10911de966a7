// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/workouts/{id}", "404"))

	ObserveHTTPRequest(http.MethodGet, "/api/workouts/{id}", http.StatusNotFound, 12*time.Millisecond)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/workouts/{id}", "404"))
	assert.Equal(t, before+1, after)
}

func TestObserveHTTPRequest_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))

	ObserveHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestRecordWorkoutCreated(t *testing.T) {
	workoutsBefore := testutil.ToFloat64(workoutsCreated)
	exercisesBefore := testutil.ToFloat64(exercisesLogged)

	RecordWorkoutCreated(3)
	RecordWorkoutCreated(0)

	assert.Equal(t, workoutsBefore+2, testutil.ToFloat64(workoutsCreated))
	assert.Equal(t, exercisesBefore+3, testutil.ToFloat64(exercisesLogged))
}

func TestRecordUserRegistered(t *testing.T) {
	before := testutil.ToFloat64(usersRegistered)

	RecordUserRegistered()

	assert.Equal(t, before+1, testutil.ToFloat64(usersRegistered))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordUserRegistered()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "fit_tracker_users_registered_total"))
}

func TestRegistry_IsPrivate(t *testing.T) {
	RecordWorkoutCreated(1)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		assert.False(t, strings.HasPrefix(mf.GetName(), namespace+"_"), mf.GetName())
	}

	own, err := registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(own))
	for _, mf := range own {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "fit_tracker_workouts_created_total")
	assert.Contains(t, names, "go_goroutines")
}
