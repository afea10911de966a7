// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock method delegates to its function field. A nil field panics,
// which the recover middleware turns into a 500 and the test fails on the
// status check, so unexpected calls never pass silently.

type mockAuthService struct {
	registerFn    func(ctx context.Context, input models.RegisterInput) (models.User, error)
	loginFn       func(ctx context.Context, input models.LoginInput) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	meFn          func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, input models.RegisterInput) (models.User, error) {
	return m.registerFn(ctx, input)
}

func (m *mockAuthService) Login(ctx context.Context, input models.LoginInput) (models.User, error) {
	return m.loginFn(ctx, input)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Me(ctx context.Context, userID string) (models.User, error) {
	return m.meFn(ctx, userID)
}

type mockProfileService struct {
	createFn func(ctx context.Context, userID string, input models.ProfileInput) (models.Profile, error)
	getFn    func(ctx context.Context, userID string) (models.Profile, error)
	updateFn func(ctx context.Context, userID string, patch models.ProfileInput) (models.Profile, error)
	deleteFn func(ctx context.Context, userID string) error
}

func (m *mockProfileService) Create(ctx context.Context, userID string, input models.ProfileInput) (models.Profile, error) {
	return m.createFn(ctx, userID, input)
}

func (m *mockProfileService) Get(ctx context.Context, userID string) (models.Profile, error) {
	return m.getFn(ctx, userID)
}

func (m *mockProfileService) Update(ctx context.Context, userID string, patch models.ProfileInput) (models.Profile, error) {
	return m.updateFn(ctx, userID, patch)
}

func (m *mockProfileService) Delete(ctx context.Context, userID string) error {
	return m.deleteFn(ctx, userID)
}

type mockExerciseTemplateService struct {
	createFn func(ctx context.Context, userID string, input models.ExerciseTemplateInput) (models.ExerciseTemplate, error)
	getFn    func(ctx context.Context, id, userID string) (models.ExerciseTemplate, error)
	listFn   func(ctx context.Context, userID string, filter models.ExerciseTemplateFilter) ([]models.ExerciseTemplate, error)
	updateFn func(ctx context.Context, id, userID string, patch models.ExerciseTemplatePatch) (models.ExerciseTemplate, error)
	deleteFn func(ctx context.Context, id, userID string) error
}

func (m *mockExerciseTemplateService) Create(ctx context.Context, userID string, input models.ExerciseTemplateInput) (models.ExerciseTemplate, error) {
	return m.createFn(ctx, userID, input)
}

func (m *mockExerciseTemplateService) Get(ctx context.Context, id, userID string) (models.ExerciseTemplate, error) {
	return m.getFn(ctx, id, userID)
}

func (m *mockExerciseTemplateService) List(ctx context.Context, userID string, filter models.ExerciseTemplateFilter) ([]models.ExerciseTemplate, error) {
	return m.listFn(ctx, userID, filter)
}

func (m *mockExerciseTemplateService) Update(ctx context.Context, id, userID string, patch models.ExerciseTemplatePatch) (models.ExerciseTemplate, error) {
	return m.updateFn(ctx, id, userID, patch)
}

func (m *mockExerciseTemplateService) Delete(ctx context.Context, id, userID string) error {
	return m.deleteFn(ctx, id, userID)
}

type mockWorkoutService struct {
	createFn func(ctx context.Context, userID string, input models.WorkoutInput) (models.Workout, error)
	getFn    func(ctx context.Context, id, userID string) (models.Workout, error)
	listFn   func(ctx context.Context, userID string, filter models.WorkoutFilter) ([]models.Workout, error)
	deleteFn func(ctx context.Context, id, userID string) error
}

func (m *mockWorkoutService) Create(ctx context.Context, userID string, input models.WorkoutInput) (models.Workout, error) {
	return m.createFn(ctx, userID, input)
}

func (m *mockWorkoutService) Get(ctx context.Context, id, userID string) (models.Workout, error) {
	return m.getFn(ctx, id, userID)
}

func (m *mockWorkoutService) List(ctx context.Context, userID string, filter models.WorkoutFilter) ([]models.Workout, error) {
	return m.listFn(ctx, userID, filter)
}

func (m *mockWorkoutService) Delete(ctx context.Context, id, userID string) error {
	return m.deleteFn(ctx, id, userID)
}

type mockAppInfoService struct {
	info models.AppInfo
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return m.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testUserID = "0190b7c4-5a2e-7c3d-8f4b-00000000000a"
	testToken  = "valid-token"
)

// tokenAuth accepts testToken only and authenticates it as testUserID.
func tokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUserID, SignedString: tokenString}, nil
		},
	}
}

// newTestRouter builds the full router over the given services. Services
// left nil are filled with an authenticating AuthService and a fixed
// AppInfoService.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = tokenAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{info: models.AppInfo{Version: "test", BuildDate: "N/A", BuildCommit: "N/A"}}
	}

	return NewHandler(svcs, config.Server{}, logger.Nop()).Init()
}

// doRequest sends a request through router. An authenticated request carries
// the bearer testToken.
func doRequest(router http.Handler, method, path, body string, authenticated bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func ptr[T any](v T) *T { return &v }
