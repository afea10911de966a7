// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// The base URL is taken from adapterCfg.HTTPAddress; a missing scheme defaults
// to http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	err := h.do(h.client.R().SetContext(ctx).SetResult(&health).Get, "/health", "health")
	return health, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo
	err := h.do(h.client.R().SetContext(ctx).SetResult(&info).Get, "/api/version", "version")
	return info, err
}

// Register posts the credentials to POST /api/users/register and stores the
// token of the created account.
func (h *httpServerAdapter) Register(ctx context.Context, in models.RegisterInput) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&registered).
		Post("/api/users/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	token := registered.Token
	if token == "" {
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return models.RegisterResponse{}, fmt.Errorf("register parse bearer token: %w", err)
		}
		registered.Token = token
	}

	h.SetToken(token)
	return registered, nil
}

// Login posts the credentials to POST /api/users/login and stores the issued
// token.
func (h *httpServerAdapter) Login(ctx context.Context, in models.LoginInput) (models.LoginResponse, error) {
	var loggedIn models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&loggedIn).
		Post("/api/users/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(loggedIn.Token)
	h.logger.Debug().Str("user_id", loggedIn.User.ID).Msg("logged in")
	return loggedIn, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser
	req, err := h.authedRequest(ctx)
	if err != nil {
		return user, err
	}

	err = h.do(req.SetResult(&user).Get, "/api/users/me", "me")
	return user, err
}

func (h *httpServerAdapter) CreateProfile(ctx context.Context, in models.ProfileInput) (models.Profile, error) {
	var profile models.Profile
	req, err := h.authedRequest(ctx)
	if err != nil {
		return profile, err
	}

	err = h.do(req.SetBody(in).SetResult(&profile).Post, "/api/profiles", "create profile")
	return profile, err
}

func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	req, err := h.authedRequest(ctx)
	if err != nil {
		return profile, err
	}

	err = h.do(req.SetResult(&profile).Get, "/api/profiles/me", "get profile")
	return profile, err
}

// UpdateProfile sends a partial update; nil fields of in stay unchanged on
// the server.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, in models.ProfileInput) (models.Profile, error) {
	var profile models.Profile
	req, err := h.authedRequest(ctx)
	if err != nil {
		return profile, err
	}

	err = h.do(req.SetBody(in).SetResult(&profile).Patch, "/api/profiles/me", "update profile")
	return profile, err
}

func (h *httpServerAdapter) DeleteProfile(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	return h.do(req.Delete, "/api/profiles/me", "delete profile")
}

func (h *httpServerAdapter) CreateExerciseTemplate(ctx context.Context, in models.ExerciseTemplateInput) (models.ExerciseTemplate, error) {
	var template models.ExerciseTemplate
	req, err := h.authedRequest(ctx)
	if err != nil {
		return template, err
	}

	err = h.do(req.SetBody(in).SetResult(&template).Post, "/api/exercise-templates", "create exercise template")
	return template, err
}

func (h *httpServerAdapter) ListExerciseTemplates(ctx context.Context, filter models.ExerciseTemplateFilter) ([]models.ExerciseTemplate, error) {
	templates := []models.ExerciseTemplate{}
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Category != nil {
		req.SetQueryParam("category", string(*filter.Category))
	}

	err = h.do(req.SetResult(&templates).Get, "/api/exercise-templates", "list exercise templates")
	return templates, err
}

func (h *httpServerAdapter) GetExerciseTemplate(ctx context.Context, id string) (models.ExerciseTemplate, error) {
	var template models.ExerciseTemplate
	req, err := h.authedRequest(ctx)
	if err != nil {
		return template, err
	}

	err = h.do(req.SetPathParam("id", id).SetResult(&template).Get, "/api/exercise-templates/{id}", "get exercise template")
	return template, err
}

func (h *httpServerAdapter) UpdateExerciseTemplate(ctx context.Context, id string, patch models.ExerciseTemplatePatch) (models.ExerciseTemplate, error) {
	var template models.ExerciseTemplate
	req, err := h.authedRequest(ctx)
	if err != nil {
		return template, err
	}

	err = h.do(req.SetPathParam("id", id).SetBody(patch).SetResult(&template).Patch, "/api/exercise-templates/{id}", "update exercise template")
	return template, err
}

func (h *httpServerAdapter) DeleteExerciseTemplate(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	return h.do(req.SetPathParam("id", id).Delete, "/api/exercise-templates/{id}", "delete exercise template")
}

func (h *httpServerAdapter) CreateWorkout(ctx context.Context, in models.WorkoutInput) (models.Workout, error) {
	var workout models.Workout
	req, err := h.authedRequest(ctx)
	if err != nil {
		return workout, err
	}

	err = h.do(req.SetBody(in).SetResult(&workout).Post, "/api/workouts", "create workout")
	return workout, err
}

func (h *httpServerAdapter) ListWorkouts(ctx context.Context, filter models.WorkoutFilter) ([]models.Workout, error) {
	workouts := []models.Workout{}
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if filter.From != nil {
		req.SetQueryParam("from", filter.From.UTC().Format(time.RFC3339Nano))
	}
	if filter.To != nil {
		req.SetQueryParam("to", filter.To.UTC().Format(time.RFC3339Nano))
	}

	err = h.do(req.SetResult(&workouts).Get, "/api/workouts", "list workouts")
	return workouts, err
}

func (h *httpServerAdapter) GetWorkout(ctx context.Context, id string) (models.Workout, error) {
	var workout models.Workout
	req, err := h.authedRequest(ctx)
	if err != nil {
		return workout, err
	}

	err = h.do(req.SetPathParam("id", id).SetResult(&workout).Get, "/api/workouts/{id}", "get workout")
	return workout, err
}

func (h *httpServerAdapter) DeleteWorkout(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	return h.do(req.SetPathParam("id", id).Delete, "/api/workouts/{id}", "delete workout")
}

// authedRequest returns a request carrying the stored bearer token, or
// [ErrNotLoggedIn] when no token has been set.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// do executes a prepared request method against path and maps non-2xx
// responses to [*APIError].
func (h *httpServerAdapter) do(send func(string) (*resty.Response, error), path, operation string) error {
	resp, err := send(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", operation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("operation", operation).Msg("server returned an error")
		return err
	}

	return nil
}
