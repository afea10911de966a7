// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the fitness tracker REST API.
//
// The primary abstraction is [ServerAdapter]; [NewHTTPServerAdapter] returns
// its HTTP implementation. Non-2xx responses are returned as [*APIError]
// values that unwrap to the sentinels in errors.go, e.g. [ErrConflict] for
// 409 and [ErrUnauthorized] for 401.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// ServerAdapter defines communication with the fitness tracker server.
// Implementations attach the stored bearer token to every authenticated
// request.
type ServerAdapter interface {
	// SetToken stores the bearer token used by subsequent authenticated
	// requests. Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	Health(ctx context.Context) (models.HealthResponse, error)
	Version(ctx context.Context) (models.AppInfo, error)

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, in models.RegisterInput) (models.RegisterResponse, error)

	// Login authenticates with email and password and stores the issued
	// token.
	Login(ctx context.Context, in models.LoginInput) (models.LoginResponse, error)

	Me(ctx context.Context) (models.PublicUser, error)

	CreateProfile(ctx context.Context, in models.ProfileInput) (models.Profile, error)
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, in models.ProfileInput) (models.Profile, error)
	DeleteProfile(ctx context.Context) error

	CreateExerciseTemplate(ctx context.Context, in models.ExerciseTemplateInput) (models.ExerciseTemplate, error)
	ListExerciseTemplates(ctx context.Context, filter models.ExerciseTemplateFilter) ([]models.ExerciseTemplate, error)
	GetExerciseTemplate(ctx context.Context, id string) (models.ExerciseTemplate, error)
	UpdateExerciseTemplate(ctx context.Context, id string, patch models.ExerciseTemplatePatch) (models.ExerciseTemplate, error)
	DeleteExerciseTemplate(ctx context.Context, id string) error

	CreateWorkout(ctx context.Context, in models.WorkoutInput) (models.Workout, error)

	// ListWorkouts returns the caller's workouts, newest first, optionally
	// bounded by filter.From and filter.To.
	ListWorkouts(ctx context.Context, filter models.WorkoutFilter) ([]models.Workout, error)
	GetWorkout(ctx context.Context, id string) (models.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
}
