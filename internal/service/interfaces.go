// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

type AuthService interface {
	Register(ctx context.Context, input models.RegisterInput) (models.User, error)
	Login(ctx context.Context, input models.LoginInput) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Me(ctx context.Context, userID string) (models.User, error)
}

type ProfileService interface {
	Create(ctx context.Context, userID string, input models.ProfileInput) (models.Profile, error)
	Get(ctx context.Context, userID string) (models.Profile, error)
	Update(ctx context.Context, userID string, patch models.ProfileInput) (models.Profile, error)
	Delete(ctx context.Context, userID string) error
}

type ExerciseTemplateService interface {
	Create(ctx context.Context, userID string, input models.ExerciseTemplateInput) (models.ExerciseTemplate, error)
	Get(ctx context.Context, id, userID string) (models.ExerciseTemplate, error)
	List(ctx context.Context, userID string, filter models.ExerciseTemplateFilter) ([]models.ExerciseTemplate, error)
	Update(ctx context.Context, id, userID string, patch models.ExerciseTemplatePatch) (models.ExerciseTemplate, error)
	Delete(ctx context.Context, id, userID string) error
}

type WorkoutService interface {
	Create(ctx context.Context, userID string, input models.WorkoutInput) (models.Workout, error)
	Get(ctx context.Context, id, userID string) (models.Workout, error)
	List(ctx context.Context, userID string, filter models.WorkoutFilter) ([]models.Workout, error)
	Delete(ctx context.Context, id, userID string) error
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProfileServiceWrapper defines middleware composition for ProfileService.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}

// ExerciseTemplateServiceWrapper defines middleware composition for ExerciseTemplateService.
type ExerciseTemplateServiceWrapper interface {
	Wrap(ExerciseTemplateService) ExerciseTemplateService
}

// WorkoutServiceWrapper defines middleware composition for WorkoutService.
type WorkoutServiceWrapper interface {
	Wrap(WorkoutService) WorkoutService
}
