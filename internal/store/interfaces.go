// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns [ErrEmailAlreadyExists] when the
	// email is already registered.
	Create(ctx context.Context, user models.User) (models.User, error)

	// FindByEmail returns the user with the given email or [ErrNotFound].
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID returns the user with the given id or [ErrNotFound].
	FindByID(ctx context.Context, id string) (models.User, error)
}

// ProfileRepository persists the single profile of a user. Every method is
// keyed by the owner's id.
type ProfileRepository interface {
	Create(ctx context.Context, profile models.Profile) (models.Profile, error)
	Get(ctx context.Context, userID string) (models.Profile, error)
	Update(ctx context.Context, userID string, patch models.ProfileInput) (models.Profile, error)
	Delete(ctx context.Context, userID string) error
}

// ExerciseTemplateRepository persists exercise templates scoped to their owner.
// A template owned by another user is reported as [ErrNotFound].
type ExerciseTemplateRepository interface {
	Create(ctx context.Context, template models.ExerciseTemplate) (models.ExerciseTemplate, error)
	Get(ctx context.Context, id, userID string) (models.ExerciseTemplate, error)
	List(ctx context.Context, userID string, filter models.ExerciseTemplateFilter) ([]models.ExerciseTemplate, error)
	Update(ctx context.Context, id, userID string, patch models.ExerciseTemplatePatch) (models.ExerciseTemplate, error)
	Delete(ctx context.Context, id, userID string) error
}

// WorkoutRepository persists workouts together with their exercises.
type WorkoutRepository interface {
	// Create writes the workout and all of its exercises in one transaction.
	Create(ctx context.Context, workout models.Workout) (models.Workout, error)
	Get(ctx context.Context, id, userID string) (models.Workout, error)
	// List returns the owner's workouts, newest first, with exercises in position order.
	List(ctx context.Context, userID string, filter models.WorkoutFilter) ([]models.Workout, error)
	Delete(ctx context.Context, id, userID string) error
}
