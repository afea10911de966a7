// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/validators"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// The validation services below normalize incoming payloads (trimmed strings,
// lower-case email, upper-case enum values) and reject invalid ones before
// the wrapped service, and therefore any repository, is called.

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Register(ctx context.Context, input models.RegisterInput) (models.User, error) {
	input = input.Normalized()
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("error during registration data validation: %w", err)
	}

	return v.inner.Register(ctx, input)
}

func (v *AuthValidationService) Login(ctx context.Context, input models.LoginInput) (models.User, error) {
	input = input.Normalized()
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("error during login data validation: %w", err)
	}

	return v.inner.Login(ctx, input)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Me(ctx context.Context, userID string) (models.User, error) {
	return v.inner.Me(ctx, userID)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService(validator validators.Validator) ProfileServiceWrapper {
	return &ProfileValidationService{validator: validator}
}

func (v *ProfileValidationService) Create(ctx context.Context, userID string, input models.ProfileInput) (models.Profile, error) {
	input = input.Normalized()
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Profile{}, fmt.Errorf("error during profile validation before saving: %w", err)
	}

	return v.inner.Create(ctx, userID, input)
}

func (v *ProfileValidationService) Get(ctx context.Context, userID string) (models.Profile, error) {
	return v.inner.Get(ctx, userID)
}

func (v *ProfileValidationService) Update(ctx context.Context, userID string, patch models.ProfileInput) (models.Profile, error) {
	if patch.IsEmpty() {
		return models.Profile{}, validators.ErrNothingToUpdate
	}

	patch = patch.Normalized()
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Profile{}, fmt.Errorf("error during profile validation before update: %w", err)
	}

	return v.inner.Update(ctx, userID, patch)
}

func (v *ProfileValidationService) Delete(ctx context.Context, userID string) error {
	return v.inner.Delete(ctx, userID)
}

func (v *ProfileValidationService) Wrap(wrapped ProfileService) ProfileService {
	v.inner = wrapped
	return v
}

type ExerciseTemplateValidationService struct {
	inner     ExerciseTemplateService
	validator validators.Validator
}

func NewExerciseTemplateValidationService(validator validators.Validator) ExerciseTemplateServiceWrapper {
	return &ExerciseTemplateValidationService{validator: validator}
}

func (v *ExerciseTemplateValidationService) Create(ctx context.Context, userID string, input models.ExerciseTemplateInput) (models.ExerciseTemplate, error) {
	input = input.Normalized()
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.ExerciseTemplate{}, fmt.Errorf("error during exercise template validation before saving: %w", err)
	}

	return v.inner.Create(ctx, userID, input)
}

func (v *ExerciseTemplateValidationService) Get(ctx context.Context, id, userID string) (models.ExerciseTemplate, error) {
	return v.inner.Get(ctx, id, userID)
}

func (v *ExerciseTemplateValidationService) List(ctx context.Context, userID string, filter models.ExerciseTemplateFilter) ([]models.ExerciseTemplate, error) {
	filter = filter.Normalized()
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("error during exercise template filter validation: %w", err)
	}

	return v.inner.List(ctx, userID, filter)
}

func (v *ExerciseTemplateValidationService) Update(ctx context.Context, id, userID string, patch models.ExerciseTemplatePatch) (models.ExerciseTemplate, error) {
	if patch.IsEmpty() {
		return models.ExerciseTemplate{}, validators.ErrNothingToUpdate
	}

	patch = patch.Normalized()
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.ExerciseTemplate{}, fmt.Errorf("error during exercise template validation before update: %w", err)
	}

	return v.inner.Update(ctx, id, userID, patch)
}

func (v *ExerciseTemplateValidationService) Delete(ctx context.Context, id, userID string) error {
	return v.inner.Delete(ctx, id, userID)
}

func (v *ExerciseTemplateValidationService) Wrap(wrapped ExerciseTemplateService) ExerciseTemplateService {
	v.inner = wrapped
	return v
}

type WorkoutValidationService struct {
	inner     WorkoutService
	validator validators.Validator
}

func NewWorkoutValidationService(validator validators.Validator) WorkoutServiceWrapper {
	return &WorkoutValidationService{validator: validator}
}

func (v *WorkoutValidationService) Create(ctx context.Context, userID string, input models.WorkoutInput) (models.Workout, error) {
	input = input.Normalized()
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Workout{}, fmt.Errorf("error during workout validation before saving: %w", err)
	}

	return v.inner.Create(ctx, userID, input)
}

func (v *WorkoutValidationService) Get(ctx context.Context, id, userID string) (models.Workout, error) {
	return v.inner.Get(ctx, id, userID)
}

func (v *WorkoutValidationService) List(ctx context.Context, userID string, filter models.WorkoutFilter) ([]models.Workout, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, validators.NewValidationError(models.FieldError{Field: "from", Message: "must not be after to"})
	}

	return v.inner.List(ctx, userID, filter)
}

func (v *WorkoutValidationService) Delete(ctx context.Context, id, userID string) error {
	return v.inner.Delete(ctx, id, userID)
}

func (v *WorkoutValidationService) Wrap(wrapped WorkoutService) WorkoutService {
	v.inner = wrapped
	return v
}
