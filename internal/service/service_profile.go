// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// profileService manages the single profile of the authenticated user.
type profileService struct {
	profileRepository store.ProfileRepository
	ids               IDGenerator
	logger            *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, ids IDGenerator, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		ids:               ids,
		logger:            logger,
	}
}

// Create stores a profile for userID. A second profile for the same user
// matches store.ErrProfileAlreadyExists.
func (s *profileService) Create(ctx context.Context, userID string, input models.ProfileInput) (models.Profile, error) {
	profile := models.Profile{
		ID:     s.ids.Generate(),
		UserID: userID,
	}
	input.Apply(&profile)

	created, err := s.profileRepository.Create(ctx, profile)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.Create").Str("user_id", userID).Msg("profile creation failed")
		return models.Profile{}, fmt.Errorf("profile creation failed: %w", err)
	}

	return created, nil
}

func (s *profileService) Get(ctx context.Context, userID string) (models.Profile, error) {
	profile, err := s.profileRepository.Get(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profile, nil
}

// Update applies the non-nil fields of patch to the caller's profile.
func (s *profileService) Update(ctx context.Context, userID string, patch models.ProfileInput) (models.Profile, error) {
	profile, err := s.profileRepository.Update(ctx, userID, patch)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return profile, nil
}

func (s *profileService) Delete(ctx context.Context, userID string) error {
	if err := s.profileRepository.Delete(ctx, userID); err != nil {
		return fmt.Errorf("profile deletion failed: %w", err)
	}

	return nil
}
