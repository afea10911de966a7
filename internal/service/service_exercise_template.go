// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// exerciseTemplateService manages the reusable exercise definitions of a user.
type exerciseTemplateService struct {
	templateRepository store.ExerciseTemplateRepository
	ids                IDGenerator
	logger             *logger.Logger
}

func NewExerciseTemplateService(templateRepository store.ExerciseTemplateRepository, ids IDGenerator, logger *logger.Logger) ExerciseTemplateService {
	return &exerciseTemplateService{
		templateRepository: templateRepository,
		ids:                ids,
		logger:             logger,
	}
}

func (s *exerciseTemplateService) Create(ctx context.Context, userID string, input models.ExerciseTemplateInput) (models.ExerciseTemplate, error) {
	template := models.ExerciseTemplate{
		ID:            s.ids.Generate(),
		UserID:        userID,
		Name:          input.Name,
		Category:      input.Category,
		Description:   input.Description,
		Difficulty:    input.Difficulty,
		DefaultSets:   input.DefaultSets,
		DefaultReps:   input.DefaultReps,
		DefaultWeight: input.DefaultWeight,
	}

	created, err := s.templateRepository.Create(ctx, template)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*exerciseTemplateService.Create").Str("user_id", userID).Msg("exercise template creation failed")
		return models.ExerciseTemplate{}, fmt.Errorf("exercise template creation failed: %w", err)
	}

	return created, nil
}

func (s *exerciseTemplateService) Get(ctx context.Context, id, userID string) (models.ExerciseTemplate, error) {
	if err := checkRecordID(id); err != nil {
		return models.ExerciseTemplate{}, err
	}

	template, err := s.templateRepository.Get(ctx, id, userID)
	if err != nil {
		return models.ExerciseTemplate{}, fmt.Errorf("exercise template lookup failed: %w", err)
	}

	return template, nil
}

func (s *exerciseTemplateService) List(ctx context.Context, userID string, filter models.ExerciseTemplateFilter) ([]models.ExerciseTemplate, error) {
	templates, err := s.templateRepository.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("exercise template listing failed: %w", err)
	}

	return templates, nil
}

func (s *exerciseTemplateService) Update(ctx context.Context, id, userID string, patch models.ExerciseTemplatePatch) (models.ExerciseTemplate, error) {
	if err := checkRecordID(id); err != nil {
		return models.ExerciseTemplate{}, err
	}

	template, err := s.templateRepository.Update(ctx, id, userID, patch)
	if err != nil {
		return models.ExerciseTemplate{}, fmt.Errorf("exercise template update failed: %w", err)
	}

	return template, nil
}

func (s *exerciseTemplateService) Delete(ctx context.Context, id, userID string) error {
	if err := checkRecordID(id); err != nil {
		return err
	}

	if err := s.templateRepository.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("exercise template deletion failed: %w", err)
	}

	return nil
}

// checkRecordID reports ids that are not UUIDs as missing records; such an
// id cannot exist in the store.
func checkRecordID(id string) error {
	if !utils.IsValidUUID(id) {
		return store.ErrNotFound
	}
	return nil
}
