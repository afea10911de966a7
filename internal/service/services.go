// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// Services groups the business services consumed by the transport layer.
// Every resource service is wrapped by its validation service.
type Services struct {
	AuthService             AuthService
	ProfileService          ProfileService
	ExerciseTemplateService ExerciseTemplateService
	WorkoutService          WorkoutService
	AppInfoService          AppInfoService
}

func NewServices(repositories *store.Repositories, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	ids := utils.NewUUIDGenerator()
	validator := validators.NewStructValidator()

	appInfoService, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(repositories.UserRepository, ids, cfg.App, logger)),
		ProfileService: NewProfileValidationService(validator).
			Wrap(NewProfileService(repositories.ProfileRepository, ids, logger)),
		ExerciseTemplateService: NewExerciseTemplateValidationService(validator).
			Wrap(NewExerciseTemplateService(repositories.ExerciseTemplateRepository, ids, logger)),
		WorkoutService: NewWorkoutValidationService(validator).
			Wrap(NewWorkoutService(repositories.WorkoutRepository, ids, logger)),
		AppInfoService: appInfoService,
	}, nil
}
