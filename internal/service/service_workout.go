// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/observability"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// workoutService records training sessions and their exercises.
type workoutService struct {
	workoutRepository store.WorkoutRepository
	ids               IDGenerator
	logger            *logger.Logger
}

func NewWorkoutService(workoutRepository store.WorkoutRepository, ids IDGenerator, logger *logger.Logger) WorkoutService {
	return &workoutService{
		workoutRepository: workoutRepository,
		ids:               ids,
		logger:            logger,
	}
}

// Create persists the workout with its exercises; the order of
// input.Exercises becomes the exercise positions.
func (s *workoutService) Create(ctx context.Context, userID string, input models.WorkoutInput) (models.Workout, error) {
	workout := models.Workout{
		ID:        s.ids.Generate(),
		UserID:    userID,
		Name:      input.Name,
		Notes:     input.Notes,
		Exercises: make([]models.Exercise, 0, len(input.Exercises)),
	}
	if input.Date != nil {
		workout.Date = input.Date.UTC()
	}

	for i, e := range input.Exercises {
		workout.Exercises = append(workout.Exercises, models.Exercise{
			ID:        s.ids.Generate(),
			WorkoutID: workout.ID,
			Position:  i,
			Name:      e.Name,
			Sets:      e.Sets,
			Reps:      e.Reps,
			Weight:    e.Weight,
			Notes:     e.Notes,
		})
	}

	created, err := s.workoutRepository.Create(ctx, workout)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*workoutService.Create").Str("user_id", userID).Msg("workout creation failed")
		return models.Workout{}, fmt.Errorf("workout creation failed: %w", err)
	}

	observability.RecordWorkoutCreated(len(created.Exercises))

	return created, nil
}

func (s *workoutService) Get(ctx context.Context, id, userID string) (models.Workout, error) {
	if err := checkRecordID(id); err != nil {
		return models.Workout{}, err
	}

	workout, err := s.workoutRepository.Get(ctx, id, userID)
	if err != nil {
		return models.Workout{}, fmt.Errorf("workout lookup failed: %w", err)
	}

	return workout, nil
}

func (s *workoutService) List(ctx context.Context, userID string, filter models.WorkoutFilter) ([]models.Workout, error) {
	workouts, err := s.workoutRepository.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("workout listing failed: %w", err)
	}

	return workouts, nil
}

func (s *workoutService) Delete(ctx context.Context, id, userID string) error {
	if err := checkRecordID(id); err != nil {
		return err
	}

	if err := s.workoutRepository.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("workout deletion failed: %w", err)
	}

	return nil
}
