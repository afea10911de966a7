// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-fit-tracker/internal/logger"

// Repositories groups every repository backed by one database connection.
type Repositories struct {
	UserRepository             UserRepository
	ProfileRepository          ProfileRepository
	ExerciseTemplateRepository ExerciseTemplateRepository
	WorkoutRepository          WorkoutRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(db, log),
		ProfileRepository:          NewProfileRepository(db, log),
		ExerciseTemplateRepository: NewExerciseTemplateRepository(db, log),
		WorkoutRepository:          NewWorkoutRepository(db, log),
	}
}
