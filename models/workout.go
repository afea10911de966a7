// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Workout is a training session of a user together with its ordered list of
// exercises. The workout and its exercises are always written together.
type Workout struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Name  string    `json:"name"`
	Date  time.Time `json:"date"`
	Notes *string   `json:"notes"`

	Exercises []Exercise `json:"exercises"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (w Workout) TableName() string {
	return "workouts"
}

// Exercise is one entry of a workout. Position keeps the order in which the
// exercises were submitted.
type Exercise struct {
	ID        string   `json:"id"`
	WorkoutID string   `json:"workoutId"`
	Position  int      `json:"position"`
	Name      string   `json:"name"`
	Sets      int      `json:"sets"`
	Reps      int      `json:"reps"`
	Weight    *float64 `json:"weight"`
	Notes     *string  `json:"notes"`
}

func (e Exercise) TableName() string {
	return "exercises"
}

// WorkoutInput is the request body of POST /api/workouts.
type WorkoutInput struct {
	Name      string          `json:"name" validate:"required,max=100"`
	Date      *time.Time      `json:"date" validate:"required"`
	Notes     *string         `json:"notes" validate:"omitempty,max=1000"`
	Exercises []ExerciseInput `json:"exercises" validate:"required,max=100,dive"`
}

func (in WorkoutInput) Normalized() WorkoutInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Notes = trimOptional(in.Notes)
	if in.Date != nil {
		d := in.Date.UTC()
		in.Date = &d
	}

	exercises := make([]ExerciseInput, len(in.Exercises))
	for i, e := range in.Exercises {
		e.Name = strings.TrimSpace(e.Name)
		e.Notes = trimOptional(e.Notes)
		exercises[i] = e
	}
	if in.Exercises != nil {
		in.Exercises = exercises
	}

	return in
}

// ExerciseInput is one exercise entry of a [WorkoutInput].
type ExerciseInput struct {
	Name   string   `json:"name" validate:"required,max=100"`
	Sets   int      `json:"sets" validate:"gt=0,lte=100"`
	Reps   int      `json:"reps" validate:"gt=0,lte=1000"`
	Weight *float64 `json:"weight" validate:"omitempty,gte=0,lte=2000"`
	Notes  *string  `json:"notes" validate:"omitempty,max=1000"`
}

// WorkoutFilter narrows a workout listing to a date range. Both bounds are
// inclusive and optional.
type WorkoutFilter struct {
	From *time.Time
	To   *time.Time
}
