// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// ExerciseTemplate is a reusable exercise definition owned by a user, with
// optional default sets, reps and weight used to prefill workouts.
type ExerciseTemplate struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Name        string      `json:"name"`
	Category    Category    `json:"category"`
	Description *string     `json:"description"`
	Difficulty  *Difficulty `json:"difficulty"`

	DefaultSets   *int     `json:"defaultSets"`
	DefaultReps   *int     `json:"defaultReps"`
	DefaultWeight *float64 `json:"defaultWeight"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t ExerciseTemplate) TableName() string {
	return "exercise_templates"
}

// ExerciseTemplateInput is the request body for creating a template.
type ExerciseTemplateInput struct {
	Name          string      `json:"name" validate:"required,max=100"`
	Category      Category    `json:"category" validate:"required,oneof=CHEST BACK LEGS SHOULDERS ARMS CORE CARDIO FULL_BODY"`
	Description   *string     `json:"description" validate:"omitempty,max=1000"`
	Difficulty    *Difficulty `json:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	DefaultSets   *int        `json:"defaultSets" validate:"omitempty,gt=0,lte=100"`
	DefaultReps   *int        `json:"defaultReps" validate:"omitempty,gt=0,lte=1000"`
	DefaultWeight *float64    `json:"defaultWeight" validate:"omitempty,gte=0,lte=2000"`
}

func (in ExerciseTemplateInput) Normalized() ExerciseTemplateInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = Category(strings.ToUpper(strings.TrimSpace(string(in.Category))))
	in.Description = trimOptional(in.Description)
	in.Difficulty = upperEnum(in.Difficulty)
	return in
}

// ExerciseTemplatePatch is the request body for PUT and PATCH on a template.
// Both verbs are partial: nil fields keep their stored value.
type ExerciseTemplatePatch struct {
	Name          *string     `json:"name" validate:"omitempty,min=1,max=100"`
	Category      *Category   `json:"category" validate:"omitempty,oneof=CHEST BACK LEGS SHOULDERS ARMS CORE CARDIO FULL_BODY"`
	Description   *string     `json:"description" validate:"omitempty,max=1000"`
	Difficulty    *Difficulty `json:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	DefaultSets   *int        `json:"defaultSets" validate:"omitempty,gt=0,lte=100"`
	DefaultReps   *int        `json:"defaultReps" validate:"omitempty,gt=0,lte=1000"`
	DefaultWeight *float64    `json:"defaultWeight" validate:"omitempty,gte=0,lte=2000"`
}

func (p ExerciseTemplatePatch) Normalized() ExerciseTemplatePatch {
	p.Name = trimOptional(p.Name)
	p.Category = upperEnum(p.Category)
	p.Description = trimOptional(p.Description)
	p.Difficulty = upperEnum(p.Difficulty)
	return p
}

// IsEmpty reports whether no field of the patch is set.
func (p ExerciseTemplatePatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Category == nil &&
		p.Description == nil &&
		p.Difficulty == nil &&
		p.DefaultSets == nil &&
		p.DefaultReps == nil &&
		p.DefaultWeight == nil
}

// ExerciseTemplateFilter narrows a template listing.
type ExerciseTemplateFilter struct {
	Category *Category `json:"category" validate:"omitempty,oneof=CHEST BACK LEGS SHOULDERS ARMS CORE CARDIO FULL_BODY"`
}

// Normalized upper-cases the category filter.
func (f ExerciseTemplateFilter) Normalized() ExerciseTemplateFilter {
	f.Category = upperEnum(f.Category)
	return f
}
