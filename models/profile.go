// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Profile holds the body metrics and training preferences of a user.
// There is at most one profile per user; every metric is optional.
type Profile struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	// Height in centimetres.
	Height *float64 `json:"height"`
	// Weight in kilograms.
	Weight *float64 `json:"weight"`
	// GoalWeight is the target weight in kilograms.
	GoalWeight *float64 `json:"goalWeight"`

	BirthDate     *Date          `json:"birthDate"`
	Gender        *Gender        `json:"gender"`
	ActivityLevel *ActivityLevel `json:"activityLevel"`
	FitnessGoal   *FitnessGoal   `json:"fitnessGoal"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p Profile) TableName() string {
	return "profiles"
}

// ProfileInput is the request body for creating and updating a profile.
// Nil fields are left unset on create and untouched on update.
type ProfileInput struct {
	Height        *float64       `json:"height" validate:"omitempty,gt=0,lte=300"`
	Weight        *float64       `json:"weight" validate:"omitempty,gt=0,lte=700"`
	GoalWeight    *float64       `json:"goalWeight" validate:"omitempty,gt=0,lte=700"`
	BirthDate     *Date          `json:"birthDate" validate:"omitempty,lte"`
	Gender        *Gender        `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	ActivityLevel *ActivityLevel `json:"activityLevel" validate:"omitempty,oneof=SEDENTARY LIGHT MODERATE ACTIVE VERY_ACTIVE EXTREME"`
	FitnessGoal   *FitnessGoal   `json:"fitnessGoal" validate:"omitempty,oneof=LOSE_WEIGHT BUILD_MUSCLE MAINTAIN IMPROVE_ENDURANCE IMPROVE_FLEXIBILITY"`
}

// Normalized upper-cases the enum values of the input.
func (in ProfileInput) Normalized() ProfileInput {
	in.Gender = upperEnum(in.Gender)
	in.ActivityLevel = upperEnum(in.ActivityLevel)
	in.FitnessGoal = upperEnum(in.FitnessGoal)
	return in
}

// IsEmpty reports whether no field of the input is set.
func (in ProfileInput) IsEmpty() bool {
	return in.Height == nil &&
		in.Weight == nil &&
		in.GoalWeight == nil &&
		in.BirthDate == nil &&
		in.Gender == nil &&
		in.ActivityLevel == nil &&
		in.FitnessGoal == nil
}

// Apply copies every non-nil field of in onto p.
func (in ProfileInput) Apply(p *Profile) {
	if in.Height != nil {
		p.Height = in.Height
	}
	if in.Weight != nil {
		p.Weight = in.Weight
	}
	if in.GoalWeight != nil {
		p.GoalWeight = in.GoalWeight
	}
	if in.BirthDate != nil {
		p.BirthDate = in.BirthDate
	}
	if in.Gender != nil {
		p.Gender = in.Gender
	}
	if in.ActivityLevel != nil {
		p.ActivityLevel = in.ActivityLevel
	}
	if in.FitnessGoal != nil {
		p.FitnessGoal = in.FitnessGoal
	}
}
