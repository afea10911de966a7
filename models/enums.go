// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Category classifies an exercise template by the muscle group it trains.
type Category string

const (
	CategoryChest     Category = "CHEST"
	CategoryBack      Category = "BACK"
	CategoryLegs      Category = "LEGS"
	CategoryShoulders Category = "SHOULDERS"
	CategoryArms      Category = "ARMS"
	CategoryCore      Category = "CORE"
	CategoryCardio    Category = "CARDIO"
	CategoryFullBody  Category = "FULL_BODY"
)

// Difficulty is the suggested skill level of an exercise template.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// Gender of a profile owner.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// ActivityLevel describes how physically active a user is day to day.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "SEDENTARY"
	ActivityLight      ActivityLevel = "LIGHT"
	ActivityModerate   ActivityLevel = "MODERATE"
	ActivityActive     ActivityLevel = "ACTIVE"
	ActivityVeryActive ActivityLevel = "VERY_ACTIVE"
	ActivityExtreme    ActivityLevel = "EXTREME"
)

// FitnessGoal is the primary training goal stored on a profile.
type FitnessGoal string

const (
	GoalLoseWeight         FitnessGoal = "LOSE_WEIGHT"
	GoalBuildMuscle        FitnessGoal = "BUILD_MUSCLE"
	GoalMaintain           FitnessGoal = "MAINTAIN"
	GoalImproveEndurance   FitnessGoal = "IMPROVE_ENDURANCE"
	GoalImproveFlexibility FitnessGoal = "IMPROVE_FLEXIBILITY"
)

// upperEnum trims and upper-cases an optional enum value in place.
func upperEnum[T ~string](v *T) *T {
	if v == nil {
		return nil
	}
	out := T(strings.ToUpper(strings.TrimSpace(string(*v))))
	return &out
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	out := strings.TrimSpace(*s)
	return &out
}
