// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fit-tracker/models"
)

var (
	userColumns = []string{"id", "email", "password_hash", "name", "created_at", "updated_at"}

	profileColumns = []string{
		"id", "user_id", "height", "weight", "goal_weight", "birth_date",
		"gender", "activity_level", "fitness_goal", "created_at", "updated_at",
	}

	exerciseTemplateColumns = []string{
		"id", "user_id", "name", "category", "description", "difficulty",
		"default_sets", "default_reps", "default_weight", "created_at", "updated_at",
	}

	workoutColumns = []string{"id", "user_id", "name", "date", "notes", "created_at", "updated_at"}

	exerciseColumns = []string{"id", "workout_id", "position", "name", "sets", "reps", "weight", "notes"}
)

// users

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func buildEmailExistsQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select("1").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

// profiles

func buildInsertProfileQuery(b sq.StatementBuilderType, p models.Profile) (string, []any, error) {
	return b.Insert(p.TableName()).
		Columns(profileColumns...).
		Values(p.ID, p.UserID, p.Height, p.Weight, p.GoalWeight, p.BirthDate,
			p.Gender, p.ActivityLevel, p.FitnessGoal, p.CreatedAt, p.UpdatedAt).
		ToSql()
}

func buildSelectProfileQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(profileColumns...).
		From(models.Profile{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
}

func buildUpdateProfileQuery(b sq.StatementBuilderType, userID string, patch models.ProfileInput, updatedAt time.Time) (string, []any, error) {
	set := map[string]any{"updated_at": updatedAt}

	if patch.Height != nil {
		set["height"] = *patch.Height
	}
	if patch.Weight != nil {
		set["weight"] = *patch.Weight
	}
	if patch.GoalWeight != nil {
		set["goal_weight"] = *patch.GoalWeight
	}
	if patch.BirthDate != nil {
		set["birth_date"] = *patch.BirthDate
	}
	if patch.Gender != nil {
		set["gender"] = string(*patch.Gender)
	}
	if patch.ActivityLevel != nil {
		set["activity_level"] = string(*patch.ActivityLevel)
	}
	if patch.FitnessGoal != nil {
		set["fitness_goal"] = string(*patch.FitnessGoal)
	}

	return b.Update(models.Profile{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteProfileQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(models.Profile{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// exercise templates

func buildInsertExerciseTemplateQuery(b sq.StatementBuilderType, t models.ExerciseTemplate) (string, []any, error) {
	return b.Insert(t.TableName()).
		Columns(exerciseTemplateColumns...).
		Values(t.ID, t.UserID, t.Name, string(t.Category), t.Description, t.Difficulty,
			t.DefaultSets, t.DefaultReps, t.DefaultWeight, t.CreatedAt, t.UpdatedAt).
		ToSql()
}

func buildSelectExerciseTemplateQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Select(exerciseTemplateColumns...).
		From(models.ExerciseTemplate{}.TableName()).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
}

func buildListExerciseTemplatesQuery(b sq.StatementBuilderType, userID string, filter models.ExerciseTemplateFilter) (string, []any, error) {
	query := b.Select(exerciseTemplateColumns...).
		From(models.ExerciseTemplate{}.TableName()).
		Where(sq.Eq{"user_id": userID})

	if filter.Category != nil {
		query = query.Where(sq.Eq{"category": string(*filter.Category)})
	}

	return query.OrderBy("name ASC", "created_at ASC").ToSql()
}

func buildUpdateExerciseTemplateQuery(b sq.StatementBuilderType, id, userID string, patch models.ExerciseTemplatePatch, updatedAt time.Time) (string, []any, error) {
	set := map[string]any{"updated_at": updatedAt}

	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = string(*patch.Category)
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Difficulty != nil {
		set["difficulty"] = string(*patch.Difficulty)
	}
	if patch.DefaultSets != nil {
		set["default_sets"] = *patch.DefaultSets
	}
	if patch.DefaultReps != nil {
		set["default_reps"] = *patch.DefaultReps
	}
	if patch.DefaultWeight != nil {
		set["default_weight"] = *patch.DefaultWeight
	}

	return b.Update(models.ExerciseTemplate{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteExerciseTemplateQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Delete(models.ExerciseTemplate{}.TableName()).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// workouts

func buildInsertWorkoutQuery(b sq.StatementBuilderType, w models.Workout) (string, []any, error) {
	return b.Insert(w.TableName()).
		Columns(workoutColumns...).
		Values(w.ID, w.UserID, w.Name, w.Date, w.Notes, w.CreatedAt, w.UpdatedAt).
		ToSql()
}

func buildInsertExercisesQuery(b sq.StatementBuilderType, exercises []models.Exercise) (string, []any, error) {
	query := b.Insert(models.Exercise{}.TableName()).Columns(exerciseColumns...)

	for _, e := range exercises {
		query = query.Values(e.ID, e.WorkoutID, e.Position, e.Name, e.Sets, e.Reps, e.Weight, e.Notes)
	}

	return query.ToSql()
}

func buildSelectWorkoutQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Select(workoutColumns...).
		From(models.Workout{}.TableName()).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
}

func buildListWorkoutsQuery(b sq.StatementBuilderType, userID string, filter models.WorkoutFilter) (string, []any, error) {
	query := b.Select(workoutColumns...).
		From(models.Workout{}.TableName()).
		Where(sq.Eq{"user_id": userID})

	if filter.From != nil {
		query = query.Where(sq.GtOrEq{"date": filter.From.UTC()})
	}
	if filter.To != nil {
		query = query.Where(sq.LtOrEq{"date": filter.To.UTC()})
	}

	return query.OrderBy("date DESC", "created_at DESC").ToSql()
}

func buildSelectExercisesQuery(b sq.StatementBuilderType, workoutIDs ...string) (string, []any, error) {
	return b.Select(exerciseColumns...).
		From(models.Exercise{}.TableName()).
		Where(sq.Eq{"workout_id": workoutIDs}).
		OrderBy("workout_id ASC", "position ASC").
		ToSql()
}

func buildDeleteWorkoutQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Delete(models.Workout{}.TableName()).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
