// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func ptr[T any](v T) *T { return &v }

func Test_buildSelectExerciseTemplateQuery_ScopesByOwner(t *testing.T) {
	query, args, err := buildSelectExerciseTemplateQuery(postgresBuilder, "tpl-1", "user-1")
	require.NoError(t, err)

	assert.Equal(t, []any{"tpl-1", "user-1"}, args)
	assert.Contains(t, query, "FROM exercise_templates")
	assert.Contains(t, query, "WHERE id = $1 AND user_id = $2")
	assert.Contains(t, query, "LIMIT 1")
}

func Test_buildListExerciseTemplatesQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.ExerciseTemplateFilter
		wantWhere  string
		wantArgs   []any
		notContain string
	}{
		{
			name:       "no filter",
			filter:     models.ExerciseTemplateFilter{},
			wantWhere:  "WHERE user_id = $1",
			wantArgs:   []any{"user-1"},
			notContain: "category =",
		},
		{
			name:      "category filter",
			filter:    models.ExerciseTemplateFilter{Category: ptr(models.CategoryLegs)},
			wantWhere: "WHERE user_id = $1 AND category = $2",
			wantArgs:  []any{"user-1", "LEGS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListExerciseTemplatesQuery(postgresBuilder, "user-1", tt.filter)
			require.NoError(t, err)

			assert.Contains(t, query, tt.wantWhere)
			assert.Equal(t, tt.wantArgs, args)
			assert.True(t, strings.HasSuffix(query, "ORDER BY name ASC, created_at ASC"))
			if tt.notContain != "" {
				assert.NotContains(t, query, tt.notContain)
			}
		})
	}
}

func Test_buildUpdateExerciseTemplateQuery_OnlyProvidedFields(t *testing.T) {
	updatedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	patch := models.ExerciseTemplatePatch{
		Name:        ptr("Front squat"),
		DefaultReps: ptr(8),
	}

	query, args, err := buildUpdateExerciseTemplateQuery(postgresBuilder, "tpl-1", "user-1", patch, updatedAt)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "update exercise_templates set"))
	assert.Contains(t, q, "name = $")
	assert.Contains(t, q, "default_reps = $")
	assert.Contains(t, q, "updated_at = $")
	assert.NotContains(t, q, "category =")
	assert.NotContains(t, q, "default_sets")
	assert.Contains(t, query, "WHERE id = $4 AND user_id = $5")

	require.Len(t, args, 5)
	assert.Equal(t, "tpl-1", args[3])
	assert.Equal(t, "user-1", args[4])
	assert.Contains(t, args, "Front squat")
	assert.Contains(t, args, 8)
	assert.Contains(t, args, any(updatedAt))
}

func Test_buildUpdateProfileQuery(t *testing.T) {
	birth := models.NewDate(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC))
	patch := models.ProfileInput{
		Weight:    ptr(79.5),
		BirthDate: &birth,
		Gender:    ptr(models.GenderMale),
	}

	query, args, err := buildUpdateProfileQuery(sqliteBuilder, "user-1", patch, time.Now())
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE profiles SET")
	assert.Contains(t, query, "birth_date = ?")
	assert.Contains(t, query, "gender = ?")
	assert.Contains(t, query, "weight = ?")
	assert.NotContains(t, query, "height")
	assert.Contains(t, query, "WHERE user_id = ?")
	assert.Equal(t, "user-1", args[len(args)-1])
	assert.Contains(t, args, "MALE")
}

func Test_buildInsertExercisesQuery_MultiRow(t *testing.T) {
	exercises := []models.Exercise{
		{ID: "e1", WorkoutID: "w1", Position: 0, Name: "Squat", Sets: 5, Reps: 5},
		{ID: "e2", WorkoutID: "w1", Position: 1, Name: "Lunge", Sets: 3, Reps: 12},
	}

	query, args, err := buildInsertExercisesQuery(postgresBuilder, exercises)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO exercises (id,workout_id,position,name,sets,reps,weight,notes)")
	assert.Contains(t, query, "($1,$2,$3,$4,$5,$6,$7,$8),($9,$10,$11,$12,$13,$14,$15,$16)")
	assert.Len(t, args, 16)
}

func Test_buildListWorkoutsQuery_DateRange(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name      string
		filter    models.WorkoutFilter
		wantWhere string
		wantArgs  int
	}{
		{"no range", models.WorkoutFilter{}, "WHERE user_id = $1 ORDER", 1},
		{"from only", models.WorkoutFilter{From: &from}, "WHERE user_id = $1 AND date >= $2", 2},
		{"to only", models.WorkoutFilter{To: &to}, "WHERE user_id = $1 AND date <= $2", 2},
		{"both", models.WorkoutFilter{From: &from, To: &to}, "WHERE user_id = $1 AND date >= $2 AND date <= $3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListWorkoutsQuery(postgresBuilder, "user-1", tt.filter)
			require.NoError(t, err)

			assert.Contains(t, query, tt.wantWhere)
			assert.Len(t, args, tt.wantArgs)
			assert.True(t, strings.HasSuffix(query, "ORDER BY date DESC, created_at DESC"))
		})
	}
}

func Test_buildSelectExercisesQuery_InClause(t *testing.T) {
	query, args, err := buildSelectExercisesQuery(postgresBuilder, "w1", "w2", "w3")
	require.NoError(t, err)

	// squirrel generates IN ($1,$2,$3) for a slice.
	assert.Contains(t, query, "workout_id IN ($1,$2,$3)")
	assert.Equal(t, []any{"w1", "w2", "w3"}, args)
	assert.True(t, strings.HasSuffix(query, "ORDER BY workout_id ASC, position ASC"))
}

func Test_buildDeleteWorkoutQuery(t *testing.T) {
	query, args, err := buildDeleteWorkoutQuery(sqliteBuilder, "w1", "user-1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM workouts WHERE id = ? AND user_id = ?", query)
	assert.Equal(t, []any{"w1", "user-1"}, args)
}
