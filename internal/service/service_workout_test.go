// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/mock"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWorkoutService_Create_AssignsIDsAndPositions(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWorkoutRepository(ctrl)
	svc := NewWorkoutService(repo, &sequentialIDs{}, logger.Nop())

	local := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2026, 3, 1, 12, 0, 0, 0, local)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w models.Workout) (models.Workout, error) {
			assert.Equal(t, testUserID, w.UserID)
			assert.NotEmpty(t, w.ID)
			assert.Equal(t, time.UTC, w.Date.Location())
			assert.True(t, date.Equal(w.Date))
			require.Len(t, w.Exercises, 2)
			for i, e := range w.Exercises {
				assert.Equal(t, i, e.Position)
				assert.Equal(t, w.ID, e.WorkoutID)
				assert.NotEmpty(t, e.ID)
			}
			assert.NotEqual(t, w.Exercises[0].ID, w.Exercises[1].ID)
			return w, nil
		},
	)

	created, err := svc.Create(context.Background(), testUserID, models.WorkoutInput{
		Name: "Pull",
		Date: &date,
		Exercises: []models.ExerciseInput{
			{Name: "Row", Sets: 4, Reps: 10, Weight: ptr(60.0)},
			{Name: "Curl", Sets: 3, Reps: 12},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Row", created.Exercises[0].Name)
	assert.Equal(t, "Curl", created.Exercises[1].Name)
}

func TestWorkoutService_Create_EmptyExercises(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWorkoutRepository(ctrl)
	svc := NewWorkoutService(repo, &sequentialIDs{}, logger.Nop())
	date := time.Now()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w models.Workout) (models.Workout, error) {
			assert.NotNil(t, w.Exercises)
			assert.Empty(t, w.Exercises)
			return w, nil
		},
	)

	_, err := svc.Create(context.Background(), testUserID, models.WorkoutInput{Name: "Rest", Date: &date, Exercises: []models.ExerciseInput{}})
	require.NoError(t, err)
}

func TestWorkoutService_NonUUIDIDIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWorkoutRepository(ctrl) // no expectations: the repository is never hit
	svc := NewWorkoutService(repo, &sequentialIDs{}, logger.Nop())
	ctx := context.Background()

	_, err := svc.Get(ctx, "42", testUserID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "../etc/passwd", testUserID), store.ErrNotFound)
}

func TestWorkoutService_DeleteTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWorkoutRepository(ctrl)
	svc := NewWorkoutService(repo, &sequentialIDs{}, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Delete(ctx, testOtherID, testUserID).Return(nil),
		repo.EXPECT().Delete(ctx, testOtherID, testUserID).Return(store.ErrNotFound),
	)

	require.NoError(t, svc.Delete(ctx, testOtherID, testUserID))
	assert.ErrorIs(t, svc.Delete(ctx, testOtherID, testUserID), store.ErrNotFound)
}

func TestWorkoutService_List_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWorkoutRepository(ctrl)
	svc := NewWorkoutService(repo, &sequentialIDs{}, logger.Nop())

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := models.WorkoutFilter{From: &from}
	repo.EXPECT().List(gomock.Any(), testUserID, filter).Return([]models.Workout{{ID: testOtherID}}, nil)

	workouts, err := svc.List(context.Background(), testUserID, filter)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
}

func TestExerciseTemplateService_OwnershipMismatchIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockExerciseTemplateRepository(ctrl)
	svc := NewExerciseTemplateService(repo, &sequentialIDs{}, logger.Nop())

	repo.EXPECT().Get(gomock.Any(), testOtherID, testUserID).Return(models.ExerciseTemplate{}, store.ErrNotFound)

	_, err := svc.Get(context.Background(), testOtherID, testUserID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExerciseTemplateService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockExerciseTemplateRepository(ctrl)
	svc := NewExerciseTemplateService(repo, &sequentialIDs{}, logger.Nop())

	input := models.ExerciseTemplateInput{
		Name:          "Plank",
		Category:      models.CategoryCore,
		Difficulty:    ptr(models.DifficultyBeginner),
		DefaultSets:   ptr(3),
		DefaultWeight: ptr(0.0),
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tpl models.ExerciseTemplate) (models.ExerciseTemplate, error) {
			assert.Equal(t, "00000000-0000-7000-8000-000000000001", tpl.ID)
			assert.Equal(t, input.Difficulty, tpl.Difficulty)
			assert.Equal(t, input.DefaultWeight, tpl.DefaultWeight)
			return tpl, nil
		},
	)

	_, err := svc.Create(context.Background(), testUserID, input)
	require.NoError(t, err)
}

func TestProfileService_CreateAppliesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProfileRepository(ctrl)
	svc := NewProfileService(repo, &sequentialIDs{}, logger.Nop())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Profile) (models.Profile, error) {
			assert.Equal(t, testUserID, p.UserID)
			require.NotNil(t, p.Height)
			assert.Equal(t, 181.0, *p.Height)
			assert.Nil(t, p.Weight)
			return p, nil
		},
	)

	_, err := svc.Create(context.Background(), testUserID, models.ProfileInput{Height: ptr(181.0)})
	require.NoError(t, err)
}

func TestProfileService_DuplicateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProfileRepository(ctrl)
	svc := NewProfileService(repo, &sequentialIDs{}, logger.Nop())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Profile{}, store.ErrProfileAlreadyExists)

	_, err := svc.Create(context.Background(), testUserID, models.ProfileInput{})
	assert.ErrorIs(t, err, store.ErrDuplicateKey)
}
