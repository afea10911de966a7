// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// workoutRepository is the SQL implementation of [WorkoutRepository].
// Exercises live in their own table and are removed with their workout
// by the ON DELETE CASCADE foreign key.
type workoutRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewWorkoutRepository(db *DB, logger *logger.Logger) WorkoutRepository {
	logger.Debug().Msg("creating workout repository")
	return &workoutRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the workout row and one row per exercise inside a single
// transaction. Exercise positions and workout ids are assigned here.
func (r *workoutRepository) Create(ctx context.Context, workout models.Workout) (models.Workout, error) {
	log := logger.FromContext(ctx)

	ts := now()
	workout.CreatedAt, workout.UpdatedAt = ts, ts
	workout.Date = workout.Date.UTC()
	if workout.Exercises == nil {
		workout.Exercises = []models.Exercise{}
	}
	for i := range workout.Exercises {
		workout.Exercises[i].WorkoutID = workout.ID
		workout.Exercises[i].Position = i
	}

	workoutQuery, workoutArgs, err := buildInsertWorkoutQuery(r.db.builder, workout)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.Create").Msg("error building insert workout query")
		return models.Workout{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.Create").Msg("error beginning transaction")
		return models.Workout{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, workoutQuery, workoutArgs...); err != nil {
		err = r.db.classify(err)
		log.Err(err).Str("func", "*workoutRepository.Create").Msg("error inserting workout")
		return models.Workout{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(workout.Exercises) > 0 {
		exercisesQuery, exercisesArgs, err := buildInsertExercisesQuery(r.db.builder, workout.Exercises)
		if err != nil {
			log.Err(err).Str("func", "*workoutRepository.Create").Msg("error building insert exercises query")
			return models.Workout{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, exercisesQuery, exercisesArgs...); err != nil {
			err = r.db.classify(err)
			log.Err(err).Str("func", "*workoutRepository.Create").Msg("error inserting exercises")
			return models.Workout{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*workoutRepository.Create").Msg("error committing transaction")
		return models.Workout{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return workout, nil
}

func (r *workoutRepository) Get(ctx context.Context, id, userID string) (models.Workout, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectWorkoutQuery(r.db.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.Get").Msg("error building select query")
		return models.Workout{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	workout, err := scanWorkout(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Workout{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.Get").Msg("error scanning workout")
		return models.Workout{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	exercises, err := r.exercisesByWorkout(ctx, workout.ID)
	if err != nil {
		return models.Workout{}, err
	}
	workout.Exercises = exercises[workout.ID]
	if workout.Exercises == nil {
		workout.Exercises = []models.Exercise{}
	}

	return workout, nil
}

func (r *workoutRepository) List(ctx context.Context, userID string, filter models.WorkoutFilter) ([]models.Workout, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListWorkoutsQuery(r.db.builder, userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.List").Msg("error querying workouts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	ids := make([]string, 0)
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			log.Err(err).Str("func", "*workoutRepository.List").Msg("error scanning workout")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		workouts = append(workouts, workout)
		ids = append(ids, workout.ID)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*workoutRepository.List").Msg("error iterating workouts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	// release the connection before the exercises query; sqlite runs on a single one
	rows.Close()

	if len(workouts) == 0 {
		return workouts, nil
	}

	exercises, err := r.exercisesByWorkout(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		workouts[i].Exercises = exercises[workouts[i].ID]
		if workouts[i].Exercises == nil {
			workouts[i].Exercises = []models.Exercise{}
		}
	}

	return workouts, nil
}

func (r *workoutRepository) Delete(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteWorkoutQuery(r.db.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, "*workoutRepository.Delete", query, args)
}

// exercisesByWorkout loads the exercises of the given workouts grouped by workout id,
// each group in position order.
func (r *workoutRepository) exercisesByWorkout(ctx context.Context, workoutIDs ...string) (map[string][]models.Exercise, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectExercisesQuery(r.db.builder, workoutIDs...)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.exercisesByWorkout").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.exercisesByWorkout").Msg("error querying exercises")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.Exercise, len(workoutIDs))
	for rows.Next() {
		var e models.Exercise
		if err = rows.Scan(&e.ID, &e.WorkoutID, &e.Position, &e.Name, &e.Sets, &e.Reps, &e.Weight, &e.Notes); err != nil {
			log.Err(err).Str("func", "*workoutRepository.exercisesByWorkout").Msg("error scanning exercise")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		grouped[e.WorkoutID] = append(grouped[e.WorkoutID], e)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*workoutRepository.exercisesByWorkout").Msg("error iterating exercises")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grouped, nil
}

func scanWorkout(row rowScanner) (models.Workout, error) {
	var w models.Workout
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Date, &w.Notes, &w.CreatedAt, &w.UpdatedAt)
	w.Date = w.Date.UTC()
	return w, err
}
