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

// exerciseTemplateRepository is the SQL implementation of [ExerciseTemplateRepository].
// Every query filters by user_id so templates of other users stay invisible.
type exerciseTemplateRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewExerciseTemplateRepository(db *DB, logger *logger.Logger) ExerciseTemplateRepository {
	logger.Debug().Msg("creating exercise template repository")
	return &exerciseTemplateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *exerciseTemplateRepository) Create(ctx context.Context, template models.ExerciseTemplate) (models.ExerciseTemplate, error) {
	log := logger.FromContext(ctx)

	ts := now()
	template.CreatedAt, template.UpdatedAt = ts, ts

	query, args, err := buildInsertExerciseTemplateQuery(r.db.builder, template)
	if err != nil {
		log.Err(err).Str("func", "*exerciseTemplateRepository.Create").Msg("error building insert query")
		return models.ExerciseTemplate{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		err = r.db.classify(err)
		log.Err(err).Str("func", "*exerciseTemplateRepository.Create").Msg("error inserting exercise template")
		return models.ExerciseTemplate{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return template, nil
}

func (r *exerciseTemplateRepository) Get(ctx context.Context, id, userID string) (models.ExerciseTemplate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectExerciseTemplateQuery(r.db.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*exerciseTemplateRepository.Get").Msg("error building select query")
		return models.ExerciseTemplate{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	template, err := scanExerciseTemplate(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ExerciseTemplate{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*exerciseTemplateRepository.Get").Msg("error scanning exercise template")
		return models.ExerciseTemplate{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return template, nil
}

// List returns the owner's templates ordered by name, optionally narrowed to one category.
func (r *exerciseTemplateRepository) List(ctx context.Context, userID string, filter models.ExerciseTemplateFilter) ([]models.ExerciseTemplate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExerciseTemplatesQuery(r.db.builder, userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*exerciseTemplateRepository.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*exerciseTemplateRepository.List").Msg("error querying exercise templates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	templates := make([]models.ExerciseTemplate, 0)
	for rows.Next() {
		template, err := scanExerciseTemplate(rows)
		if err != nil {
			log.Err(err).Str("func", "*exerciseTemplateRepository.List").Msg("error scanning exercise template")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		templates = append(templates, template)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*exerciseTemplateRepository.List").Msg("error iterating exercise templates")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return templates, nil
}

func (r *exerciseTemplateRepository) Update(ctx context.Context, id, userID string, patch models.ExerciseTemplatePatch) (models.ExerciseTemplate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateExerciseTemplateQuery(r.db.builder, id, userID, patch, now())
	if err != nil {
		log.Err(err).Str("func", "*exerciseTemplateRepository.Update").Msg("error building update query")
		return models.ExerciseTemplate{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execAffectingOne(ctx, r.db, "*exerciseTemplateRepository.Update", query, args); err != nil {
		return models.ExerciseTemplate{}, err
	}

	return r.Get(ctx, id, userID)
}

func (r *exerciseTemplateRepository) Delete(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExerciseTemplateQuery(r.db.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*exerciseTemplateRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, "*exerciseTemplateRepository.Delete", query, args)
}

func scanExerciseTemplate(row rowScanner) (models.ExerciseTemplate, error) {
	var t models.ExerciseTemplate
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Category, &t.Description, &t.Difficulty,
		&t.DefaultSets, &t.DefaultReps, &t.DefaultWeight, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
