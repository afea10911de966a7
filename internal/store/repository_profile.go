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

// profileRepository is the SQL implementation of [ProfileRepository].
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the profile. A second profile for the same user violates
// the unique user_id index and is reported as [ErrProfileAlreadyExists].
func (r *profileRepository) Create(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	ts := now()
	profile.CreatedAt, profile.UpdatedAt = ts, ts

	query, args, err := buildInsertProfileQuery(r.db.builder, profile)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Create").Msg("error building insert query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		err = r.db.classify(err)
		if errors.Is(err, ErrDuplicateKey) {
			return models.Profile{}, ErrProfileAlreadyExists
		}
		log.Err(err).Str("func", "*profileRepository.Create").Msg("error inserting profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return profile, nil
}

func (r *profileRepository) Get(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Get").Msg("error building select query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Get").Msg("error scanning profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// Update applies the non-nil fields of patch and returns the stored profile.
func (r *profileRepository) Update(ctx context.Context, userID string, patch models.ProfileInput) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(r.db.builder, userID, patch, now())
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Update").Msg("error building update query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execAffectingOne(ctx, r.db, "*profileRepository.Update", query, args); err != nil {
		return models.Profile{}, err
	}

	return r.Get(ctx, userID)
}

func (r *profileRepository) Delete(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProfileQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, "*profileRepository.Delete", query, args)
}

// execAffectingOne runs a DML statement and reports [ErrNotFound] when it
// touched no rows.
func execAffectingOne(ctx context.Context, db *DB, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		err = db.classify(err)
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Height, &p.Weight, &p.GoalWeight, &p.BirthDate,
		&p.Gender, &p.ActivityLevel, &p.FitnessGoal, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
