// Package db provides PostgreSQL-backed storage for user profiles.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/internmatch/internal/types"
)

// ErrProfileNotFound indicates no profile row exists for the user.
var ErrProfileNotFound = errors.New("profile not found")

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// GetProfile fetches the profile record for a user. NULL columns come back
// as empty strings so the ranking engine sees its documented defaults.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	var profile types.UserProfile
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(skills, ''),
		        COALESCE(qualification, ''),
		        COALESCE(area_of_interest, ''),
		        COALESCE(prior_internship, '')
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.Skills, &profile.Qualification, &profile.AreaOfInterest, &profile.PriorInternship)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpsertProfile creates or replaces the profile record for a user.
func (db *DB) UpsertProfile(ctx context.Context, userID uuid.UUID, profile types.UserProfile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, skills, qualification, area_of_interest, prior_internship)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET skills = $2, qualification = $3, area_of_interest = $4,
		     prior_internship = $5, updated_at = NOW()`,
		userID, profile.Skills, profile.Qualification, profile.AreaOfInterest, profile.PriorInternship,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
