package trail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides database operations for trail records.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// trailColumns is the full list of columns used in SELECT and RETURNING clauses.
const trailColumns = `trail_id, name, description, difficulty, length,
	trail_type, duration, owner_email, latitude, longitude`

// scanTrail scans a single trail row into a Trail struct.
func scanTrail(row pgx.Row) (*Trail, error) {
	var t Trail
	err := row.Scan(
		&t.TrailID,
		&t.Name,
		&t.Description,
		&t.Difficulty,
		&t.Length,
		&t.TrailType,
		&t.Duration,
		&t.OwnerEmail,
		&t.Latitude,
		&t.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all trail records.
func (s *Store) List(ctx context.Context) ([]*Trail, error) {
	query := fmt.Sprintf(`SELECT %s FROM cw2.trail`, trailColumns)
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing trails: %w", err)
	}
	defer rows.Close()

	var trails []*Trail
	for rows.Next() {
		t, err := scanTrail(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning trail row: %w", err)
		}
		trails = append(trails, t)
	}
	return trails, rows.Err()
}

// GetByID retrieves a trail by its primary key.
func (s *Store) GetByID(ctx context.Context, id string) (*Trail, error) {
	query := fmt.Sprintf(`SELECT %s FROM cw2.trail WHERE trail_id = $1`, trailColumns)
	return scanTrail(s.pool.QueryRow(ctx, query, id))
}

// Create inserts a new trail and returns the full row.
func (s *Store) Create(ctx context.Context, input CreateTrailInput) (*Trail, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`INSERT INTO cw2.trail
		(trail_id, name, description, difficulty, length,
		 trail_type, duration, owner_email, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, trailColumns)

	row := s.pool.QueryRow(ctx, query,
		input.TrailID,
		input.Name,
		input.Description,
		input.Difficulty,
		input.Length,
		input.TrailType,
		input.Duration,
		input.OwnerEmail,
		input.Latitude,
		input.Longitude,
	)
	return scanTrail(row)
}

// Update performs a partial update on the trail with the given id. Only the
// non-nil fields of the input are written. Returns pgx.ErrNoRows if no trail
// matches the id.
func (s *Store) Update(ctx context.Context, id string, in UpdateTrailInput) (*Trail, error) {
	var setClauses []string
	var args []any
	argIdx := 1

	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if in.Name != nil {
		set("name", *in.Name)
	}
	if in.Description != nil {
		set("description", *in.Description)
	}
	if in.Difficulty != nil {
		set("difficulty", *in.Difficulty)
	}
	if in.Length != nil {
		set("length", *in.Length)
	}
	if in.TrailType != nil {
		set("trail_type", *in.TrailType)
	}
	if in.Duration != nil {
		set("duration", *in.Duration)
	}
	if in.OwnerEmail != nil {
		set("owner_email", *in.OwnerEmail)
	}
	if in.Latitude != nil {
		set("latitude", *in.Latitude)
	}
	if in.Longitude != nil {
		set("longitude", *in.Longitude)
	}

	if len(setClauses) == 0 {
		return s.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE cw2.trail SET %s WHERE trail_id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), argIdx, trailColumns,
	)

	return scanTrail(s.pool.QueryRow(ctx, query, args...))
}

// Delete removes a trail by id. Returns pgx.ErrNoRows if no trail matches.
func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM cw2.trail WHERE trail_id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting trail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// IsConstraintViolation reports whether err is a Postgres constraint
// violation that should surface as an unprocessable payload: not-null,
// unique, check, or value-too-long.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "23502", "23505", "23514", "22001":
		return true
	}
	return false
}
