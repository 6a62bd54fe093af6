package routines

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymreg/gymreg/internal/shared"
)

// Repository provides PostgreSQL backed persistence for routines.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectRoutine = `
	SELECT r.id, r.trainee_id, r.availability, r.created_at, r.updated_at,
	       t.id, t.name, t.email
	FROM routines r
	JOIN trainees t ON t.id = r.trainee_id`

func scanRoutine(row pgx.Row) (Routine, error) {
	var r Routine
	err := row.Scan(
		&r.ID, &r.TraineeID, &r.Availability, &r.CreatedAt, &r.UpdatedAt,
		&r.Trainee.ID, &r.Trainee.Name, &r.Trainee.Email,
	)
	return r, err
}

// List returns routines newest first, optionally filtered by trainee.
func (r *Repository) List(ctx context.Context, traineeID string) ([]Routine, error) {
	query := selectRoutine + ` ORDER BY r.created_at DESC`
	args := []any{}
	if traineeID != "" {
		query = selectRoutine + ` WHERE r.trainee_id = $1 ORDER BY r.created_at DESC`
		args = append(args, traineeID)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("routines: list: %w", err)
	}
	defer rows.Close()

	var result []Routine
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, fmt.Errorf("routines: scan: %w", err)
		}
		result = append(result, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("routines: rows: %w", err)
	}
	return result, nil
}

// Create inserts a routine for the trainee.
func (r *Repository) Create(ctx context.Context, traineeID string, availability json.RawMessage) (Routine, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO routines (trainee_id, availability) VALUES ($1, $2) RETURNING id`,
		traineeID, availability,
	).Scan(&id)
	if err != nil {
		return Routine{}, fmt.Errorf("routines: create: %w", err)
	}

	routine, err := scanRoutine(r.pool.QueryRow(ctx, selectRoutine+` WHERE r.id = $1`, id))
	if err != nil {
		return Routine{}, fmt.Errorf("routines: create fetch: %w", err)
	}
	return routine, nil
}

// GetByTrainee fetches the trainee's routine.
func (r *Repository) GetByTrainee(ctx context.Context, traineeID string) (Routine, error) {
	routine, err := scanRoutine(r.pool.QueryRow(ctx,
		selectRoutine+` WHERE r.trainee_id = $1 ORDER BY r.created_at LIMIT 1`, traineeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Routine{}, shared.ErrNotFound
		}
		return Routine{}, fmt.Errorf("routines: get: %w", err)
	}
	return routine, nil
}

// UpdateByTrainee replaces the availability document on the trainee's routine.
func (r *Repository) UpdateByTrainee(ctx context.Context, traineeID string, availability json.RawMessage) (Routine, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE routines SET availability = $2, updated_at = now() WHERE trainee_id = $1`,
		traineeID, availability)
	if err != nil {
		return Routine{}, fmt.Errorf("routines: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Routine{}, shared.ErrNotFound
	}
	return r.GetByTrainee(ctx, traineeID)
}

// DeleteByTrainee removes the trainee's routines.
func (r *Repository) DeleteByTrainee(ctx context.Context, traineeID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM routines WHERE trainee_id = $1`, traineeID)
	if err != nil {
		return fmt.Errorf("routines: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// TraineeExists reports whether the trainee id is known to the store.
func (r *Repository) TraineeExists(ctx context.Context, traineeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM trainees WHERE id = $1)`, traineeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("routines: trainee exists: %w", err)
	}
	return exists, nil
}
