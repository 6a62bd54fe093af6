package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymreg/gymreg/internal/shared"
)

// Repository provides PostgreSQL backed persistence for workouts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectColumns = `id, name, duration_minutes, description, color, created_at, updated_at`

// List returns all workouts, newest first.
func (r *Repository) List(ctx context.Context) ([]Workout, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM workouts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("workouts: list: %w", err)
	}
	defer rows.Close()

	var result []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.Name, &w.Duration, &w.Description, &w.Color, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("workouts: scan: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workouts: rows: %w", err)
	}
	return result, nil
}

// Create inserts a workout.
func (r *Repository) Create(ctx context.Context, params CreateWorkout) (Workout, error) {
	var w Workout
	err := r.pool.QueryRow(ctx,
		`INSERT INTO workouts (name, duration_minutes, description, color)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		 RETURNING `+selectColumns,
		params.Name, params.Duration, params.Description, params.Color,
	).Scan(&w.ID, &w.Name, &w.Duration, &w.Description, &w.Color, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return Workout{}, fmt.Errorf("workouts: create: %w", err)
	}
	return w, nil
}

// Get fetches one workout by id.
func (r *Repository) Get(ctx context.Context, id string) (Workout, error) {
	var w Workout
	err := r.pool.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM workouts WHERE id = $1`, id,
	).Scan(&w.ID, &w.Name, &w.Duration, &w.Description, &w.Color, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Workout{}, shared.ErrNotFound
		}
		return Workout{}, fmt.Errorf("workouts: get: %w", err)
	}
	return w, nil
}

// Update applies the supplied patch slots.
func (r *Repository) Update(ctx context.Context, id string, patch Patch) (Workout, error) {
	if patch.isEmpty() {
		return r.Get(ctx, id)
	}

	var sets []string
	args := []any{}
	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Duration != nil {
		args = append(args, *patch.Duration)
		sets = append(sets, fmt.Sprintf("duration_minutes = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description = NULLIF($%d, '')", len(args)))
	}
	if patch.Color != nil {
		args = append(args, *patch.Color)
		sets = append(sets, fmt.Sprintf("color = NULLIF($%d, '')", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE workouts SET %s, updated_at = now() WHERE id = $%d RETURNING `+selectColumns,
		strings.Join(sets, ", "), len(args))

	var w Workout
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&w.ID, &w.Name, &w.Duration, &w.Description, &w.Color, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Workout{}, shared.ErrNotFound
		}
		return Workout{}, fmt.Errorf("workouts: update: %w", err)
	}
	return w, nil
}

// Delete removes a workout.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("workouts: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
