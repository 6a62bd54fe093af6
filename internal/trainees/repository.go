package trainees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymreg/gymreg/internal/shared"
)

// Repository provides PostgreSQL backed persistence for trainees.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectColumns = `id, name, email, timezone, created_at, updated_at`

// List returns one page of trainees plus the total count.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Trainee, int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM trainees ORDER BY created_at LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("trainees: list: %w", err)
	}
	defer rows.Close()

	var result []Trainee
	for rows.Next() {
		var t Trainee
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Timezone, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("trainees: scan: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("trainees: rows: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM trainees`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("trainees: count: %w", err)
	}
	return result, total, nil
}

// Create inserts a trainee with an already-hashed password.
func (r *Repository) Create(ctx context.Context, name, email, passwordHash, timezone string) (Trainee, error) {
	var t Trainee
	err := r.pool.QueryRow(ctx,
		`INSERT INTO trainees (name, email, password_hash, timezone)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 RETURNING `+selectColumns,
		name, email, passwordHash, timezone,
	).Scan(&t.ID, &t.Name, &t.Email, &t.Timezone, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Trainee{}, shared.ErrEmailTaken
		}
		return Trainee{}, fmt.Errorf("trainees: create: %w", err)
	}
	return t, nil
}

// Get fetches one trainee by id.
func (r *Repository) Get(ctx context.Context, id string) (Trainee, error) {
	var t Trainee
	err := r.pool.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM trainees WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Email, &t.Timezone, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Trainee{}, shared.ErrNotFound
		}
		return Trainee{}, fmt.Errorf("trainees: get: %w", err)
	}
	return t, nil
}

// Update applies the supplied patch slots. The Password slot must already
// be hashed by the caller.
func (r *Repository) Update(ctx context.Context, id string, patch Patch) (Trainee, error) {
	if patch.isEmpty() {
		return r.Get(ctx, id)
	}

	var sets []string
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Password != nil {
		add("password_hash", *patch.Password)
	}
	if patch.Timezone != nil {
		args = append(args, *patch.Timezone)
		sets = append(sets, fmt.Sprintf("timezone = NULLIF($%d, '')", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE trainees SET %s, updated_at = now() WHERE id = $%d RETURNING `+selectColumns,
		strings.Join(sets, ", "), len(args))

	var t Trainee
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.Name, &t.Email, &t.Timezone, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Trainee{}, shared.ErrNotFound
		}
		if isUniqueViolation(err) {
			return Trainee{}, shared.ErrEmailTaken
		}
		return Trainee{}, fmt.Errorf("trainees: update: %w", err)
	}
	return t, nil
}

// Delete removes a trainee. Routines and registrations cascade at the store.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM trainees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("trainees: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
