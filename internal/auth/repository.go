package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymreg/gymreg/internal/shared"
)

// Repository defines credential store access for the auth module.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Trainee, error)
	FindByID(ctx context.Context, id string) (*Trainee, error)
}

// PGRepository implements Repository against the trainees table.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const traineeColumns = `id, name, email, password_hash, timezone, created_at, updated_at`

// FindByEmail fetches a credential record by email.
func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*Trainee, error) {
	return r.findOne(ctx, `SELECT `+traineeColumns+` FROM trainees WHERE email = $1`, email)
}

// FindByID fetches a credential record by id.
func (r *PGRepository) FindByID(ctx context.Context, id string) (*Trainee, error) {
	return r.findOne(ctx, `SELECT `+traineeColumns+` FROM trainees WHERE id = $1`, id)
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg any) (*Trainee, error) {
	var t Trainee
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&t.ID, &t.Name, &t.Email, &t.PasswordHash, &t.Timezone, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("auth: find trainee: %w", err)
	}
	return &t, nil
}

var _ Repository = (*PGRepository)(nil)
