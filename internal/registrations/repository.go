package registrations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymreg/gymreg/internal/shared"
)

// Repository provides PostgreSQL backed persistence for registrations.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectRegistration = `
	SELECT g.id, g.event_id, g.trainee_id, g.invitee_email, g.start_time,
	       g.end_time, g.status, g.created_at, g.updated_at,
	       t.id, t.name, t.email
	FROM registrations g
	JOIN trainees t ON t.id = g.trainee_id`

func scanRegistration(row pgx.Row) (Registration, error) {
	var g Registration
	err := row.Scan(
		&g.ID, &g.EventID, &g.TraineeID, &g.InviteeEmail, &g.StartTime,
		&g.EndTime, &g.Status, &g.CreatedAt, &g.UpdatedAt,
		&g.Trainee.ID, &g.Trainee.Name, &g.Trainee.Email,
	)
	return g, err
}

// List returns all registrations, newest first.
func (r *Repository) List(ctx context.Context) ([]Registration, error) {
	rows, err := r.pool.Query(ctx, selectRegistration+` ORDER BY g.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("registrations: list: %w", err)
	}
	defer rows.Close()

	var result []Registration
	for rows.Next() {
		registration, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("registrations: scan: %w", err)
		}
		result = append(result, registration)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("registrations: rows: %w", err)
	}
	return result, nil
}

// Create inserts a registration.
func (r *Repository) Create(ctx context.Context, params CreateRegistration) (Registration, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO registrations (event_id, trainee_id, invitee_email, start_time, end_time, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		params.EventID, params.TraineeID, params.InviteeEmail, params.StartTime, params.EndTime, params.Status,
	).Scan(&id)
	if err != nil {
		return Registration{}, fmt.Errorf("registrations: create: %w", err)
	}
	return r.Get(ctx, id)
}

// Get fetches one registration by id.
func (r *Repository) Get(ctx context.Context, id string) (Registration, error) {
	registration, err := scanRegistration(r.pool.QueryRow(ctx, selectRegistration+` WHERE g.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Registration{}, shared.ErrNotFound
		}
		return Registration{}, fmt.Errorf("registrations: get: %w", err)
	}
	return registration, nil
}

// Update applies the supplied patch slots.
func (r *Repository) Update(ctx context.Context, id string, patch Patch) (Registration, error) {
	if patch.isEmpty() {
		return r.Get(ctx, id)
	}

	var sets []string
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.EventID != nil {
		add("event_id", *patch.EventID)
	}
	if patch.TraineeID != nil {
		add("trainee_id", *patch.TraineeID)
	}
	if patch.InviteeEmail != nil {
		add("invitee_email", *patch.InviteeEmail)
	}
	if patch.StartTime != nil {
		add("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		add("end_time", *patch.EndTime)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE registrations SET %s, updated_at = now() WHERE id = $%d RETURNING id`,
		strings.Join(sets, ", "), len(args))

	var updatedID string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Registration{}, shared.ErrNotFound
		}
		return Registration{}, fmt.Errorf("registrations: update: %w", err)
	}
	return r.Get(ctx, updatedID)
}

// Delete removes a registration.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("registrations: delete: %w", err)
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
		return false, fmt.Errorf("registrations: trainee exists: %w", err)
	}
	return exists, nil
}
