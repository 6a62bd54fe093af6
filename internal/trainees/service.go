package trainees

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gymreg/gymreg/internal/shared"
)

// RepositoryPort defines data access methods for trainees.
type RepositoryPort interface {
	List(ctx context.Context, limit, offset int) ([]Trainee, int, error)
	Create(ctx context.Context, name, email, passwordHash, timezone string) (Trainee, error)
	Get(ctx context.Context, id string) (Trainee, error)
	Update(ctx context.Context, id string, patch Patch) (Trainee, error)
	Delete(ctx context.Context, id string) error
}

// Service handles trainee business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns one page of trainees with pagination metadata.
func (s *Service) List(ctx context.Context, page, pageSize int) ([]Trainee, shared.Pagination, error) {
	p := shared.NewPagination(page, pageSize, 0)
	result, total, err := s.repo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		return nil, shared.Pagination{}, err
	}
	return result, shared.NewPagination(p.Page, p.PageSize, total), nil
}

// Create hashes the password and persists the trainee.
func (s *Service) Create(ctx context.Context, params CreateTrainee) (Trainee, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return Trainee{}, fmt.Errorf("trainees: hash password: %w", err)
	}
	return s.repo.Create(ctx, params.Name, params.Email, string(hashed), params.Timezone)
}

// Get fetches one trainee.
func (s *Service) Get(ctx context.Context, id string) (Trainee, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial update, hashing a supplied password slot first.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Trainee, error) {
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return Trainee{}, fmt.Errorf("trainees: hash password: %w", err)
		}
		h := string(hashed)
		patch.Password = &h
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a trainee.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
