package registrations

import (
	"context"
	"errors"
)

// ErrUnknownTrainee is returned when a registration references a trainee
// that does not exist. The wire contract reports this as a 400, not 404.
var ErrUnknownTrainee = errors.New("trainee not found")

// RepositoryPort defines data access methods for registrations.
type RepositoryPort interface {
	List(ctx context.Context) ([]Registration, error)
	Create(ctx context.Context, params CreateRegistration) (Registration, error)
	Get(ctx context.Context, id string) (Registration, error)
	Update(ctx context.Context, id string, patch Patch) (Registration, error)
	Delete(ctx context.Context, id string) error
	TraineeExists(ctx context.Context, traineeID string) (bool, error)
}

// Service handles registration business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all registrations, newest first.
func (s *Service) List(ctx context.Context) ([]Registration, error) {
	return s.repo.List(ctx)
}

// Create books a registration after checking the trainee exists. A missing
// status defaults to scheduled.
func (s *Service) Create(ctx context.Context, params CreateRegistration) (Registration, error) {
	exists, err := s.repo.TraineeExists(ctx, params.TraineeID)
	if err != nil {
		return Registration{}, err
	}
	if !exists {
		return Registration{}, ErrUnknownTrainee
	}
	if params.Status == "" {
		params.Status = StatusScheduled
	}
	return s.repo.Create(ctx, params)
}

// Get fetches one registration.
func (s *Service) Get(ctx context.Context, id string) (Registration, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Registration, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a registration.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
