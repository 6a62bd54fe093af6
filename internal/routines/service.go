package routines

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrUnknownTrainee is returned when a routine references a trainee that
// does not exist. The original wire contract reports this as a 400, not 404.
var ErrUnknownTrainee = errors.New("trainee not found")

// RepositoryPort defines data access methods for routines.
type RepositoryPort interface {
	List(ctx context.Context, traineeID string) ([]Routine, error)
	Create(ctx context.Context, traineeID string, availability json.RawMessage) (Routine, error)
	GetByTrainee(ctx context.Context, traineeID string) (Routine, error)
	UpdateByTrainee(ctx context.Context, traineeID string, availability json.RawMessage) (Routine, error)
	DeleteByTrainee(ctx context.Context, traineeID string) error
	TraineeExists(ctx context.Context, traineeID string) (bool, error)
}

// Service handles routine business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns routines, optionally filtered by trainee.
func (s *Service) List(ctx context.Context, traineeID string) ([]Routine, error) {
	return s.repo.List(ctx, traineeID)
}

// Create stores an availability plan after checking the owner exists.
func (s *Service) Create(ctx context.Context, traineeID string, availability json.RawMessage) (Routine, error) {
	exists, err := s.repo.TraineeExists(ctx, traineeID)
	if err != nil {
		return Routine{}, err
	}
	if !exists {
		return Routine{}, ErrUnknownTrainee
	}
	return s.repo.Create(ctx, traineeID, availability)
}

// GetByTrainee fetches the trainee's routine.
func (s *Service) GetByTrainee(ctx context.Context, traineeID string) (Routine, error) {
	return s.repo.GetByTrainee(ctx, traineeID)
}

// UpdateByTrainee replaces the availability document.
func (s *Service) UpdateByTrainee(ctx context.Context, traineeID string, availability json.RawMessage) (Routine, error) {
	return s.repo.UpdateByTrainee(ctx, traineeID, availability)
}

// DeleteByTrainee removes the trainee's routine.
func (s *Service) DeleteByTrainee(ctx context.Context, traineeID string) error {
	return s.repo.DeleteByTrainee(ctx, traineeID)
}
