package workouts

import "context"

// RepositoryPort defines data access methods for workouts.
type RepositoryPort interface {
	List(ctx context.Context) ([]Workout, error)
	Create(ctx context.Context, params CreateWorkout) (Workout, error)
	Get(ctx context.Context, id string) (Workout, error)
	Update(ctx context.Context, id string, patch Patch) (Workout, error)
	Delete(ctx context.Context, id string) error
}

// Service handles workout business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all workouts, newest first.
func (s *Service) List(ctx context.Context) ([]Workout, error) {
	return s.repo.List(ctx)
}

// Create persists a new workout type.
func (s *Service) Create(ctx context.Context, params CreateWorkout) (Workout, error) {
	return s.repo.Create(ctx, params)
}

// Get fetches one workout.
func (s *Service) Get(ctx context.Context, id string) (Workout, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Workout, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a workout.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
