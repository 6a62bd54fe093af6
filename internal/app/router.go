package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/gymreg/gymreg/internal/auth"
	"github.com/gymreg/gymreg/internal/observability"
	"github.com/gymreg/gymreg/internal/registrations"
	"github.com/gymreg/gymreg/internal/routines"
	"github.com/gymreg/gymreg/internal/trainees"
	"github.com/gymreg/gymreg/internal/workouts"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger              *slog.Logger
	Config              *Config
	SessionHandler      *auth.Handler
	TraineeHandler      *trainees.Handler
	WorkoutHandler      *workouts.Handler
	RoutineHandler      *routines.Handler
	RegistrationHandler *registrations.Handler
	Metrics             *observability.Metrics
}

// NewRouter constructs the chi.Router for the registration API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Gym registration API"}`))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/sessions", params.SessionHandler.MountRoutes)
	r.Route("/trainees", params.TraineeHandler.MountRoutes)
	r.Route("/workouts", params.WorkoutHandler.MountRoutes)
	r.Route("/routines", params.RoutineHandler.MountRoutes)
	r.Route("/registrations", params.RegistrationHandler.MountRoutes)

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
