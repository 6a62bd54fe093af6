package routines_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymreg/gymreg/internal/routines"
	"github.com/gymreg/gymreg/internal/shared"
)

type stubRepo struct {
	trainees map[string]routines.TraineeSummary
	store    map[string]routines.Routine // keyed by trainee id
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		trainees: map[string]routines.TraineeSummary{
			"trainee-1": {ID: "trainee-1", Name: "Mari Maasikas", Email: "mari@example.com"},
		},
		store: map[string]routines.Routine{},
	}
}

func (s *stubRepo) List(ctx context.Context, traineeID string) ([]routines.Routine, error) {
	var result []routines.Routine
	for owner, routine := range s.store {
		if traineeID == "" || owner == traineeID {
			result = append(result, routine)
		}
	}
	return result, nil
}

func (s *stubRepo) Create(ctx context.Context, traineeID string, availability json.RawMessage) (routines.Routine, error) {
	routine := routines.Routine{
		ID:           "routine-" + traineeID,
		TraineeID:    traineeID,
		Availability: availability,
		Trainee:      s.trainees[traineeID],
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.store[traineeID] = routine
	return routine, nil
}

func (s *stubRepo) GetByTrainee(ctx context.Context, traineeID string) (routines.Routine, error) {
	routine, ok := s.store[traineeID]
	if !ok {
		return routines.Routine{}, shared.ErrNotFound
	}
	return routine, nil
}

func (s *stubRepo) UpdateByTrainee(ctx context.Context, traineeID string, availability json.RawMessage) (routines.Routine, error) {
	routine, ok := s.store[traineeID]
	if !ok {
		return routines.Routine{}, shared.ErrNotFound
	}
	routine.Availability = availability
	s.store[traineeID] = routine
	return routine, nil
}

func (s *stubRepo) DeleteByTrainee(ctx context.Context, traineeID string) error {
	if _, ok := s.store[traineeID]; !ok {
		return shared.ErrNotFound
	}
	delete(s.store, traineeID)
	return nil
}

func (s *stubRepo) TraineeExists(ctx context.Context, traineeID string) (bool, error) {
	_, ok := s.trainees[traineeID]
	return ok, nil
}

func noAuth(next http.Handler) http.Handler { return next }

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := routines.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), routines.NewService(newStubRepo()), noAuth)
	r := chi.NewRouter()
	r.Route("/routines", handler.MountRoutes)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

const availability = `{"monday":["09:00-11:00"],"wednesday":["18:00-20:00"]}`

func TestCreateRoutine(t *testing.T) {
	server := newServer(t)

	res := do(t, http.MethodPost, server.URL+"/routines",
		`{"userId":"trainee-1","availability":`+availability+`}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created routines.Routine
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))
	assert.Equal(t, "trainee-1", created.TraineeID)
	assert.Equal(t, "mari@example.com", created.Trainee.Email)
	assert.JSONEq(t, availability, string(created.Availability))
}

func TestCreateRoutineValidation(t *testing.T) {
	server := newServer(t)

	res := do(t, http.MethodPost, server.URL+"/routines", `{"availability":`+availability+`}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = do(t, http.MethodPost, server.URL+"/routines", `{"userId":"trainee-1"}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Falsy availability documents count as absent.
	for _, falsy := range []string{"null", `""`, "false", "0"} {
		res = do(t, http.MethodPost, server.URL+"/routines",
			`{"userId":"trainee-1","availability":`+falsy+`}`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "availability %s", falsy)
	}

	// Unknown trainee reports 400, not 404.
	res = do(t, http.MethodPost, server.URL+"/routines",
		`{"userId":"ghost","availability":`+availability+`}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "Trainee not found", body.Error)
}

func TestRoutineByTraineeLifecycle(t *testing.T) {
	server := newServer(t)

	res := do(t, http.MethodGet, server.URL+"/routines/trainee/trainee-1", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	var missing struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&missing))
	assert.Equal(t, "Routine not found", missing.Error)

	res = do(t, http.MethodPost, server.URL+"/routines",
		`{"userId":"trainee-1","availability":`+availability+`}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res = do(t, http.MethodGet, server.URL+"/routines/trainee/trainee-1", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	updated := `{"friday":["07:00-08:00"]}`
	res = do(t, http.MethodPatch, server.URL+"/routines/trainee/trainee-1",
		`{"availability":`+updated+`}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var routine routines.Routine
	require.NoError(t, json.NewDecoder(res.Body).Decode(&routine))
	assert.JSONEq(t, updated, string(routine.Availability))

	res = do(t, http.MethodPatch, server.URL+"/routines/trainee/trainee-1", `{}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = do(t, http.MethodDelete, server.URL+"/routines/trainee/trainee-1", "")
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res = do(t, http.MethodDelete, server.URL+"/routines/trainee/trainee-1", "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListRoutinesFilter(t *testing.T) {
	server := newServer(t)

	res := do(t, http.MethodGet, server.URL+"/routines?traineeId=trainee-1", "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res = do(t, http.MethodGet, server.URL+"/routines", "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
