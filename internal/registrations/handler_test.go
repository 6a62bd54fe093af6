package registrations_test

import (
	"context"
	"encoding/json"
	"fmt"
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

	"github.com/gymreg/gymreg/internal/registrations"
	"github.com/gymreg/gymreg/internal/shared"
)

type stubRepo struct {
	trainees map[string]registrations.TraineeSummary
	store    map[string]registrations.Registration
	seq      int
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		trainees: map[string]registrations.TraineeSummary{
			"trainee-1": {ID: "trainee-1", Name: "Mari Maasikas", Email: "mari@example.com"},
		},
		store: map[string]registrations.Registration{},
	}
}

func (s *stubRepo) List(ctx context.Context) ([]registrations.Registration, error) {
	var result []registrations.Registration
	for _, g := range s.store {
		result = append(result, g)
	}
	return result, nil
}

func (s *stubRepo) Create(ctx context.Context, params registrations.CreateRegistration) (registrations.Registration, error) {
	s.seq++
	g := registrations.Registration{
		ID:           fmt.Sprintf("registration-%d", s.seq),
		EventID:      params.EventID,
		TraineeID:    params.TraineeID,
		InviteeEmail: params.InviteeEmail,
		StartTime:    params.StartTime,
		EndTime:      params.EndTime,
		Status:       params.Status,
		Trainee:      s.trainees[params.TraineeID],
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.store[g.ID] = g
	return g, nil
}

func (s *stubRepo) Get(ctx context.Context, id string) (registrations.Registration, error) {
	g, ok := s.store[id]
	if !ok {
		return registrations.Registration{}, shared.ErrNotFound
	}
	return g, nil
}

func (s *stubRepo) Update(ctx context.Context, id string, patch registrations.Patch) (registrations.Registration, error) {
	g, ok := s.store[id]
	if !ok {
		return registrations.Registration{}, shared.ErrNotFound
	}
	if patch.EventID != nil {
		g.EventID = *patch.EventID
	}
	if patch.TraineeID != nil {
		g.TraineeID = *patch.TraineeID
	}
	if patch.InviteeEmail != nil {
		g.InviteeEmail = *patch.InviteeEmail
	}
	if patch.StartTime != nil {
		g.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		g.EndTime = patch.EndTime
	}
	if patch.Status != nil {
		g.Status = *patch.Status
	}
	s.store[id] = g
	return g, nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) error {
	if _, ok := s.store[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.store, id)
	return nil
}

func (s *stubRepo) TraineeExists(ctx context.Context, traineeID string) (bool, error) {
	_, ok := s.trainees[traineeID]
	return ok, nil
}

func noAuth(next http.Handler) http.Handler { return next }

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := registrations.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), registrations.NewService(newStubRepo()), noAuth)
	r := chi.NewRouter()
	r.Route("/registrations", handler.MountRoutes)
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

func errorMessage(t *testing.T, res *http.Response) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body.Error
}

const validBody = `{"eventId":"evt-100","userId":"trainee-1","inviteeEmail":"kulaline@example.com","startTime":"2026-09-07T10:00:00Z"}`

func TestCreateRegistration(t *testing.T) {
	server := newServer(t)

	res := do(t, http.MethodPost, server.URL+"/registrations", validBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created registrations.Registration
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))
	assert.Equal(t, "evt-100", created.EventID)
	assert.Equal(t, registrations.StatusScheduled, created.Status)
	assert.Equal(t, "mari@example.com", created.Trainee.Email)
	assert.Nil(t, created.EndTime)
}

func TestCreateRegistrationValidation(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing fields", `{"eventId":"evt-100"}`, "is required"},
		{"bad invitee email", `{"eventId":"evt-100","userId":"trainee-1","inviteeEmail":"kulaline@","startTime":"2026-09-07T10:00:00Z"}`, "Invalid invitee email format"},
		{"unknown trainee", `{"eventId":"evt-100","userId":"ghost","inviteeEmail":"kulaline@example.com","startTime":"2026-09-07T10:00:00Z"}`, "Trainee not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := do(t, http.MethodPost, server.URL+"/registrations", tt.body)
			require.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.Contains(t, errorMessage(t, res), tt.message)
		})
	}
}

func TestPatchRegistration(t *testing.T) {
	server := newServer(t)

	res := do(t, http.MethodPost, server.URL+"/registrations", validBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var created registrations.Registration
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))

	res = do(t, http.MethodPatch, server.URL+"/registrations/"+created.ID, `{"status":"cancelled"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var updated registrations.Registration
	require.NoError(t, json.NewDecoder(res.Body).Decode(&updated))
	assert.Equal(t, "cancelled", updated.Status)
	assert.Equal(t, created.EventID, updated.EventID)

	res = do(t, http.MethodPatch, server.URL+"/registrations/"+created.ID, `{"eventId":"","inviteeEmail":"bad"}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	message := errorMessage(t, res)
	assert.Contains(t, message, "Event ID cannot be empty")
	assert.Contains(t, message, "Invalid invitee email format")

	res = do(t, http.MethodPatch, server.URL+"/registrations/missing", `{"status":"cancelled"}`)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	var notFound struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&notFound))
	assert.Equal(t, "Registration not found", notFound.Error)
}

func TestDeleteRegistration(t *testing.T) {
	server := newServer(t)

	res := do(t, http.MethodPost, server.URL+"/registrations", validBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var created registrations.Registration
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))

	res = do(t, http.MethodDelete, server.URL+"/registrations/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res = do(t, http.MethodDelete, server.URL+"/registrations/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
