package routines

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gymreg/gymreg/internal/auth"
	"github.com/gymreg/gymreg/internal/platform/httpx"
)

// Handler manages routine endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	auth    auth.Middleware
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authMW auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, auth: authMW}
}

// MountRoutes registers routine routes. All of them require a session token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(h.auth)
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/trainee/{traineeID}", h.getByTrainee)
	r.Patch("/trainee/{traineeID}", h.updateByTrainee)
	r.Delete("/trainee/{traineeID}", h.deleteByTrainee)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	traineeID := strings.TrimSpace(r.URL.Query().Get("traineeId"))

	result, err := h.service.List(r.Context(), traineeID)
	if err != nil {
		h.logger.Error("list routines", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if traineeID != "" && len(result) == 0 {
		httpx.Error(w, http.StatusNotFound, "No routines found for the given trainee ID")
		return
	}
	if result == nil {
		result = []Routine{}
	}
	httpx.JSON(w, http.StatusOK, result)
}

type createRequest struct {
	TraineeID    string          `json:"userId"`
	Availability json.RawMessage `json:"availability"`
}

// availabilityMissing treats falsy JSON documents (null, "", false, 0) the
// same as an absent field.
func availabilityMissing(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", `""`, "false", "0":
		return true
	}
	return false
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	req.TraineeID = strings.TrimSpace(req.TraineeID)

	if req.TraineeID == "" {
		httpx.Error(w, http.StatusBadRequest, "userId is required and cannot be empty")
		return
	}
	if availabilityMissing(req.Availability) {
		httpx.Error(w, http.StatusBadRequest, "availability is required")
		return
	}

	routine, err := h.service.Create(r.Context(), req.TraineeID, req.Availability)
	if err != nil {
		if errors.Is(err, ErrUnknownTrainee) {
			httpx.Error(w, http.StatusBadRequest, "Trainee not found")
			return
		}
		h.logger.Error("create routine", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, routine)
}

func (h *Handler) getByTrainee(w http.ResponseWriter, r *http.Request) {
	routine, err := h.service.GetByTrainee(r.Context(), chi.URLParam(r, "traineeID"))
	if err != nil {
		httpx.RespondResourceError(w, err, "Routine not found")
		return
	}
	httpx.JSON(w, http.StatusOK, routine)
}

type updateRequest struct {
	Availability json.RawMessage `json:"availability"`
}

func (h *Handler) updateByTrainee(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if availabilityMissing(req.Availability) {
		httpx.Error(w, http.StatusBadRequest, "availability is required")
		return
	}

	routine, err := h.service.UpdateByTrainee(r.Context(), chi.URLParam(r, "traineeID"), req.Availability)
	if err != nil {
		httpx.RespondResourceError(w, err, "Routine not found")
		return
	}
	httpx.JSON(w, http.StatusOK, routine)
}

func (h *Handler) deleteByTrainee(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteByTrainee(r.Context(), chi.URLParam(r, "traineeID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}
