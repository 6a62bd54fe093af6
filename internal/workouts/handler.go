package workouts

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gymreg/gymreg/internal/auth"
	"github.com/gymreg/gymreg/internal/platform/httpx"
)

// Handler manages workout endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	auth      auth.Middleware
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authMW auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, auth: authMW, validator: validator.New()}
}

// MountRoutes registers workout routes. All of them require a session token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(h.auth)
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{workoutID}", h.get)
	r.Patch("/{workoutID}", h.update)
	r.Delete("/{workoutID}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list workouts", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if result == nil {
		result = []Workout{}
	}
	httpx.JSON(w, http.StatusOK, result)
}

type createRequest struct {
	Name        string `json:"name" validate:"required"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Color = strings.TrimSpace(req.Color)

	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, createMessages(err))
		return
	}

	workout, err := h.service.Create(r.Context(), CreateWorkout{
		Name:        req.Name,
		Duration:    req.Duration,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		h.logger.Error("create workout", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, workout)
}

func createMessages(err error) string {
	var messages []string
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "Invalid request body"
	}
	for _, fieldErr := range fieldErrs {
		switch fieldErr.Field() {
		case "Name":
			messages = append(messages, "name is required and cannot be empty")
		case "Duration":
			messages = append(messages, "Duration must be a positive number")
		}
	}
	return strings.Join(messages, ", ")
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	workout, err := h.service.Get(r.Context(), chi.URLParam(r, "workoutID"))
	if err != nil {
		httpx.RespondResourceError(w, err, "Workout not found")
		return
	}
	httpx.JSON(w, http.StatusOK, workout)
}

type patchRequest struct {
	Name        *string `json:"name"`
	Duration    *int    `json:"duration"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

func (req *patchRequest) patch() (Patch, []string) {
	var patch Patch
	var errs []string

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			errs = append(errs, "Name cannot be empty")
		} else {
			patch.Name = &name
		}
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			errs = append(errs, "Duration must be a positive number")
		} else {
			patch.Duration = req.Duration
		}
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		patch.Description = &description
	}
	if req.Color != nil {
		color := strings.TrimSpace(*req.Color)
		patch.Color = &color
	}

	return patch, errs
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req patchRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	patch, errs := req.patch()
	if len(errs) > 0 {
		httpx.Error(w, http.StatusBadRequest, strings.Join(errs, ", "))
		return
	}

	workout, err := h.service.Update(r.Context(), chi.URLParam(r, "workoutID"), patch)
	if err != nil {
		httpx.RespondResourceError(w, err, "Workout not found")
		return
	}
	httpx.JSON(w, http.StatusOK, workout)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "workoutID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}
