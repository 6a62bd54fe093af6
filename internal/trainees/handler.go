package trainees

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gymreg/gymreg/internal/auth"
	"github.com/gymreg/gymreg/internal/platform/httpx"
	"github.com/gymreg/gymreg/internal/shared"
	"github.com/gymreg/gymreg/internal/validation"
)

// Handler manages trainee endpoints. Signup stays open; everything else
// requires a valid session token.
type Handler struct {
	logger  *slog.Logger
	service *Service
	auth    auth.Middleware
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authMW auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, auth: authMW}
}

// MountRoutes registers trainee routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.list)
		r.Get("/{traineeID}", h.get)
		r.Patch("/{traineeID}", h.update)
		r.Delete("/{traineeID}", h.remove)
	})
}

type listResponse struct {
	Data       []Trainee         `json:"data"`
	Pagination shared.Pagination `json:"pagination"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	result, pagination, err := h.service.List(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("list trainees", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if result == nil {
		result = []Trainee{}
	}
	httpx.JSON(w, http.StatusOK, listResponse{Data: result, Pagination: pagination})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fields, errs := validation.TrimFields(body, "name", "email", "password")
	if len(errs) > 0 {
		httpx.Error(w, http.StatusBadRequest, strings.Join(errs, ", "))
		return
	}

	email := validation.String(fields, "email")
	if !validation.Email(email) {
		httpx.Error(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	if result := validation.Password(validation.String(fields, "password")); !result.Valid {
		httpx.Error(w, http.StatusBadRequest, result.Message)
		return
	}

	trainee, err := h.service.Create(r.Context(), CreateTrainee{
		Name:     validation.String(fields, "name"),
		Email:    email,
		Password: validation.String(fields, "password"),
		Timezone: validation.String(fields, "timezone"),
	})
	if err != nil {
		if !errors.Is(err, shared.ErrEmailTaken) {
			h.logger.Error("create trainee", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, trainee)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	trainee, err := h.service.Get(r.Context(), chi.URLParam(r, "traineeID"))
	if err != nil {
		httpx.RespondResourceError(w, err, "Trainee not found")
		return
	}
	httpx.JSON(w, http.StatusOK, trainee)
}

type patchRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Timezone *string `json:"timezone"`
}

// patch validates each supplied slot independently; fields left out of the
// body stay untouched.
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
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		switch {
		case email == "":
			errs = append(errs, "Email cannot be empty")
		case !validation.Email(email):
			errs = append(errs, "Invalid email format")
		default:
			patch.Email = &email
		}
	}
	if req.Password != nil {
		if result := validation.Password(*req.Password); !result.Valid {
			errs = append(errs, result.Message)
		} else {
			patch.Password = req.Password
		}
	}
	if req.Timezone != nil {
		timezone := strings.TrimSpace(*req.Timezone)
		patch.Timezone = &timezone
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

	trainee, err := h.service.Update(r.Context(), chi.URLParam(r, "traineeID"), patch)
	if err != nil {
		httpx.RespondResourceError(w, err, "Trainee not found")
		return
	}
	httpx.JSON(w, http.StatusOK, trainee)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "traineeID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}
