package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gymreg/gymreg/internal/platform/httpx"
	"github.com/gymreg/gymreg/internal/shared"
	"github.com/gymreg/gymreg/internal/validation"
)

// LoginObserver receives login outcomes, "success" or "failure".
type LoginObserver interface {
	ObserveLogin(result string)
}

// Handler wires the /sessions endpoints: login, logout, and session check.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	auth     Middleware
	observer LoginObserver
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, auth: RequireAuth(service)}
}

// ObserveLogins registers an observer notified about login outcomes.
func (h *Handler) ObserveLogins(observer LoginObserver) {
	h.observer = observer
}

// MountRoutes registers session routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.createSession)
	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Delete("/", h.destroySession)
		r.Get("/", h.checkSession)
	})
}

type loginResponse struct {
	Token   string  `json:"token"`
	Trainee Profile `json:"trainee"`
}

type sessionResponse struct {
	Authenticated bool    `json:"authenticated"`
	Trainee       Profile `json:"trainee"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fields, errs := validation.TrimFields(body, "email", "password")
	if len(errs) > 0 {
		httpx.Error(w, http.StatusBadRequest, strings.Join(errs, ", "))
		return
	}

	email := validation.String(fields, "email")
	if !validation.Email(email) {
		httpx.Error(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	token, trainee, err := h.service.Login(r.Context(), email, validation.String(fields, "password"))
	if err != nil {
		if h.observer != nil {
			h.observer.ObserveLogin("failure")
		}
		if !errors.Is(err, shared.ErrInvalidCredentials) {
			h.logger.Error("login", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	if h.observer != nil {
		h.observer.ObserveLogin("success")
	}
	httpx.JSON(w, http.StatusOK, loginResponse{Token: token, Trainee: trainee})
}

func (h *Handler) destroySession(w http.ResponseWriter, r *http.Request) {
	token := shared.TokenFromContext(r.Context())
	if err := h.service.Logout(r.Context(), token); err != nil {
		h.logger.Error("logout", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, messageResponse{Message: "Successfully logged out"})
}

func (h *Handler) checkSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrMissingToken)
		return
	}

	trainee, err := h.service.Subject(r.Context(), identity.TraineeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Trainee not found")
			return
		}
		h.logger.Error("check session", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, sessionResponse{Authenticated: true, Trainee: trainee})
}
