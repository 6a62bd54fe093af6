package registrations

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gymreg/gymreg/internal/auth"
	"github.com/gymreg/gymreg/internal/platform/httpx"
	"github.com/gymreg/gymreg/internal/validation"
)

// Handler manages registration endpoints.
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

// MountRoutes registers registration routes. All of them require a session
// token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(h.auth)
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{registrationID}", h.get)
	r.Patch("/{registrationID}", h.update)
	r.Delete("/{registrationID}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list registrations", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if result == nil {
		result = []Registration{}
	}
	httpx.JSON(w, http.StatusOK, result)
}

type createRequest struct {
	EventID      string     `json:"eventId" validate:"required"`
	TraineeID    string     `json:"userId" validate:"required"`
	InviteeEmail string     `json:"inviteeEmail" validate:"required"`
	StartTime    *time.Time `json:"startTime" validate:"required"`
	EndTime      *time.Time `json:"endTime"`
	Status       string     `json:"status"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	req.EventID = strings.TrimSpace(req.EventID)
	req.TraineeID = strings.TrimSpace(req.TraineeID)
	req.InviteeEmail = strings.TrimSpace(req.InviteeEmail)
	req.Status = strings.TrimSpace(req.Status)

	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, requiredMessages(err))
		return
	}
	if !validation.Email(req.InviteeEmail) {
		httpx.Error(w, http.StatusBadRequest, "Invalid invitee email format")
		return
	}

	registration, err := h.service.Create(r.Context(), CreateRegistration{
		EventID:      req.EventID,
		TraineeID:    req.TraineeID,
		InviteeEmail: req.InviteeEmail,
		StartTime:    *req.StartTime,
		EndTime:      req.EndTime,
		Status:       req.Status,
	})
	if err != nil {
		if errors.Is(err, ErrUnknownTrainee) {
			httpx.Error(w, http.StatusBadRequest, "Trainee not found")
			return
		}
		h.logger.Error("create registration", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, registration)
}

func requiredMessages(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "Invalid request body"
	}
	fields := map[string]string{
		"EventID":      "eventId",
		"TraineeID":    "userId",
		"InviteeEmail": "inviteeEmail",
		"StartTime":    "startTime",
	}
	var messages []string
	for _, fieldErr := range fieldErrs {
		if name, ok := fields[fieldErr.Field()]; ok {
			messages = append(messages, name+" is required and cannot be empty")
		}
	}
	return strings.Join(messages, ", ")
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	registration, err := h.service.Get(r.Context(), chi.URLParam(r, "registrationID"))
	if err != nil {
		httpx.RespondResourceError(w, err, "Registration not found")
		return
	}
	httpx.JSON(w, http.StatusOK, registration)
}

type patchRequest struct {
	EventID      *string    `json:"eventId"`
	TraineeID    *string    `json:"userId"`
	InviteeEmail *string    `json:"inviteeEmail"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	Status       *string    `json:"status"`
}

func (req *patchRequest) patch() (Patch, []string) {
	var patch Patch
	var errs []string

	if req.EventID != nil {
		eventID := strings.TrimSpace(*req.EventID)
		if eventID == "" {
			errs = append(errs, "Event ID cannot be empty")
		} else {
			patch.EventID = &eventID
		}
	}
	if req.TraineeID != nil {
		traineeID := strings.TrimSpace(*req.TraineeID)
		if traineeID == "" {
			errs = append(errs, "User ID cannot be empty")
		} else {
			patch.TraineeID = &traineeID
		}
	}
	if req.InviteeEmail != nil {
		email := strings.TrimSpace(*req.InviteeEmail)
		switch {
		case email == "":
			errs = append(errs, "Invitee email cannot be empty")
		case !validation.Email(email):
			errs = append(errs, "Invalid invitee email format")
		default:
			patch.InviteeEmail = &email
		}
	}
	patch.StartTime = req.StartTime
	patch.EndTime = req.EndTime
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		patch.Status = &status
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

	registration, err := h.service.Update(r.Context(), chi.URLParam(r, "registrationID"), patch)
	if err != nil {
		httpx.RespondResourceError(w, err, "Registration not found")
		return
	}
	httpx.JSON(w, http.StatusOK, registration)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "registrationID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}
