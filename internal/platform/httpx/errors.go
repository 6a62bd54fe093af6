package httpx

import (
	"errors"
	"net/http"

	"github.com/gymreg/gymreg/internal/shared"
)

// RespondError maps domain errors to HTTP responses. Unexpected errors
// surface as a generic 500 without detail leakage.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, shared.ErrEmailTaken):
		Error(w, http.StatusBadRequest, "Email is already in use")
	case errors.Is(err, shared.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, shared.ErrMissingToken):
		Error(w, http.StatusUnauthorized, "Authorization token missing")
	case errors.Is(err, shared.ErrRevokedToken):
		Error(w, http.StatusUnauthorized, "Token is revoked")
	case errors.Is(err, shared.ErrInvalidToken):
		Error(w, http.StatusUnauthorized, "Invalid token")
	default:
		Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// RespondResourceError behaves like RespondError but reports not-found with
// a resource-specific message, e.g. "Workout not found".
func RespondResourceError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, shared.ErrNotFound) {
		Error(w, http.StatusNotFound, notFound)
		return
	}
	RespondError(w, err)
}
