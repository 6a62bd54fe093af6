package auth

import (
	"net/http"
	"strings"

	"github.com/gymreg/gymreg/internal/platform/httpx"
	"github.com/gymreg/gymreg/internal/shared"
)

// Middleware is a standard chi-compatible middleware constructor.
type Middleware = func(http.Handler) http.Handler

// RequireAuth verifies the bearer token on every request and injects the
// subject identity and the raw token into the request context.
func RequireAuth(service *Service) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			identity, err := service.Verify(r.Context(), token)
			if err != nil {
				httpx.RespondError(w, err)
				return
			}

			ctx := shared.ContextWithIdentity(r.Context(), identity)
			ctx = shared.ContextWithToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
