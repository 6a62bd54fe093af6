package shared

import "errors"

var (
	// ErrNotFound indicates a referenced resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken indicates a trainee email uniqueness violation.
	ErrEmailTaken = errors.New("email is already in use")
	// ErrMissingToken occurs when a protected request carries no bearer token.
	ErrMissingToken = errors.New("authorization token missing")
	// ErrRevokedToken occurs when the presented token was revoked by logout.
	ErrRevokedToken = errors.New("token is revoked")
	// ErrInvalidToken occurs when a token fails signature or expiry checks.
	ErrInvalidToken = errors.New("invalid token")
)
