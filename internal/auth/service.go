package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gymreg/gymreg/internal/shared"
)

// Service implements session token issuance, verification, and revocation.
type Service struct {
	repo    Repository
	tokens  *Tokens
	revoked RevocationList
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *Tokens, revoked RevocationList) *Service {
	return &Service{repo: repo, tokens: tokens, revoked: revoked}
}

// Login validates the credentials and issues a fresh session token. The
// returned profile never carries the password hash.
func (s *Service) Login(ctx context.Context, email, password string) (string, Profile, error) {
	trainee, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", Profile{}, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(trainee.PasswordHash), []byte(password)); err != nil {
		return "", Profile{}, shared.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(trainee.ID, trainee.Email)
	if err != nil {
		return "", Profile{}, err
	}
	return token, trainee.Profile(), nil
}

// Verify checks revocation before the signature so a logged-out token is
// reported as revoked rather than merely invalid.
func (s *Service) Verify(ctx context.Context, token string) (shared.Identity, error) {
	if token == "" {
		return shared.Identity{}, shared.ErrMissingToken
	}

	revoked, err := s.revoked.IsRevoked(ctx, token)
	if err != nil {
		return shared.Identity{}, fmt.Errorf("auth: verify: %w", err)
	}
	if revoked {
		return shared.Identity{}, shared.ErrRevokedToken
	}

	return s.tokens.Verify(token)
}

// Logout revokes the token for the rest of its natural lifetime. Idempotent;
// revoking an already-expired or already-revoked token succeeds.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.revoked.Revoke(ctx, token, s.tokens.RemainingValidity(token))
}

// Subject loads the current record for a verified subject, for session checks.
func (s *Service) Subject(ctx context.Context, traineeID string) (Profile, error) {
	trainee, err := s.repo.FindByID(ctx, traineeID)
	if err != nil {
		return Profile{}, err
	}
	return trainee.Profile(), nil
}
