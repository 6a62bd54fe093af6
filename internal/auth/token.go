package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gymreg/gymreg/internal/shared"
)

// Claims combines the standard claims with the subject's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Tokens signs and verifies session tokens. Tokens are stateless: the
// subject and expiry travel inside the signed payload, so verification
// needs no datastore lookup.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens creates a token codec with the given signing secret and lifetime.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the configured token lifetime.
func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

// Issue signs a fresh token for the subject. The jti claim carries a random
// UUID so two logins in the same second still produce distinct tokens.
func (t *Tokens) Issue(traineeID, email string) (string, error) {
	now := t.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   traineeID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the embedded
// subject identity. Decoding is strict: each signed payload has exactly one
// accepted string form, the one the revocation list keys on.
func (t *Tokens) Verify(tokenStr string) (shared.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithStrictDecoding(),
	)
	if err != nil || !token.Valid {
		return shared.Identity{}, shared.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return shared.Identity{}, shared.ErrInvalidToken
	}
	return shared.Identity{TraineeID: claims.Subject, Email: claims.Email}, nil
}

// RemainingValidity reports how long the token would stay valid if it were
// not revoked. Tokens that no longer parse get the full configured lifetime.
func (t *Tokens) RemainingValidity(tokenStr string) time.Duration {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation(), jwt.WithStrictDecoding())
	claims := &Claims{}
	if _, err := parser.ParseWithClaims(tokenStr, claims, t.keyFunc); err != nil || claims.ExpiresAt == nil {
		return t.ttl
	}
	return claims.ExpiresAt.Time.Sub(t.now())
}

func (t *Tokens) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return t.secret, nil
}
