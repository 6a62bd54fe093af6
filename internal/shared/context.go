package shared

import "context"

// Identity is the authenticated subject extracted from a verified token.
type Identity struct {
	TraineeID string
	Email     string
}

type identityContextKey struct{}
type tokenContextKey struct{}

// ContextWithIdentity stores the authenticated identity in context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext extracts the authenticated identity from context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}

// ContextWithToken stores the raw bearer token in context so logout can
// revoke the exact string that was presented.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext extracts the raw bearer token from context.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}
