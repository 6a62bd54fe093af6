package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revocation entries live only as long as the token they shadow; an expired
// token fails signature verification anyway, so the entry can lapse with it.
// A floor keeps Revoke observable even for already-expired tokens.
const minRevocationTTL = time.Minute

// RevocationList records tokens explicitly invalidated before their natural
// expiry. Revoke is idempotent and always succeeds; membership is checked on
// every verification.
type RevocationList interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// MemoryRevocationList is a mutex-guarded in-process list, safe for
// concurrent Revoke/Verify from parallel request handlers.
type MemoryRevocationList struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationList creates an empty in-memory revocation list.
func NewMemoryRevocationList() *MemoryRevocationList {
	return &MemoryRevocationList{entries: make(map[string]time.Time), now: time.Now}
}

// Revoke records the token until its remaining validity lapses. Lapsed
// entries are swept on the way through so the list stays bounded.
func (l *MemoryRevocationList) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for entry, expiry := range l.entries {
		if now.After(expiry) {
			delete(l.entries, entry)
		}
	}
	l.entries[token] = now.Add(ttl)
	return nil
}

// IsRevoked reports whether the token is on the list.
func (l *MemoryRevocationList) IsRevoked(_ context.Context, token string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	expiry, ok := l.entries[token]
	if !ok {
		return false, nil
	}
	if l.now().After(expiry) {
		delete(l.entries, token)
		return false, nil
	}
	return true, nil
}

// RedisRevocationList keeps revocations in Redis so they survive restarts
// and are shared between replicas. Entries expire with the token's
// remaining validity.
type RedisRevocationList struct {
	client *redis.Client
}

// NewRedisRevocationList creates a Redis-backed revocation list.
func NewRedisRevocationList(client *redis.Client) *RedisRevocationList {
	return &RedisRevocationList{client: client}
}

// Revoke stores a tombstone keyed by the token digest.
func (l *RedisRevocationList) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}
	if err := l.client.Set(ctx, revocationKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("auth: revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a tombstone exists for the token.
func (l *RedisRevocationList) IsRevoked(ctx context.Context, token string) (bool, error) {
	count, err := l.client.Exists(ctx, revocationKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("auth: check revocation: %w", err)
	}
	return count > 0, nil
}

func revocationKey(token string) string {
	digest := sha256.Sum256([]byte(token))
	return "gymreg:revoked:" + hex.EncodeToString(digest[:])
}

var (
	_ RevocationList = (*MemoryRevocationList)(nil)
	_ RevocationList = (*RedisRevocationList)(nil)
)
