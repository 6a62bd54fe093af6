package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevocationList(t *testing.T) {
	ctx := context.Background()
	list := NewMemoryRevocationList()

	revoked, err := list.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, list.Revoke(ctx, "token-a", time.Hour))
	revoked, err = list.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Revoking one token leaves others untouched.
	revoked, err = list.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, revoked)

	// Idempotent.
	require.NoError(t, list.Revoke(ctx, "token-a", time.Hour))
}

func TestMemoryRevocationListEntriesLapse(t *testing.T) {
	ctx := context.Background()
	list := NewMemoryRevocationList()
	now := time.Now()
	list.now = func() time.Time { return now }

	require.NoError(t, list.Revoke(ctx, "token-a", 90*time.Minute))

	now = now.Add(2 * time.Hour)
	revoked, err := list.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Empty(t, list.entries)
}

func TestMemoryRevocationListTTLFloor(t *testing.T) {
	ctx := context.Background()
	list := NewMemoryRevocationList()
	now := time.Now()
	list.now = func() time.Time { return now }

	// An already-expired token still gets a brief tombstone.
	require.NoError(t, list.Revoke(ctx, "token-a", -time.Minute))
	revoked, err := list.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisRevocationList(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	list := NewRedisRevocationList(client)

	revoked, err := list.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, list.Revoke(ctx, "token-a", time.Hour))
	revoked, err = list.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	// The tombstone lapses with the token's remaining validity.
	mr.FastForward(2 * time.Hour)
	revoked, err = list.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)
}
