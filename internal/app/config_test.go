package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.AppAddr)
	require.Equal(t, 2*time.Hour, cfg.TokenTTL)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.True(t, cfg.IsProduction())
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsZeroTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "0s")

	_, err := LoadConfig()
	require.Error(t, err)
}
