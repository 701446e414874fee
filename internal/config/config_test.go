package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Token.TTLMinutes)
	assert.Equal(t, 60*time.Minute, cfg.Token.TTL())
	assert.Equal(t, 5*time.Minute, cfg.Sweeper.Period)
	assert.Equal(t, 30*time.Minute, cfg.Sweeper.StallThreshold)
	assert.Equal(t, 1024, cfg.Cache.Size)
	assert.Equal(t, 4, cfg.Notify.Workers)
	assert.Equal(t, 256, cfg.Notify.QueueSize)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_RejectsShortSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("SWEEPER_PERIOD", "1m")
	t.Setenv("SWEEPER_STALL_THRESHOLD", "45m")
	t.Setenv("TOKEN_TTL_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Sweeper.Period)
	assert.Equal(t, 45*time.Minute, cfg.Sweeper.StallThreshold)
	assert.Equal(t, 15*time.Minute, cfg.Token.TTL())
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("SWEEPER_PERIOD", "whenever")

	_, err := Load()
	assert.Error(t, err)
}
