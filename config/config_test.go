package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMock, cfg.StoreMode)
	assert.Equal(t, 250*time.Millisecond, cfg.MockLatency)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 7, cfg.ForecastDays)
	assert.False(t, cfg.StrictReads)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"STORE_MODE":         "remote",
		"RECORDS_URL":        "http://records:9000",
		"STORE_STRICT_READS": "true",
		"CACHE_TTL":          "0s",
		"MOCK_LATENCY":       "0",
		"TZ":                 "Not/AZone",
	}))
	require.NoError(t, err)
	assert.Equal(t, StoreRemote, cfg.StoreMode)
	assert.Equal(t, "http://records:9000", cfg.RecordsURL)
	assert.True(t, cfg.StrictReads)
	assert.Zero(t, cfg.CacheTTL)
	assert.Zero(t, cfg.MockLatency)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestInvalidValuesAreReported(t *testing.T) {
	_, err := FromEnv(env(map[string]string{
		"STORE_MODE":    "cloud",
		"CACHE_SIZE":    "lots",
		"MOCK_LATENCY":  "soon",
		"FORECAST_DAYS": "7",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_MODE")
	assert.Contains(t, err.Error(), "CACHE_SIZE")
	assert.Contains(t, err.Error(), "MOCK_LATENCY")
}
