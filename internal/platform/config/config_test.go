package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"ALMANAC_ADDR", "ALMANAC_RULES_DIR", "ALMANAC_DEBUG",
		"ALMANAC_PRECOMPUTE_LIMIT", "ALMANAC_MAX_YEAR_SPAN", "ALMANAC_SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Server{
		Addr:            ":8080",
		PrecomputeLimit: 8,
		MaxYearSpan:     25,
		ShutdownTimeout: 10 * time.Second,
	}, cfg)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ALMANAC_ADDR", ":9090")
	t.Setenv("ALMANAC_RULES_DIR", "/etc/almanac/rules")
	t.Setenv("ALMANAC_DEBUG", "true")
	t.Setenv("ALMANAC_PRECOMPUTE_LIMIT", "2")
	t.Setenv("ALMANAC_MAX_YEAR_SPAN", "5")
	t.Setenv("ALMANAC_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/etc/almanac/rules", cfg.RulesDir)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 2, cfg.PrecomputeLimit)
	assert.Equal(t, 5, cfg.MaxYearSpan)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := map[string]string{
		"ALMANAC_PRECOMPUTE_LIMIT": "many",
		"ALMANAC_MAX_YEAR_SPAN":    "0",
		"ALMANAC_SHUTDOWN_TIMEOUT": "soon",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
