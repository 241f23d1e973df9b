package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numbox/random-number-service/internal/config"
)

// clearEnv unsets a variable for the test while letting t.Setenv
// restore the original value afterwards.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "LOG_LEVEL", "HOST", "PORT"} {
		clearEnv(t, key)
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, 25*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Addr())
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_InvalidPort(t *testing.T) {
	testCases := []struct {
		name string
		port string
	}{
		{name: "not a number", port: "eight thousand"},
		{name: "out of range", port: "70000"},
		{name: "zero", port: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORT", tc.port)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
