package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/numbox/random-number-service/internal/logger"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name  string
		env   string
		level string
		debug bool
	}{
		{name: "production info", env: "production", level: "info"},
		{name: "development debug", env: "development", level: "debug", debug: true},
		{name: "local warn", env: "local", level: "warn"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := logger.New(tc.env, tc.level)
			require.NoError(t, err)

			assert.Equal(t, tc.debug, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New("production", "chatty")
	assert.Error(t, err)
}
