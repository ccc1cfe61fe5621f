package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/Ralle1976/botcrafter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug_level", logLevel: "debug"},
		{name: "info_level", logLevel: "info"},
		{name: "warn_level", logLevel: "warn"},
		{name: "error_level", logLevel: "error"},
		{name: "case_insensitive", logLevel: "DEBUG"},
		{name: "invalid_falls_back_to_info", logLevel: "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 5000, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Equal(t, logger, slog.Default())
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Run("returns_stored_logger", func(t *testing.T) {
		stored := slog.Default().With("component", "test")
		ctx := WithLogger(context.Background(), stored)
		assert.Equal(t, stored, FromContext(ctx))
	})

	t.Run("falls_back_to_default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("nil_context_falls_back", func(t *testing.T) {
		//nolint:staticcheck // exercising the nil-context guard
		assert.Equal(t, slog.Default(), FromContext(nil))
	})

	t.Run("prefers_fallback_over_default", func(t *testing.T) {
		fallback := slog.Default().With("component", "fallback")
		got := FromContextOrDefault(context.Background(), fallback)
		assert.Equal(t, fallback, got)
	})
}
