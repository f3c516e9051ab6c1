package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmvillal/tasktrack/internal/config"
)

func TestSetup(t *testing.T) {
	levels := []struct {
		configured string
		enabled    slog.Level
		disabled   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
	}

	for _, tt := range levels {
		t.Run(tt.configured, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.configured})
			require.NoError(t, err)

			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tt.enabled))
			assert.False(t, logger.Enabled(ctx, tt.disabled))
		})
	}

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "loud"})
		require.NoError(t, err)

		ctx := context.Background()
		assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	})
}

func TestContextLogger(t *testing.T) {
	base := slog.Default()

	t.Run("round trip", func(t *testing.T) {
		ctx := WithLogger(context.Background(), base)
		got, ok := FromContext(ctx)
		assert.True(t, ok)
		assert.Same(t, base, got)
	})

	t.Run("empty context has no logger", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("fallback order", func(t *testing.T) {
		fallback := slog.Default().With("component", "test")
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))

		ctx := WithLogger(context.Background(), base)
		assert.Same(t, base, FromContextOrDefault(ctx, fallback))

		assert.NotNil(t, FromContextOrDefault(context.Background(), nil))
	})
}
