package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/setmap/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithFormat(ctx, "gen9ou")
	ctx = logging.WithSpecies(ctx, "Great Tusk")

	logger := logging.FromContext(ctx)
	logger.Info().Msg("building set")

	testLogger.AssertContains(t, "gen9ou")
	testLogger.AssertContains(t, "Great Tusk")
	testLogger.AssertContains(t, "building set")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, logging.FromContext(context.Background()))
	assert.NotNil(t, logging.FromContext(nil)) //nolint:staticcheck // exercising the nil guard
}

func TestWithFields(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	ctx = logging.WithFields(ctx, map[string]any{
		"generation": 4,
		"usage":      0.42,
		"covered":    true,
	})
	logging.Ctx(ctx).Info().Msg("fields attached")

	testLogger.AssertContains(t, `"generation":4`)
	testLogger.AssertContains(t, `"usage":0.42`)
	testLogger.AssertContains(t, `"covered":true`)
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("level is honored", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "warn",
			Format: "json",
			Output: "discard",
		})
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "shouting",
			Format: "json",
			Output: "discard",
		})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}
