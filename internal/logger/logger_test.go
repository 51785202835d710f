package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}
	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "test-service", logEntry["service"])
	assert.Equal(t, "1.0.0", logEntry["version"])
	assert.Equal(t, "test", logEntry["environment"])
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "INFO", logEntry["level"])
	assert.Equal(t, "value", logEntry["key"])
	assert.Equal(t, float64(42), logEntry["number"])
}

func TestLevelFiltering(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	slog.Info("hidden")
	assert.Empty(t, buf.String())

	slog.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.NotNil(t, FromContext(ctx))

	assert.Empty(t, GetRequestID(context.Background()))
	assert.NotEmpty(t, GenerateRequestID())
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for level, expected := range tests {
		assert.Equal(t, expected, Config{Level: level}.LogLevel(), level)
	}
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "info", config.Level)
	assert.Equal(t, "prod", config.Environment)
	assert.False(t, config.AddSource)
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()
	assert.Equal(t, "text", config.Format)
	assert.Equal(t, "debug", config.Level)
	assert.True(t, config.AddSource)
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, DefaultServiceName, config.ServiceName)
	assert.NotEmpty(t, config.Level)
	assert.NotEmpty(t, config.Format)
}
