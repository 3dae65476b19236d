package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lifeboard/core/internal/infrastructure/config"
	"github.com/lifeboard/core/internal/infrastructure/logger"
)

func observedLogger(level zapcore.Level) (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestNewValidatesLevel(t *testing.T) {
	_, err := logger.New(config.LoggerConfig{Level: "chatty", Format: "json"})
	require.Error(t, err)

	l, err := logger.New(config.LoggerConfig{Level: "info", Format: "json", Output: "stdout"})
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestWithFieldsAttachContext(t *testing.T) {
	l, logs := observedLogger(zapcore.InfoLevel)

	l.WithComponent("task-service").
		WithRequestID("req-42").
		WithError(errors.New("boom")).
		Infow("something happened")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "task-service", fields["component"])
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "boom", fields["error"])
}

func TestLogHTTPRequest(t *testing.T) {
	l, logs := observedLogger(zapcore.InfoLevel)

	l.LogHTTPRequest("GET", "/api/v1/tasks", "test-agent", "127.0.0.1", 200, 12.5)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "HTTP request", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/v1/tasks", fields["path"])
	assert.EqualValues(t, 200, fields["status_code"])
	assert.Equal(t, 12.5, fields["duration_ms"])
}
