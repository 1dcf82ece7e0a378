package logger_test

import (
	"bytes"
	"context"
	"errors"
	"sharedhouse/config"
	"sharedhouse/shared/constant"
	"sharedhouse/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	})

	return &buf
}

func TestInitLogger(t *testing.T) {
	captureLogs(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction

	logger.InitLogger(cfg)

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	buf := captureLogs(t)

	logger.ErrorWithStack(errors.New("test error"))

	assert.Contains(t, buf.String(), "test error")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{"debug level", "debug", zerolog.DebugLevel},
		{"info level", "info", zerolog.InfoLevel},
		{"error level", "error", zerolog.ErrorLevel},
		{"disabled level", "disabled", zerolog.Disabled},
		{"invalid level defaults to trace", "invalid_level", zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLogs(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestCtx(t *testing.T) {
	buf := captureLogs(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyRequestID, "req-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "user-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUsername, "alice")
	ctx = context.WithValue(ctx, constant.ContextKeyRoomNumber, "201")
	ctx = context.WithValue(ctx, constant.ContextKeyTokenID, "jti-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, "admin")

	logger.Ctx(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"requestId":"req-1"`)
	assert.Contains(t, buf.String(), `"userId":"user-1"`)
	assert.Contains(t, buf.String(), `"username":"alice"`)
	assert.Contains(t, buf.String(), `"roomNumber":"201"`)
	assert.Contains(t, buf.String(), `"tokenId":"jti-1"`)
	assert.NotContains(t, buf.String(), "admin")
}
