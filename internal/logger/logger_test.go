package logger

import (
	"testing"

	"github.com/deppfellow/products-api/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, tracelog.LogLevelInfo, GetPgxTraceLogLevel(zerolog.InfoLevel))
	assert.Equal(t, tracelog.LogLevelWarn, GetPgxTraceLogLevel(zerolog.WarnLevel))
	assert.Equal(t, tracelog.LogLevelError, GetPgxTraceLogLevel(zerolog.ErrorLevel))
	assert.Equal(t, tracelog.LogLevelNone, GetPgxTraceLogLevel(zerolog.Disabled))
}

func TestLoggerServiceWithoutLicense(t *testing.T) {
	cfg := &config.Config{Primary: config.Primary{Env: "local"}}

	ls, err := NewLoggerService(cfg)
	require.NoError(t, err)
	assert.Nil(t, ls.GetApplication())

	// Shutdown on a disabled service must not panic.
	ls.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := &config.Config{
		Primary: config.Primary{Env: "production"},
		Logging: config.LoggingConfig{Level: "warn", Format: "json"},
	}

	logger := NewLogger(cfg, nil)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
