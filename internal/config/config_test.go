package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "db", cfg.Database.Name)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30, cfg.Database.AcquireTimeout)
	assert.False(t, cfg.API.StrictIDs)
	assert.Equal(t, 100*time.Millisecond, cfg.Logging.SlowQueryThreshold)
	assert.False(t, cfg.NewRelic.Enabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PRODUCTS_PRIMARY_ENV", "production")
	t.Setenv("PRODUCTS_SERVER_PORT", "8080")
	t.Setenv("PRODUCTS_SERVER_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("PRODUCTS_DATABASE_HOST", "db.internal")
	t.Setenv("PRODUCTS_DATABASE_PORT", "6543")
	t.Setenv("PRODUCTS_DATABASE_SSL_MODE", "require")
	t.Setenv("PRODUCTS_DATABASE_MAX_OPEN_CONNS", "25")
	t.Setenv("PRODUCTS_API_STRICT_IDS", "true")
	t.Setenv("PRODUCTS_LOGGING_SLOW_QUERY_THRESHOLD", "250ms")
	t.Setenv("PRODUCTS_NEW_RELIC_LICENSE_KEY", "abc")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.API.StrictIDs)
	assert.Equal(t, 250*time.Millisecond, cfg.Logging.SlowQueryThreshold)
	assert.True(t, cfg.NewRelic.Enabled())
	assert.Equal(t, "json", cfg.LogFormat())
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"ssl mode", "PRODUCTS_DATABASE_SSL_MODE", "sometimes"},
		{"pool size", "PRODUCTS_DATABASE_MAX_OPEN_CONNS", "0"},
		{"log level", "PRODUCTS_LOGGING_LEVEL", "verbose"},
		{"log format", "PRODUCTS_LOGGING_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "database.ssl_mode", envKey("PRODUCTS_DATABASE_SSL_MODE"))
	assert.Equal(t, "new_relic.license_key", envKey("PRODUCTS_NEW_RELIC_LICENSE_KEY"))
	assert.Equal(t, "server.port", envKey("PRODUCTS_SERVER_PORT"))
	assert.Equal(t, "", envKey("PRODUCTS_UNKNOWN_THING"))
	assert.Equal(t, "", envKey("PRODUCTS_DATABASE"))
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "::1",
		Port:     5432,
		User:     "postgres",
		Password: "pa:ss@word",
		Name:     "db",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://postgres:pa%3Ass%40word@[::1]:5432/db?sslmode=disable", d.DSN())
}

func TestRedacted(t *testing.T) {
	cfg := Config{
		Database: DatabaseConfig{Password: "hunter2"},
		NewRelic: NewRelicConfig{LicenseKey: "abc"},
	}

	redacted := cfg.Redacted()
	assert.Equal(t, "********", redacted.Database.Password)
	assert.Equal(t, "********", redacted.NewRelic.LicenseKey)
	assert.Equal(t, "hunter2", cfg.Database.Password)
}
