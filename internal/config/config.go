// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env`
// file when one exists), layers them over built-in defaults,
// loads them into structured Go types, and validates them so
// the service fails fast on bad configuration.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/deppfellow/products-api/internal/lib/utils"
	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Keys are read from env vars prefixed with PRODUCTS_. The first
	underscore after a known section name becomes the koanf nesting
	delimiter, so section-level keys can still contain underscores:

		PRODUCTS_DATABASE_SSL_MODE -> database.ssl_mode -> Config.Database.SSLMode
		PRODUCTS_NEW_RELIC_LICENSE_KEY -> new_relic.license_key
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "PRODUCTS_"

// ServiceName identifies this service in logs and APM.
const ServiceName = "products-api"

// sections lists the top-level config blocks, used to split env keys.
var sections = []string{"primary", "server", "database", "api", "logging", "new_relic"}

// Config is the root configuration object for the application.
//
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// RateLimit is the sustained requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// Durations are whole seconds. AcquireTimeout is the pool wait policy: how
// long a request may queue for a free connection. Zero means the request
// waits until its own context ends.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required,min=1,max=65535"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"min=0"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"min=0"`
	AcquireTimeout  int    `koanf:"acquire_timeout" validate:"min=0"`
}

// APIConfig holds switches that change how requests are mapped to statements.
type APIConfig struct {
	// StrictIDs parses the {id} path parameter before it reaches storage and
	// answers 400 for anything that is not a positive integer. When false the
	// raw text is bound and Postgres does the coercion.
	StrictIDs bool `koanf:"strict_ids"`
}

// DSN builds the postgres:// URL for this database.
//
// The password is URL-escaped and the host is joined with the port so IPv6
// literals get their brackets.
func (d DatabaseConfig) DSN() string {
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		hostPort,
		d.Name,
		d.SSLMode,
	)
}

// defaults mirrors the settings the service has always shipped with.
func defaults() map[string]any {
	return map[string]any{
		"primary.env": "local",

		"server.port":                 "3000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"server.rate_limit":           0.0,

		"database.host":               "localhost",
		"database.port":               5432,
		"database.user":               "postgres",
		"database.password":           "postgres",
		"database.name":               "db",
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     0,
		"database.conn_max_lifetime":  3600,
		"database.conn_max_idle_time": 1800,
		"database.acquire_timeout":    30,

		"api.strict_ids": false,

		"logging.level":                "info",
		"logging.format":               "json",
		"logging.slow_query_threshold": "100ms",

		"new_relic.app_log_forwarding_enabled":  true,
		"new_relic.distributed_tracing_enabled": true,
	}
}

// envKey turns PRODUCTS_DATABASE_SSL_MODE into database.ssl_mode.
// Variables outside the known sections map to "" and are skipped.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok && rest != "" {
			return section + "." + rest
		}
	}
	return ""
}

// envValue maps one variable, splitting list values on commas.
func envValue(name, value string) (string, any) {
	key := envKey(name)
	if key == "server.cors_allowed_origins" {
		origins := strings.Split(value, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return key, origins
	}
	return key, value
}

// LoadConfig reads defaults and environment, unmarshals them into Config and
// validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := cfg.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	return cfg, nil
}

// Redacted returns a copy safe to print: secrets are masked.
func (c Config) Redacted() Config {
	c.Database.Password = utils.Redact(c.Database.Password)
	c.NewRelic.LicenseKey = utils.Redact(c.NewRelic.LicenseKey)
	return c
}
