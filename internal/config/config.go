// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `envconfig:"PORT" default:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// LogLevel controls the minimum log level: debug, info, warn or error.
	LogLevel slog.Level `envconfig:"LOG_LEVEL" default:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to the Vite dev server. Set CORS_ORIGINS to a comma-separated
	// list to override.
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// SessionTTL is how long a login session stays valid.
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"30m"`

	// CookieSecure marks the session cookie Secure. Enable behind TLS.
	CookieSecure bool `envconfig:"COOKIE_SECURE" default:"false"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`

	// GeoAPIKey enables geocoding of memory locations when set.
	GeoAPIKey string `envconfig:"GEO_API_KEY"`

	// Upload signing. Without credentials /awsUrl still signs, but the
	// URLs are rejected by S3.
	AWSAccessKeyID     string `envconfig:"ACCESSKEYID"`
	AWSSecretAccessKey string `envconfig:"SECRETACCESSKEY"`
	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	UploadBucket       string `envconfig:"UPLOAD_BUCKET" default:"traveler-images"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("config.Load: SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return cfg, nil
}

// trimAll trims every entry, dropping empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
