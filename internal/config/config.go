// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// APIBaseURL is the public URL of this API. Confirmation links in emails
	// point here.
	APIBaseURL string

	// WebBaseURL is the public URL of the web client. Confirm endpoints
	// redirect the browser to {WebBaseURL}/trips/{id}.
	WebBaseURL string

	// MigrateOnStart applies pending migrations before serving. Defaults to true.
	MigrateOnStart bool

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// RateLimitRPS and RateLimitBurst configure the per-client limiter on
	// write endpoints.
	RateLimitRPS   float64
	RateLimitBurst int

	Mail Mail
}

// Mail configures outgoing email. An empty SMTPHost selects the log mailer.
type Mail struct {
	FromName     string
	FromAddress  string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
// Returns an error listing any required variables that are not set and any
// values that could not be parsed.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		Mail: Mail{
			FromName:     getEnv("MAIL_FROM_NAME", "Trip Planner"),
			FromAddress:  getEnv("MAIL_FROM_ADDRESS", "no-reply@trip-planner.local"),
			SMTPHost:     os.Getenv("SMTP_HOST"),
			SMTPUsername: os.Getenv("SMTP_USERNAME"),
			SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		},
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	p := parser{}
	cfg.Mail.SMTPPort = p.int("SMTP_PORT", 587)
	cfg.MaxBodyBytes = int64(p.int("MAX_BODY_BYTES", 1<<20))
	cfg.RateLimitRPS = p.float("RATE_LIMIT_RPS", 5)
	cfg.RateLimitBurst = p.int("RATE_LIMIT_BURST", 10)
	cfg.MigrateOnStart = p.bool("MIGRATE_ON_START", true)
	cfg.APIBaseURL = p.baseURL("API_BASE_URL", "http://localhost:8080")
	cfg.WebBaseURL = p.baseURL("WEB_BASE_URL", "http://localhost:3000")
	if len(p.invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(p.invalid, ", "))
	}

	return cfg, nil
}

// parser reads typed values and collects the names of the ones it could not parse.
type parser struct {
	invalid []string
}

func (p *parser) int(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return n
}

func (p *parser) float(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return f
}

func (p *parser) bool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return b
}

// baseURL reads an absolute http(s) URL without a trailing slash.
func (p *parser) baseURL(key, fallback string) string {
	v := strings.TrimRight(getEnv(key, fallback), "/")
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return v
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
