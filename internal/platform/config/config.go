// Package config loads the process configuration from the environment.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"portfolio_backend/internal/platform/db"
	jwtmw "portfolio_backend/internal/platform/jwt"
	"portfolio_backend/internal/platform/redis"
)

const (
	// InsecureJWTSecret is used when JWT_SECRET is unset. Never deploy with it.
	InsecureJWTSecret = "your-secret-key"

	defaultBodyLimit = 5 << 20
)

// Config is the full process configuration.
type Config struct {
	Env           string
	Port          string
	FrontendURL   string
	JWTSecret     string
	JWTExpiration time.Duration
	BodyLimit     int64

	DB    db.Config
	Redis redis.Config
}

// Load reads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg := Config{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "3000"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:5173"),
		JWTSecret:     getEnv("JWT_SECRET", InsecureJWTSecret),
		JWTExpiration: getEnvAsDuration("JWT_EXPIRATION", jwtmw.DefaultExpiration),
		BodyLimit:     getEnvAsInt64("BODY_LIMIT_BYTES", defaultBodyLimit),
		DB:            db.LoadConfigFromEnv(),
		Redis:         redis.LoadConfigFromEnv(),
	}

	if cfg.InsecureSecret() {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}
	return cfg
}

// Production reports whether APP_ENV is production.
func (c Config) Production() bool { return c.Env == "production" }

// InsecureSecret reports whether tokens are signed with the built-in default.
func (c Config) InsecureSecret() bool { return c.JWTSecret == InsecureJWTSecret }

// Addr is the listen address.
func (c Config) Addr() string { return ":" + c.Port }

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
