// Package config loads application configuration from a .env file and
// the process environment, environment taking precedence over defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything cmd/server needs to wire the process.
type Config struct {
	DatabasePath string
	LogLevel     string
	MetricsAddr  string
	SessionTTL   time.Duration
	SeedOnStart  bool
}

// Load reads the optional .env file and resolves every setting. Missing
// values fall back to defaults; invalid values are logged and fall back
// too. It never fails: a process with no configuration at all gets a
// usable local setup.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, using environment and defaults", "error", err)
	}

	return &Config{
		DatabasePath: getEnv("DATABASE_PATH", "./data/fincaledger.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		MetricsAddr:  getEnv("METRICS_ADDR", ":9090"),
		SessionTTL:   getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		SeedOnStart:  getEnvAsBool("SEED_ON_START", true),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("Invalid boolean in environment, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Invalid duration in environment, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return value
}
