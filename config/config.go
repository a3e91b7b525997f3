// Package config reads runtime configuration from the environment with safe
// defaults for anything unset or out of domain.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	DatabaseURL    string
	MigrationsPath string
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	CacheModeled   bool
	LogLevel       string
}

const (
	defaultPort           = "8080"
	defaultMigrationsPath = "migrations"
	defaultRequestTimeout = 10 * time.Second
	defaultRateLimitRPS   = 50
	defaultRateLimitBurst = 100
)

func Load() Config {
	return Config{
		Port:           envOrDefault("PORT", defaultPort),
		DatabaseURL:    databaseURL(),
		MigrationsPath: envOrDefault("MIGRATIONS_PATH", defaultMigrationsPath),
		RequestTimeout: durationEnvOrDefault("REQUEST_TIMEOUT", defaultRequestTimeout),
		RateLimitRPS:   floatEnvOrDefault("RATE_LIMIT_RPS", defaultRateLimitRPS),
		RateLimitBurst: intEnvOrDefault("RATE_LIMIT_BURST", defaultRateLimitBurst),
		CacheModeled:   boolEnvOrDefault("CACHE_MODELED_VALUATIONS", true),
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
	}
}

// databaseURL prefers a full DATABASE_URL and otherwise assembles the DSN
// from the discrete connection variables.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		os.Getenv("USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		envOrDefault("SSL_MODE", "disable"),
	)
}

func envOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func intEnvOrDefault(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func floatEnvOrDefault(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}
