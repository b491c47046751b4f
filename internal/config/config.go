// internal/config/config.go
//
// Environment-driven configuration with development defaults.
// godotenv is loaded in main before Load runs, so a local .env file is
// enough to override anything here.

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds server configuration.
type Config struct {
	Port             string
	DBPath           string
	WordsFile        string // empty = embedded default list
	TokenSecret      string
	TokenTTL         time.Duration
	DefaultMaxRounds int
	AllowSpectators  bool
	ClientOrigin     string
	LogLevel         string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8000"),
		DBPath:           getEnv("DB_PATH", "./data/wordle.db"),
		WordsFile:        getEnv("WORDS_FILE", ""),
		TokenSecret:      getEnv("TOKEN_SECRET", "change-me-in-prod-please"),
		TokenTTL:         envDuration("TOKEN_TTL", 8*time.Hour),
		DefaultMaxRounds: envInt("DEFAULT_MAX_ROUNDS", 6),
		AllowSpectators:  envBool("ALLOW_SPECTATORS", true),
		ClientOrigin:     getEnv("CLIENT_ORIGIN", "*"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
