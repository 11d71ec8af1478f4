package config

import (
	"os"
	"strconv"
)

// DefaultTurns is the turn limit used when neither the environment nor a
// match file sets one.
const DefaultTurns = 200

// Config holds application configuration loaded from environment variables.
type Config struct {
	DatabaseURL string // postgres URL, sqlite://path, or empty for dry runs
	RedisURL    string // empty disables world snapshots
	Turns       int
	Seed        int64 // 0 picks a time-based seed
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		DatabaseURL: envOrDefault("DATABASE_URL", ""),
		RedisURL:    envOrDefault("REDIS_URL", ""),
		Turns:       envInt("REALM_TURNS", DefaultTurns),
		Seed:        int64(envInt("REALM_SEED", 0)),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(envOrDefault(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
