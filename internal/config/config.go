package config

import (
	"fmt"
	"os"
	"time"
)

// Config is the whole externally-documented configuration surface: the
// backend origin plus a few tunables.
type Config struct {
	APIBaseURL     string
	Port           string
	PollInterval   time.Duration
	RequestTimeout time.Duration
}

// Load reads configuration from the environment with sensible defaults.
func Load() Config {
	return Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:3000/api"),
		Port:           getPort(),
		PollInterval:   getEnvAsDuration("POLL_INTERVAL", 5*time.Second),
		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

// getPort returns the listen address from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
