// Package config loads application configuration from the environment.
package config

import (
	"os"
)

// Config holds all runtime settings. Values come from environment
// variables with fallbacks, so the server can start with nothing set.
type Config struct {
	DatabaseURL    string // PostgreSQL connection string; empty means no store
	WeatherBaseURL string // Weather provider base URL (Open-Meteo compatible)
	Port           string // HTTP listen port
	Env            string // "development", "production" or "demo"
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		WeatherBaseURL: getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com"),
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
