// Package config loads application configuration from the environment.
package config

import (
	"os"
)

// Config holds all runtime configuration for the application
type Config struct {
	TMDBAPIKey    string
	DatabasePath  string
	Port          string
	SessionSecret string
}

// Load reads configuration from environment variables, applying defaults
// for everything except the TMDB API key
func Load() *Config {
	return &Config{
		TMDBAPIKey:    os.Getenv("TMDB_API_KEY"),
		DatabasePath:  getEnv("DATABASE_PATH", "movies.db"),
		Port:          getEnv("PORT", "8080"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
