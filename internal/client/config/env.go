package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first if present; godotenv never overrides
// variables already set in the process, so real environment wins over .env.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("RECETTES_ENDPOINT"); v != "" {
		cfg.ServerEndpointURL = v
	}
	if v := os.Getenv("RECETTES_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("RECETTES_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = parsed
		}
	}
}
