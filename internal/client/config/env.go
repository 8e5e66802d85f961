package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config from environment variables. A .env file in the
// working directory, when present, is loaded first; real environment
// variables win over it (godotenv.Load never overwrites).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("FORKED_BACKEND_URL"); ok {
		cfg.BackendBaseURL = v
	}
	if v, ok := os.LookupEnv("FORKED_YELP_URL"); ok {
		cfg.YelpBaseURL = v
	}
	if v, ok := os.LookupEnv("FORKED_YELP_API_KEY"); ok {
		cfg.YelpAPIKey = v
	}
	if v, ok := os.LookupEnv("FORKED_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := os.LookupEnv("FORKED_REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
