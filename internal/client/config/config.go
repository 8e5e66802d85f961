// Package config loads runtime configuration for the Forked CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables, with .env support via godotenv.
//  4. Command-line flags, which override everything else.
package config

import "time"

// Config holds runtime settings for the Forked CLI.
type Config struct {
	// BackendBaseURL is the Forked REST API root.
	BackendBaseURL string

	// YelpBaseURL and YelpAPIKey configure the third-party search API.
	YelpBaseURL string
	YelpAPIKey  string

	// DataDir holds the local database and device secret file.
	DataDir string

	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://127.0.0.1:8000"
	c.YelpBaseURL = "https://api.yelp.com/v3"
	c.YelpAPIKey = ""
	c.DataDir = "."
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
