package config

import (
	"os"
	"time"
)

// Environment variables recognized by the client. PRIME_HTTP_TIMEOUT uses
// Go duration syntax ("15s", "1m").
const (
	EnvAPIBaseURL  = "PRIME_API_URL"
	EnvTokenFile   = "PRIME_TOKEN_FILE"
	EnvHTTPTimeout = "PRIME_HTTP_TIMEOUT"
)

func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvTokenFile); v != "" {
		cfg.TokenFile = v
	}
	if v := os.Getenv(EnvHTTPTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
}
