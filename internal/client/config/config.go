// Package config assembles the client's runtime settings. Sources are
// layered, later ones winning: built-in defaults, environment variables
// (optionally loaded from a .env file by the caller), a JSON file given via
// -c/-config, and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultAPIBaseURL is the hosted functions endpoint of the production
// backend.
const DefaultAPIBaseURL = "https://www.primeholdinginvest.com.br/_functions"

// Config holds runtime settings for the portal client.
//
// Fields:
//   - APIBaseURL: base URL of the backend functions API.
//   - TokenFile: where the bearer credential is persisted between runs.
//   - HTTPTimeout: per-request timeout.
type Config struct {
	APIBaseURL  string
	TokenFile   string
	HTTPTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. The token lives under
// the user's home so it survives working-directory changes, mirroring the
// browser's per-origin storage.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.TokenFile = defaultTokenFile()
	c.HTTPTimeout = 15 * time.Second
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".primeholding/token"
	}
	return filepath.Join(home, ".primeholding", "token")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
