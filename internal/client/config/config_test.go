package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"portal"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	require.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	require.Contains(t, cfg.TokenFile, ".primeholding")
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv(EnvAPIBaseURL, "https://staging.example.com/_functions")
	t.Setenv(EnvTokenFile, "/tmp/prime-token")
	t.Setenv(EnvHTTPTimeout, "30s")

	cfg := LoadConfig()
	require.Equal(t, "https://staging.example.com/_functions", cfg.APIBaseURL)
	require.Equal(t, "/tmp/prime-token", cfg.TokenFile)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfig_InvalidEnvTimeoutIgnored(t *testing.T) {
	resetArgs(t)
	t.Setenv(EnvHTTPTimeout, "soon")

	cfg := LoadConfig()
	require.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfig_JSONOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://json.example.com/_functions",
		"http_timeout": "45s"
	}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv(EnvAPIBaseURL, "https://env.example.com/_functions")
	t.Setenv(EnvTokenFile, "/tmp/env-token")

	cfg := LoadConfig()
	require.Equal(t, "https://json.example.com/_functions", cfg.APIBaseURL)
	require.Equal(t, 45*time.Second, cfg.HTTPTimeout)
	// Fields the JSON file omits keep the earlier layer's value.
	require.Equal(t, "/tmp/env-token", cfg.TokenFile)
}

func TestLoadConfig_FlagsWinOverEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url":"https://json.example.com"}`), 0o600))

	resetArgs(t, "-c", path, "-a", "https://flag.example.com", "-i", "60", "-f", "/tmp/flag-token")
	t.Setenv(EnvAPIBaseURL, "https://env.example.com")

	cfg := LoadConfig()
	require.Equal(t, "https://flag.example.com", cfg.APIBaseURL)
	require.Equal(t, "/tmp/flag-token", cfg.TokenFile)
	require.Equal(t, 60*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfig_BadJSONPanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o600))

	resetArgs(t, "-c", path)
	require.Panics(t, func() { LoadConfig() })
}
