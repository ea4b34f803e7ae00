package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/enokjanuario/primeholding/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in Go duration syntax ("15s").
type jsonConfig struct {
	APIBaseURL  string `json:"api_base_url"`
	TokenFile   string `json:"token_file"`
	HTTPTimeout string `json:"http_timeout"`
}

// parseJSON overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; without it nothing is loaded.
// Unset fields keep their earlier values.
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("config file %s: %v", path, err))
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(fmt.Sprintf("config file %s: %v", path, err))
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.HTTPTimeout != "" {
		d, err := time.ParseDuration(jc.HTTPTimeout)
		if err != nil {
			panic(fmt.Sprintf("config file %s: http_timeout: %v", path, err))
		}
		cfg.HTTPTimeout = d
	}
}
