package config

import (
	"encoding/json"
	"os"

	"github.com/plateful/plateful/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed
// values are copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL   string `json:"api_base_url"`
	DatabasePath string `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// is given via the -c/-config flags. Empty fields in the file keep the
// current Config values. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
