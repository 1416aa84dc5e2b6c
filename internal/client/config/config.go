// Package config loads the client's runtime settings from defaults, an
// optional JSON file, and command-line flags, in that order of precedence.
package config

// Config holds runtime settings for the recipe client.
//
// Fields:
//   - APIBaseURL: base URL of the recipe REST service.
//   - DatabasePath: path of the local SQLite database holding the session.
type Config struct {
	APIBaseURL   string
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DatabasePath = "plateful.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
