package config

import "time"

// Config holds runtime settings for the recipe CLI.
//
// Fields:
//   - ServerEndpointURL: base URL of the backend REST API.
//   - RequestTimeout: per-request deadline for API calls.
//   - SearchDebounce: quiet period before a free-text search fires.
//   - DatabasePath: SQLite file holding the saved session tokens.
type Config struct {
	ServerEndpointURL string
	DatabasePath      string
	RequestTimeout    time.Duration
	SearchDebounce    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://127.0.0.1:8000/api"
	c.DatabasePath = "recettes.db"
	c.RequestTimeout = 10 * time.Second
	c.SearchDebounce = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (including a .env file), and finally
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
