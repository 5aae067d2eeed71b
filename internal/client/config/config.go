// Package config assembles runtime settings for the gestor-ia client from
// defaults, an optional JSON file, environment variables and command-line
// flags, in that order of precedence.
package config

import "time"

// Backend selects which product/session backing the client runs against.
const (
	BackendLocal = "local"
	BackendAPI   = "api"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - ResourceAPIAddr: base URL of the product REST API.
//   - AuthAPIAddr: base URL of the authentication API.
//   - Backend: "local" (embedded store, fixed admin credential) or "api"
//     (REST backend, bearer-token sessions).
//   - DataFile: path of the embedded data file used by the local backend
//     and for persisting sessions.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ResourceAPIAddr string        `envconfig:"GESTOR_API_URL"`
	AuthAPIAddr     string        `envconfig:"GESTOR_AUTH_URL"`
	Backend         string        `envconfig:"GESTOR_BACKEND"`
	DataFile        string        `envconfig:"GESTOR_DATA_FILE"`
	RequestTimeout  time.Duration `envconfig:"GESTOR_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ResourceAPIAddr = "http://localhost:8000"
	c.AuthAPIAddr = "http://localhost:8003"
	c.Backend = BackendLocal
	c.DataFile = "gestor.db"
	c.RequestTimeout = 12 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
