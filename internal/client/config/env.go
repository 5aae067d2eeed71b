package config

import "github.com/kelseyhightower/envconfig"

// parseEnv overlays cfg with values from the environment (GESTOR_* vars).
// Variables that are not set leave the current value in place.
func parseEnv(cfg *Config) {
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}
}
