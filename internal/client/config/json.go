package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Revolutionnnn/gestor-ia/internal/flagx"
	"github.com/Revolutionnnn/gestor-ia/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string like
// "12s" or as integer nanoseconds. Empty fields leave the current value.
type JsonConfig struct {
	ResourceAPIAddr string         `json:"resource_api_addr"`
	AuthAPIAddr     string         `json:"auth_api_addr"`
	Backend         string         `json:"backend"`
	DataFile        string         `json:"data_file"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. When no file is named, nothing happens. Read or
// unmarshal errors panic; the caller decides whether to recover.
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

	if jc.ResourceAPIAddr != "" {
		cfg.ResourceAPIAddr = jc.ResourceAPIAddr
	}
	if jc.AuthAPIAddr != "" {
		cfg.AuthAPIAddr = jc.AuthAPIAddr
	}
	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
	if jc.RequestTimeout.Duration != time.Duration(0) {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
