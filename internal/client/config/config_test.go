package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.ResourceAPIAddr)
	assert.Equal(t, "http://localhost:8003", c.AuthAPIAddr)
	assert.Equal(t, BackendLocal, c.Backend)
	assert.Equal(t, "gestor.db", c.DataFile)
	assert.Equal(t, 12*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"app"}
	defer func() { os.Args = origArgs }()

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000", cfg.ResourceAPIAddr)
	assert.Equal(t, BackendLocal, cfg.Backend)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"app", "-a", "http://api:9000", "-b", "api", "-t", "5"}
	defer func() { os.Args = origArgs }()

	cfg := LoadConfig()

	assert.Equal(t, "http://api:9000", cfg.ResourceAPIAddr)
	assert.Equal(t, BackendAPI, cfg.Backend)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "http://localhost:8003", cfg.AuthAPIAddr)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("GESTOR_AUTH_URL", "http://auth:8083")
	t.Setenv("GESTOR_DATA_FILE", "alt.db")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://auth:8083", c.AuthAPIAddr)
	assert.Equal(t, "alt.db", c.DataFile)
	assert.Equal(t, "http://localhost:8000", c.ResourceAPIAddr)
}

func TestParseJson_Overlays(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "conf-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{"backend":"api","request_timeout":"3s"}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	origArgs := os.Args
	os.Args = []string{"app", "-c", f.Name()}
	defer func() { os.Args = origArgs }()

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, BackendAPI, c.Backend)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	assert.Equal(t, "gestor.db", c.DataFile)
}
