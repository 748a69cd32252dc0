package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":9000", cfg.EndpointAddr)
	assert.Equal(t, "medical_registry.sqlite3", cfg.DatabaseDSN)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, 65536, cfg.MaxRequestBytes)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-a", ":7777", "-d", "registry.db", "-seed=false", "-m", "1024"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":7777", cfg.EndpointAddr)
	assert.Equal(t, "registry.db", cfg.DatabaseDSN)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, 1024, cfg.MaxRequestBytes)
}

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"endpoint_addr": ":8888", "seed_demo_data": false}`), 0o600)
	require.NoError(t, err)

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":8888", cfg.EndpointAddr)
	assert.False(t, cfg.SeedDemoData)
	// keys absent from the file keep their defaults
	assert.Equal(t, "medical_registry.sqlite3", cfg.DatabaseDSN)
	assert.Equal(t, 65536, cfg.MaxRequestBytes)
}

func TestParseJson_NoFileConfigured(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":9000", cfg.EndpointAddr)
}
