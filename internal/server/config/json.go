package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/medregistry/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Fields are pointers so that keys absent from the file leave the
// corresponding Config values untouched.
type JsonConfig struct {
	EndpointAddr    *string `json:"endpoint_addr"`
	DatabaseDSN     *string `json:"database_dsn"`
	SeedDemoData    *bool   `json:"seed_demo_data"`
	MaxRequestBytes *int    `json:"max_request_bytes"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SeedDemoData != nil {
		config.SeedDemoData = *c.SeedDemoData
	}
	if c.MaxRequestBytes != nil {
		config.MaxRequestBytes = *c.MaxRequestBytes
	}
}
