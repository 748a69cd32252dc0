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
	ServerEndpointAddr *string `json:"server_endpoint_addr"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded.
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

	if c.ServerEndpointAddr != nil {
		config.ServerEndpointAddr = *c.ServerEndpointAddr
	}
}
