// Package config handles configuration for the CLI client,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the registry CLI client.
type Config struct {
	// ServerEndpointAddr is the host:port of the registry server.
	ServerEndpointAddr string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "localhost:9000"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
