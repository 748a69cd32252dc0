// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the registry server.
//
// Fields:
//   - EndpointAddr: bind address for the TCP endpoint.
//   - DatabaseDSN: storage DSN. A postgres:// URL selects PostgreSQL,
//     anything else is treated as an SQLite file path.
//   - SeedDemoData: insert the demo patients on first start against an
//     empty database.
//   - MaxRequestBytes: upper bound on a single inbound request.
type Config struct {
	EndpointAddr    string
	DatabaseDSN     string
	SeedDemoData    bool
	MaxRequestBytes int
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":9000"
	c.DatabaseDSN = "medical_registry.sqlite3"
	c.SeedDemoData = true
	c.MaxRequestBytes = 65536
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
