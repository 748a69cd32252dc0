package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/medregistry/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   TCP bind address (e.g., ":9000")
//	-d string   database DSN (postgres:// URL or SQLite file path)
//	-seed bool  seed demo patients on first start
//	-m int      max request size in bytes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-seed", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.BoolVar(&config.SeedDemoData, "seed", config.SeedDemoData, "seed demo patients on first start")
	fs.IntVar(&config.MaxRequestBytes, "m", config.MaxRequestBytes, "max request size in bytes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
