package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/medregistry/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   server address (e.g., "localhost:9000")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
