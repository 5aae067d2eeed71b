package config

import (
	"flag"
	"os"
	"time"

	"github.com/Revolutionnnn/gestor-ia/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the product REST API
//	-u string   base URL of the auth API
//	-b string   backend variant: local or api
//	-f string   path of the embedded data file
//	-t int      request timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-b", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ResourceAPIAddr, "a", cfg.ResourceAPIAddr, "base URL of the product API")
	fs.StringVar(&cfg.AuthAPIAddr, "u", cfg.AuthAPIAddr, "base URL of the auth API")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "backend variant (local or api)")
	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "path of the data file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
