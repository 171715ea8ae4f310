package config

import (
	"flag"
	"os"
	"time"

	"github.com/promptlab/promptlab/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file
//	-k string   session signing key
//	-p int      optimize pacing delay in milliseconds
//
// The function filters os.Args down to the flags it owns, via
// flagx.FilterArgs, so it never collides with flags parsed elsewhere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.SessionKey, "k", cfg.SessionKey, "session signing key")
	optimizeDelay := fs.Int("p", int(cfg.OptimizeDelay.Milliseconds()), "optimize pacing delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OptimizeDelay = time.Duration(*optimizeDelay) * time.Millisecond
}
