package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
// os.Args is filtered with flagx.FilterArgs first so that -c/-config and any
// foreign flags do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "journal database DSN")
	fs.StringVar(&cfg.StoreID, "s", cfg.StoreID, "store id")
	fs.DurationVar(&cfg.CommitTimeout, "t", cfg.CommitTimeout, "commit timeout, e.g. 5s or 1500ms")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
