package main

import (
	"flag"
	"os"

	"github.com/Makepad-fr/hebdo/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to config file (default: user config dir)")
	compact := flag.Bool("compact", false, "use the compact layout scale")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	os.Exit(cli.Run(flag.Args(), cli.Options{
		ConfigPath: *configPath,
		Compact:    *compact,
	}))
}
