// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessboard-go/internal/config"
)

var (
	// Position options
	startFEN = flag.String("fen", "", "Starting position as FEN (default: standard layout)")

	// Display options
	noColor = flag.Bool("nocolor", false, "Disable coloured board output")
	flip    = flag.Bool("flip", false, "Draw the board from the opponent side")

	// Logging
	logFile   = flag.String("log", "", "Write log messages to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 running commentary")
	quiet     = flag.Bool("q", false, "Quiet mode (same as -v 0)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags maps command-line flags onto the configuration.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.Color = !*noColor
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}
