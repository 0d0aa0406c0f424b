// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessboard-go/internal/config"
)

var (
	// Listener options
	addr    = flag.String("addr", ":3000", "Listen address")
	origins = flag.String("origins", "http://localhost:5173", "Comma-separated allowed CORS and websocket origins")

	// Board options
	startFEN     = flag.String("fen", "", "Starting position for new boards (default: standard layout)")
	maxPositions = flag.Int("max-positions", 4096, "Distinct placements remembered per board (0 = unlimited)")

	// Worker options
	workers    = flag.Int("workers", 0, "Legality workers for full target maps (0 = number of CPUs)")
	bufferSize = flag.Int("buffer", 64, "Worker channel buffer size")

	// Logging
	logFile   = flag.String("log", "", "Write log messages to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 request log, 2 running commentary")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags maps command-line flags onto the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.AllowOrigins = *origins
	cfg.StartFEN = *startFEN
	cfg.MaxPositions = *maxPositions
	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.BufferSize = *bufferSize
	cfg.Verbosity = *verbosity
}
