// chessboard-server serves boards over HTTP and websockets, validating
// every proposed move before applying it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/server"
	"github.com/lgbarn/chessboard-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessboard-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogFile, "chessboard-server: ", log.LstdFlags)
	manager := session.NewManager(
		session.WithStartFEN(cfg.StartFEN),
		session.WithMaxPositions(cfg.MaxPositions),
		session.WithLogger(sessionLogger(cfg, logger)),
	)
	srv := server.New(cfg, manager, logger)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		logger.Printf("shutting down")
		if err := srv.Shutdown(); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.Listen(); err != nil {
		logger.Fatal(err)
	}
}

// sessionLogger returns logger when board events should be logged.
func sessionLogger(cfg *config.Config, logger *log.Logger) *log.Logger {
	if cfg.Verbosity > 1 {
		return logger
	}
	return nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessboard-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "Serves boards at /api/boards and /ws/boards/:id.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
