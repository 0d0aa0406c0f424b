// Package config provides configuration for the chessboard commands.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Starting position for new boards; empty means the standard layout
	StartFEN string

	// Legality worker pool
	Workers    int
	BufferSize int

	// Distinct placements remembered per board (0 = unlimited)
	MaxPositions int

	// Terminal rendering
	Color bool

	// Output streams
	Output  io.Writer
	LogFile io.Writer

	// HTTP and websocket settings
	Server *ServerConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:    1,
		Workers:      runtime.NumCPU(),
		BufferSize:   64,
		MaxPositions: 4096,
		Color:        true,
		Output:       os.Stdout,
		LogFile:      os.Stderr,
		Server:       NewServerConfig(),
	}
}

// Validate reports the first invalid setting. The returned error wraps
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Verbosity < 0 || c.Verbosity > 2:
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("workers must be positive, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	case c.BufferSize < 1:
		return fmt.Errorf("buffer size must be positive, got %d: %w", c.BufferSize, errors.ErrInvalidConfig)
	case c.MaxPositions < 0:
		return fmt.Errorf("max positions must not be negative, got %d: %w", c.MaxPositions, errors.ErrInvalidConfig)
	case c.Output == nil || c.LogFile == nil:
		return fmt.Errorf("output streams must be set: %w", errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if c.Server == nil {
		return fmt.Errorf("server settings missing: %w", errors.ErrInvalidConfig)
	}
	return c.Server.Validate()
}
