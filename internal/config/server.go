package config

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// ServerConfig holds settings for the HTTP and websocket service.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":3000"
	Addr string

	// AllowOrigins is the comma-separated CORS and websocket origin list
	AllowOrigins string

	// ReadBufferSize and WriteBufferSize size the websocket I/O buffers
	ReadBufferSize  int
	WriteBufferSize int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":3000",
		AllowOrigins:    "http://localhost:5173",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// Validate reports the first invalid server setting.
func (s *ServerConfig) Validate() error {
	switch {
	case s.Addr == "":
		return fmt.Errorf("listen address is empty: %w", errors.ErrInvalidConfig)
	case s.ReadBufferSize < 1 || s.WriteBufferSize < 1:
		return fmt.Errorf("websocket buffers must be positive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
