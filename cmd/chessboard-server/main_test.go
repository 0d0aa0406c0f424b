package main

import (
	"io"
	"log"
	"runtime"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/config"
)

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Server.Addr != ":3000" {
			t.Errorf("Addr = %q; want :3000", cfg.Server.Addr)
		}
		if cfg.Workers != runtime.NumCPU() {
			t.Errorf("Workers = %d; want %d", cfg.Workers, runtime.NumCPU())
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		defer saveRestoreString(addr, "127.0.0.1:9000")()
		defer saveRestoreString(origins, "*")()
		defer saveRestoreInt(workers, 3)()
		defer saveRestoreInt(maxPositions, 0)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.AllowOrigins != "*" {
			t.Errorf("server = %+v", cfg.Server)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d; want 3", cfg.Workers)
		}
		if cfg.MaxPositions != 0 {
			t.Errorf("MaxPositions = %d; want 0", cfg.MaxPositions)
		}
	})
}

func TestSessionLogger(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	cfg := config.NewConfig()

	if sessionLogger(cfg, logger) != nil {
		t.Error("verbosity 1 should not log board events")
	}
	cfg.Verbosity = 2
	if sessionLogger(cfg, logger) != logger {
		t.Error("verbosity 2 should log board events")
	}
}
