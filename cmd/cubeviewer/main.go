// Package main is the entry point for the CubeForge viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeforge/internal/config"
	"github.com/Faultbox/cubeforge/internal/logger"
	"github.com/Faultbox/cubeforge/internal/viewer"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs first.
func run() int {
	// Flags first so -config can pick the file.
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Setup(logOptions(cfg.Logging)); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== CubeForge Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		return 1
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}

// logOptions applies the configured rotation limits over the defaults.
func logOptions(cfg config.LoggingConfig) logger.Options {
	opts := logger.DefaultOptions(cfg.Level, cfg.LogFile)
	if cfg.MaxSizeMB > 0 {
		opts.MaxSizeMB = cfg.MaxSizeMB
	}
	if cfg.MaxBackups > 0 {
		opts.MaxBackups = cfg.MaxBackups
	}
	return opts
}
