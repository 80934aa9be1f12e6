package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/cubeforge/internal/config"
	"github.com/Faultbox/cubeforge/internal/logger"
)

func TestLogOptions(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.LoggingConfig
		wantSize    int
		wantBackups int
	}{
		{"defaults", config.LoggingConfig{Level: "info"}, 50, 3},
		{"configured limits", config.LoggingConfig{Level: "debug", LogFile: "x.log", MaxSizeMB: 5, MaxBackups: 1}, 5, 1},
		{"only size", config.LoggingConfig{Level: "warn", MaxSizeMB: 20}, 20, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := logOptions(tt.cfg)
			if opts.Level != tt.cfg.Level || opts.File != tt.cfg.LogFile {
				t.Errorf("level/file = %q/%q", opts.Level, opts.File)
			}
			if opts.MaxSizeMB != tt.wantSize || opts.MaxBackups != tt.wantBackups {
				t.Errorf("rotation = %d MB x %d, want %d MB x %d",
					opts.MaxSizeMB, opts.MaxBackups, tt.wantSize, tt.wantBackups)
			}
		})
	}
}

func TestLogOptionsFromDefaultConfig(t *testing.T) {
	cfg := config.Default().Logging
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "cubeviewer.log")

	opts := logOptions(cfg)
	opts.Console = false
	if err := logger.Setup(opts); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer logger.Discard()

	logger.Named("viewer").Info("viewer initialized")
	logger.Named("meshgen").Debug("below the configured level")
	logger.Sync()

	content, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(content), "viewer initialized") {
		t.Errorf("log missing viewer entry:\n%s", content)
	}
	if strings.Contains(string(content), "below the configured level") {
		t.Errorf("debug entry written at level %s", cfg.Level)
	}
}
