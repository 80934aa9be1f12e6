package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func fileOptions(level, path string) Options {
	opts := DefaultOptions(level, path)
	opts.Console = false
	opts.Compress = false
	return opts
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestDiscardByDefault(t *testing.T) {
	Discard()

	for _, name := range []string{"meshgen", "viewer", "window"} {
		if Named(name).Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("%s logger enabled before Setup", name)
		}
	}
	// Must not panic without Setup.
	Debug("debug message")
	Info("info message")
	Named("renderer").Warn("warn message")
	Sugar.Infof("sugared %d", 1)
	Sync()
}

func TestComponentLoggersWriteToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "cubeforge.log")
	if err := Setup(fileOptions("debug", logFile)); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer Discard()

	Named("meshgen").Info("model created")
	Named("viewer").Info("viewer initialized")
	Named("window").Debug("window created")
	Info("unnamed entry")

	lines := strings.Split(readLog(t, logFile), "\n")
	tests := []struct {
		component string
		msg       string
	}{
		{"meshgen", "model created"},
		{"viewer", "viewer initialized"},
		{"window", "window created"},
		{"", "unnamed entry"},
	}
	for _, tt := range tests {
		found := false
		for _, line := range lines {
			if strings.Contains(line, tt.msg) && strings.Contains(line, tt.component) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no %q entry tagged %q in:\n%s", tt.msg, tt.component, strings.Join(lines, "\n"))
		}
	}
}

func TestComponentLevels(t *testing.T) {
	tests := []struct {
		level string
		want  []string
		skip  []string
	}{
		{"debug", []string{"DEBUG", "INFO", "WARN", "ERROR"}, nil},
		{"info", []string{"INFO", "WARN", "ERROR"}, []string{"DEBUG"}},
		{"warn", []string{"WARN", "ERROR"}, []string{"DEBUG", "INFO"}},
		{"error", []string{"ERROR"}, []string{"DEBUG", "INFO", "WARN"}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), tt.level+".log")
			if err := Setup(fileOptions(tt.level, logFile)); err != nil {
				t.Fatalf("Setup: %v", err)
			}
			defer Discard()

			log := Named("meshgen")
			log.Debug("face generated")
			log.Info("model created")
			log.Warn("empty face set")
			log.Error("buffer upload failed")

			content := readLog(t, logFile)
			for _, lvl := range tt.want {
				if !strings.Contains(content, lvl) {
					t.Errorf("level %s: expected %s entry", tt.level, lvl)
				}
			}
			for _, lvl := range tt.skip {
				if strings.Contains(content, lvl) {
					t.Errorf("level %s: unexpected %s entry", tt.level, lvl)
				}
			}
		})
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	defer Discard()
	if err := Setup(Options{Level: "verbose"}); err == nil {
		t.Error("expected an error for level verbose")
	}
}

func TestSetupCreatesLogDir(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "logs", "viewer.log")
	if err := Setup(fileOptions("info", logFile)); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer Discard()

	Named("viewer").Info("starting frame loop")
	if content := readLog(t, logFile); !strings.Contains(content, "viewer") {
		t.Errorf("expected component name in output, got %q", content)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("warn", "logs/cubeforge.log")
	if opts.Level != "warn" || opts.File != "logs/cubeforge.log" {
		t.Errorf("level/file = %q/%q", opts.Level, opts.File)
	}
	if !opts.Console {
		t.Error("console output should be on by default")
	}
	if opts.MaxSizeMB != 50 || opts.MaxBackups != 3 || opts.MaxAgeDays != 7 || !opts.Compress {
		t.Errorf("rotation defaults = %+v", opts)
	}
}
