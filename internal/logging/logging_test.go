package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jask/quantumdash/internal/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{}, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("expected no-op logger")
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dash.log")
	logger, err := New(config.LogConfig{File: path, Level: "info"}, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug should be disabled at info level")
	}
	logger.Info("mode switched", zap.String("mode", "arc"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"mode switched"`) || !strings.Contains(line, `"mode":"arc"`) {
		t.Fatalf("unexpected log output %q", line)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.log")
	logger, err := New(config.LogConfig{File: path, Level: "error"}, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("verbose should enable debug")
	}
}

func TestBadLevelFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.log")
	if _, err := New(config.LogConfig{File: path, Level: "shouty"}, false); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
