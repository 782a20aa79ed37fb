package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogFile(t *testing.T) {
	dir := t.TempDir()

	if err := Init(Config{Debug: false, ConfigDir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Logger == nil {
		t.Fatal("expected global logger to be set")
	}

	Warn("test warning", "key", "value")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "goalkeeper.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "test warning") {
		t.Errorf("log file missing warning entry: %q", string(data))
	}
}

func TestInfoLoggedAtDebugLevel(t *testing.T) {
	dir := t.TempDir()

	if err := Init(Config{Debug: true, ConfigDir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("storage selected", "config", "goalkeeper.json")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "goalkeeper.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "storage selected") {
		t.Errorf("log file missing info entry: %q", string(data))
	}
}

func TestPackageFuncsAreNilSafe(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// Must not panic without an initialized logger
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
}
