package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	if err := Init(Config{DataDir: dataDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(dataDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	// Warn is the default threshold
	Debug("hidden debug message")
	Warn("visible warning", "key", "value")

	data, err := os.ReadFile(filepath.Join(logDir, "sanctum.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "visible warning") {
		t.Errorf("expected warning in log file, got %q", content)
	}
	if strings.Contains(content, "hidden debug message") {
		t.Errorf("debug message should be filtered at warn level, got %q", content)
	}
}

func TestInitDebugMode(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	if err := Init(Config{Debug: true, DataDir: dataDir}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}

	Debug("debug message")

	data, err := os.ReadFile(filepath.Join(dataDir, "logs", "sanctum.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "debug message") {
		t.Errorf("expected debug message in log file")
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	Logger = nil
	// Must not panic before Init
	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}

func TestInitLevel(t *testing.T) {
	dataDir := t.TempDir()
	t.Cleanup(func() { Close() })

	if err := Init(Config{DataDir: dataDir, Level: "info"}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Info("quest started", "id", "dawn-pact")

	data, err := os.ReadFile(Path(dataDir))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "quest started") {
		t.Errorf("info message missing at info level: %q", data)
	}

	if err := Init(Config{DataDir: dataDir, Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestDebugMirrorsToStderr(t *testing.T) {
	var stderr bytes.Buffer
	t.Cleanup(func() { Close() })

	if err := Init(Config{DataDir: t.TempDir(), Debug: true, Level: "error", Stderr: &stderr}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Debug("lock acquired")
	if !strings.Contains(stderr.String(), "lock acquired") {
		t.Errorf("debug should override level and mirror to stderr, got %q", stderr.String())
	}
}

func TestCloseResetsLogger(t *testing.T) {
	if err := Init(Config{DataDir: t.TempDir()}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if Logger != nil {
		t.Error("Logger should be nil after Close")
	}
	Warn("after close")
	if err := Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
