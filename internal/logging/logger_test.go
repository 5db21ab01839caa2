package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "wppmockd.log")

	logger, err := New(logPath, "test", Options{Level: "debug", MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("hello from test")
	_ = logger.Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"msg":"hello from test"`, `"session":"test"`, `"pid":`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %s", line, want)
		}
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "wppmockd.log")

	logger, err := New(logPath, "test", Options{Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	data, _ := os.ReadFile(logPath)
	if strings.Contains(string(data), "quiet") {
		t.Error("info line written at warn level")
	}
	if !strings.Contains(string(data), "loud") {
		t.Error("warn line missing")
	}
}
