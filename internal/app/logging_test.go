package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"Warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "test"}), &buf
}

func TestLogger_Format(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelDebug)
	logger.Info("wrote %d bytes", 2)

	line := buf.String()
	if !strings.Contains(line, "[INFO] test: wrote 2 bytes") {
		t.Errorf("unexpected line %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("line should end with a newline")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	out := buf.String()
	for _, skipped := range []string{"[DEBUG]", "[INFO]"} {
		if strings.Contains(out, skipped) {
			t.Errorf("output should not contain %s: %q", skipped, out)
		}
	}
	for _, kept := range []string{"[WARN]", "[ERROR]"} {
		if !strings.Contains(out, kept) {
			t.Errorf("output should contain %s: %q", kept, out)
		}
	}
}

func TestLogger_Fields(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.WithFields(map[string]any{"path": "out.txt", "bytes": 2}).
		WithComponent("command").
		Info("write")

	if !strings.Contains(buf.String(), "{bytes=2, component=command, path=out.txt}") {
		t.Errorf("fields should be sorted by key: %q", buf.String())
	}
}

func TestLogger_WithFieldDoesNotModifyParent(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)
	_ = logger.WithField("k", "v")

	logger.Info("plain")
	if strings.Contains(buf.String(), "k=v") {
		t.Error("parent logger should not gain child fields")
	}
}

func TestOpenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe.log")

	logger, closer, err := OpenLogger(LogLevelInfo, path)
	if err != nil {
		t.Fatalf("OpenLogger: %v", err)
	}
	logger.Info("started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[INFO] scribe: started") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenLogger_NoPath(t *testing.T) {
	logger, closer, err := OpenLogger(LogLevelDebug, "")
	if err != nil {
		t.Fatalf("OpenLogger: %v", err)
	}
	logger.Error("discarded")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestOpenLogger_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scribe.log")
	if _, _, err := OpenLogger(LogLevelInfo, path); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()

	if cfg.Level != LogLevelInfo {
		t.Errorf("Level = %v, want INFO", cfg.Level)
	}
	if cfg.Prefix != "scribe" {
		t.Errorf("Prefix = %q, want scribe", cfg.Prefix)
	}
}
