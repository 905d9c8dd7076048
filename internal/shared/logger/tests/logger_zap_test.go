package tests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fbivlabs/fbiv-vpn/internal/shared/logger"
)

func TestNewHTTPLogger_CreatesLogFileAndWrites(t *testing.T) {
	// not parallel, the log path is shared
	logPath := filepath.Join("runtime", "logs", "http.log")

	// drop a leftover file if any
	os.Remove(logPath)

	l := logger.NewHTTPLogger()
	l.Info("test message")
	_ = l.Sync()

	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("expected log file to exist at %q, got error: %v", logPath, err)
	}

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(b)

	if len(s) == 0 {
		t.Fatalf("expected non-empty log file")
	}
	if !regexp.MustCompile(`\btest message\b`).MatchString(s) {
		t.Fatalf("expected log to contain message, got: %q", s)
	}

	// time format: "HH:MM:SS DD.MM.YYYY", e.g. 11:57:16 16.01.2026
	timeRe := regexp.MustCompile(`\b\d{2}:\d{2}:\d{2} \d{2}\.\d{2}\.\d{4}\b`)
	if !timeRe.MatchString(s) {
		t.Fatalf("expected custom time format (HH:MM:SS DD.MM.YYYY), got: %q", s)
	}

	os.Remove(logPath)
}

func TestHTTPLogger_LogRequest_WritesStructuredFields(t *testing.T) {
	logPath := filepath.Join("runtime", "logs", "http.log")
	os.Remove(logPath)

	l := logger.NewHTTPLogger()
	l.LogRequest("POST", "/api/auth/login", 400, 42, 158.5463)
	l.Sync()

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(b)

	mustContain := []string{
		"HTTP request",
		"method", "POST",
		"uri", "/api/auth/login",
		"status", "400",
		"response_size", "42",
		"duration_ms",
	}
	for _, sub := range mustContain {
		if !regexp.MustCompile(regexp.QuoteMeta(sub)).MatchString(s) {
			t.Fatalf("expected log to contain %q, got: %q", sub, s)
		}
	}

	os.Remove(logPath)
}

// messages below the configured level are dropped
func TestNewHTTPLoggerWith_LevelFilter(t *testing.T) {
	logPath := filepath.Join("runtime", "logs", "http.log")
	os.Remove(logPath)

	l := logger.NewHTTPLoggerWith("warn", "console")
	l.Info("filtered info line")
	l.Warn("kept warn line")
	_ = l.Sync()

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(b)

	if strings.Contains(s, "filtered info line") {
		t.Fatalf("expected info line to be filtered at warn level, got: %q", s)
	}
	if !strings.Contains(s, "kept warn line") {
		t.Fatalf("expected warn line in log, got: %q", s)
	}

	os.Remove(logPath)
}

// the json format writes one JSON object per line
func TestNewHTTPLoggerWith_JSONFormat(t *testing.T) {
	logPath := filepath.Join("runtime", "logs", "http.log")
	os.Remove(logPath)

	l := logger.NewHTTPLoggerWith("info", "json")
	l.Info("json marker line")
	_ = l.Sync()

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry["msg"] == "json marker line" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a JSON log entry with the marker message, got: %q", string(b))
	}

	os.Remove(logPath)
}
