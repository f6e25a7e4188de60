package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}

	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(&buf, "info", FormatJSON)
	if err != nil {
		t.Fatal(err)
	}

	log.Debug("hidden")
	log.Info("analyzed", zap.Int("samples", 100))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}

	if entry["msg"] != "analyzed" || entry["samples"] != float64(100) {
		t.Fatalf("entry %v", entry)
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(&buf, "debug", "")
	if err != nil {
		t.Fatal(err)
	}

	log.Debug("designed", zap.String("type", "LOWPASS"))

	if !strings.Contains(buf.String(), "DEBUG") || !strings.Contains(buf.String(), "LOWPASS") {
		t.Fatalf("output %q", buf.String())
	}

	if _, err := New(&buf, "info", "xml"); err == nil {
		t.Fatal("expected format error")
	}
}
