package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewWriterJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWriter(&buf, true, false)

	log.Debug("hidden step")
	log.Info("analysis finished", zap.Float64("score", 42.5))
	_ = log.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the info entry, got %d lines: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}

	if entry["step"] != "analysis finished" || entry["level"] != "info" || entry["logger"] != "cv-analyzer" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["score"] != 42.5 {
		t.Fatalf("expected score field, got %v", entry["score"])
	}
	if _, ok := entry["caller"]; ok {
		t.Fatalf("caller is only added in debug mode: %v", entry)
	}
}

func TestNewWriterDebugConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWriter(&buf, false, true)

	log.Debug("texts normalized", zap.Int("resume_length", 10))
	_ = log.Sync()

	out := buf.String()
	for _, want := range []string{"debug", "texts normalized", "resume_length", "logger_test.go"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	log, err := New(false, false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if log.Core().Enabled(zap.DebugLevel) {
		t.Fatal("debug level must be disabled by default")
	}
}
