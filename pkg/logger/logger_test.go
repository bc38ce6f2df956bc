package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("decode log line %q: %v", line, err)
	}
	return m
}

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.DebugLevel)

	l.Info("collected",
		String("stock_code", "005930"),
		Int("records", 3),
		Int64("amount", 1_000_000_000),
		Bool("partial", true),
		Duration("elapsed", 1500*time.Millisecond),
	)

	m := decodeLine(t, &buf)
	if m["message"] != "collected" {
		t.Fatalf("unexpected message: %v", m["message"])
	}
	if m["level"] != "info" {
		t.Fatalf("unexpected level: %v", m["level"])
	}
	if m["stock_code"] != "005930" {
		t.Fatalf("unexpected stock_code: %v", m["stock_code"])
	}
	if m["records"].(float64) != 3 {
		t.Fatalf("unexpected records: %v", m["records"])
	}
	if m["amount"].(float64) != 1e9 {
		t.Fatalf("unexpected amount: %v", m["amount"])
	}
	if m["partial"] != true {
		t.Fatalf("unexpected partial: %v", m["partial"])
	}
	if m["elapsed"].(float64) != 1500 {
		t.Fatalf("unexpected elapsed: %v", m["elapsed"])
	}
}

func TestLoggerErrorField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.DebugLevel)

	l.Warn("query failed", Error(errors.New("boom")))

	m := decodeLine(t, &buf)
	if m["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", m["error"])
	}
	if m["level"] != "warn" {
		t.Fatalf("unexpected level: %v", m["level"])
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.WarnLevel)

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.InfoLevel).With(String("run_id", "abc"))

	l.Info("done")

	m := decodeLine(t, &buf)
	if m["run_id"] != "abc" {
		t.Fatalf("expected run_id on child logger, got %v", m["run_id"])
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(&Config{Level: "loud", Output: "stdout"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNopDiscards(t *testing.T) {
	Nop().Error("nothing", Error(errors.New("x")))
}
