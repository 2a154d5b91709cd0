package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewWithWriter_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "indicator-engine", slog.LevelInfo)
	log.Info("series computed", slog.Int("values", 5))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if rec["component"] != "indicator-engine" {
		t.Errorf("component = %v, want indicator-engine", rec["component"])
	}
	if rec["msg"] != "series computed" {
		t.Errorf("msg = %v", rec["msg"])
	}
	if rec["values"] != float64(5) {
		t.Errorf("values = %v, want 5", rec["values"])
	}
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "indicator-engine", slog.LevelWarn)

	log.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info record emitted below level: %s", buf.String())
	}

	log.Warn("kept")
	if buf.Len() == 0 {
		t.Fatal("warn record not emitted")
	}
}
