package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ta.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	specs := cfg.Specs()
	if len(specs) != 2 || specs[0].Type != "RSI" || specs[1].Type != "STOCH" {
		t.Fatalf("default specs = %+v", specs)
	}
	if specs[0].Period != 14 || specs[1].Period != 14 {
		t.Errorf("default periods = %d, %d, want 14, 14", specs[0].Period, specs[1].Period)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
indicators:
  - type: RSI
    period: 21
  - type: SMA
    period: 50
  - type: ATR
    period: 14
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level = %v, want debug", cfg.Level())
	}
	specs := cfg.Specs()
	if len(specs) != 3 {
		t.Fatalf("got %d specs, want 3", len(specs))
	}
	if specs[0].Name() != "RSI_21" || specs[1].Name() != "SMA_50" || specs[2].Name() != "ATR_14" {
		t.Errorf("spec names = %s, %s, %s", specs[0].Name(), specs[1].Name(), specs[2].Name())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
indicators:
  - type: RSI
    period: 14
`)
	t.Setenv("TA_LOG_LEVEL", "warn")
	t.Setenv("TA_INDICATORS", "stoch:14, ema:9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Level() != slog.LevelWarn {
		t.Errorf("Level = %v, want warn", cfg.Level())
	}
	specs := cfg.Specs()
	if len(specs) != 2 || specs[0].Name() != "STOCH_14" || specs[1].Name() != "EMA_9" {
		t.Fatalf("specs = %+v", specs)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown type": `
indicators:
  - type: VWAP
    period: 14
`,
		"bad period": `
indicators:
  - type: RSI
    period: 0
`,
		"bad level": `
log_level: loud
indicators:
  - type: RSI
    period: 14
`,
		"empty set": `
log_level: info
`,
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoad_MalformedEnvList(t *testing.T) {
	t.Setenv("TA_INDICATORS", "RSI-14")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for malformed TA_INDICATORS")
	}
}
