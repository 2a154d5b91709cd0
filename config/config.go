// Package config loads the indicator-set configuration: a YAML file
// declaring which indicators to compute, with environment variable
// overrides layered on top.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"ta-engine/pkg/indicator"
)

// knownTypes are the indicator types the engine can compute.
var knownTypes = map[string]bool{
	"SMA":   true,
	"EMA":   true,
	"SMMA":  true,
	"RSI":   true,
	"STOCH": true,
	"ATR":   true,
}

// IndicatorSpec declares one indicator in the config file.
type IndicatorSpec struct {
	Type   string `yaml:"type"`
	Period int    `yaml:"period"`
}

// Config holds the full indicator-set configuration.
type Config struct {
	LogLevel   string          `yaml:"log_level"`
	Indicators []IndicatorSpec `yaml:"indicators"`
}

// Default returns the configuration used when no file and no overrides are
// present: the two canonical momentum indicators at period 14.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Indicators: []IndicatorSpec{
			{Type: "RSI", Period: indicator.DefaultPeriod},
			{Type: "STOCH", Period: indicator.DefaultPeriod},
		},
	}
}

// Load reads the YAML file at path (a missing file is not an error), then
// applies environment variable overrides:
//
//	TA_LOG_LEVEL    debug|info|warn|error
//	TA_INDICATORS   comma-separated TYPE:PERIOD pairs, e.g. "RSI:14,SMA:20"
//
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		// File replaces the default set wholesale.
		cfg = &Config{LogLevel: "info"}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("TA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TA_INDICATORS"); v != "" {
		specs, err := parseIndicatorList(v)
		if err != nil {
			return nil, fmt.Errorf("TA_INDICATORS: %w", err)
		}
		cfg.Indicators = specs
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if len(c.Indicators) == 0 {
		return fmt.Errorf("no indicators configured")
	}
	for _, s := range c.Indicators {
		if !knownTypes[s.Type] {
			return fmt.Errorf("unknown indicator type %q", s.Type)
		}
		if s.Period <= 0 {
			return fmt.Errorf("indicator %s: period must be positive, got %d", s.Type, s.Period)
		}
	}
	return nil
}

// Specs converts the configured indicators into engine specs.
func (c *Config) Specs() []indicator.Spec {
	specs := make([]indicator.Spec, len(c.Indicators))
	for i, s := range c.Indicators {
		specs[i] = indicator.Spec{Type: s.Type, Period: s.Period}
	}
	return specs
}

// Level returns the configured log level as a slog.Level.
func (c *Config) Level() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// parseIndicatorList parses "RSI:14,SMA:20" into specs.
func parseIndicatorList(s string) ([]IndicatorSpec, error) {
	parts := strings.Split(s, ",")
	specs := make([]IndicatorSpec, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		typ, periodStr, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("malformed entry %q, want TYPE:PERIOD", part)
		}
		period, err := strconv.Atoi(periodStr)
		if err != nil {
			return nil, fmt.Errorf("malformed period in %q: %w", part, err)
		}
		specs = append(specs, IndicatorSpec{Type: strings.ToUpper(typ), Period: period})
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("empty indicator list")
	}
	return specs, nil
}
