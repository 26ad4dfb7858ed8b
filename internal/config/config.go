// Package config loads poker-odds settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Street names accepted in the session streets list.
const (
	StreetPreflop = "preflop"
	StreetFlop    = "flop"
	StreetTurn    = "turn"
	StreetRiver   = "river"
)

// Config represents the complete configuration file.
type Config struct {
	LogLevel string           `hcl:"log_level,optional"`
	Equity   *EquitySettings  `hcl:"equity,block"`
	Session  *SessionSettings `hcl:"session,block"`
}

// EquitySettings tunes the equity calculator.
type EquitySettings struct {
	Workers  int   `hcl:"workers,optional"`
	Samples  int   `hcl:"samples,optional"`
	Progress *bool `hcl:"progress,optional"`
}

// ShowProgress reports whether long enumerations draw a progress bar.
func (e *EquitySettings) ShowProgress() bool {
	return e.Progress == nil || *e.Progress
}

// SessionSettings controls simulated deals.
type SessionSettings struct {
	Players int      `hcl:"players,optional"`
	Seed    int64    `hcl:"seed,optional"`
	Burn    bool     `hcl:"burn,optional"`
	Streets []string `hcl:"streets,optional"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Equity: &EquitySettings{
			Workers:  0,
			Samples:  100000,
			Progress: ptr(true),
		},
		Session: &SessionSettings{
			Players: 3,
			Streets: []string{StreetFlop, StreetTurn, StreetRiver},
		},
	}
}

// LoadConfig loads configuration from an HCL file, returning defaults when the
// file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(src, filename)
}

// ParseConfig decodes HCL source and applies defaults for missing values.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Equity == nil {
		c.Equity = defaults.Equity
	}
	if c.Equity.Samples == 0 {
		c.Equity.Samples = defaults.Equity.Samples
	}
	if c.Equity.Progress == nil {
		c.Equity.Progress = defaults.Equity.Progress
	}
	if c.Session == nil {
		c.Session = defaults.Session
	}
	if c.Session.Players == 0 {
		c.Session.Players = defaults.Session.Players
	}
	if len(c.Session.Streets) == 0 {
		c.Session.Streets = defaults.Session.Streets
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Equity.Workers < 0 {
		return fmt.Errorf("equity: workers cannot be negative")
	}
	if c.Equity.Samples <= 0 {
		return fmt.Errorf("equity: samples must be positive")
	}
	if c.Session.Players < 2 || c.Session.Players > 10 {
		return fmt.Errorf("session: players must be between 2 and 10, got %d", c.Session.Players)
	}

	valid := map[string]bool{
		StreetPreflop: true,
		StreetFlop:    true,
		StreetTurn:    true,
		StreetRiver:   true,
	}
	for _, street := range c.Session.Streets {
		if !valid[street] {
			return fmt.Errorf("session: unknown street %q", street)
		}
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func ptr[T any](v T) *T {
	return &v
}
