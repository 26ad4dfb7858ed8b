package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestParseConfig(t *testing.T) {
	t.Parallel()
	src := `
log_level = "debug"

equity {
  workers  = 4
  samples  = 5000
  progress = false
}

session {
  players = 6
  seed    = 42
  burn    = true
  streets = ["preflop", "river"]
}
`
	cfg, err := ParseConfig([]byte(src), "odds.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, 4, cfg.Equity.Workers)
	assert.Equal(t, 5000, cfg.Equity.Samples)
	assert.False(t, cfg.Equity.ShowProgress())
	assert.Equal(t, 6, cfg.Session.Players)
	assert.Equal(t, int64(42), cfg.Session.Seed)
	assert.True(t, cfg.Session.Burn)
	assert.Equal(t, []string{StreetPreflop, StreetRiver}, cfg.Session.Streets)
}

func TestParseConfigAppliesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig([]byte("session {\n  seed = 7\n}\n"), "odds.hcl")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100000, cfg.Equity.Samples)
	assert.Equal(t, 3, cfg.Session.Players)
	assert.Equal(t, int64(7), cfg.Session.Seed)
	assert.Equal(t, []string{StreetFlop, StreetTurn, StreetRiver}, cfg.Session.Streets)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "odds.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "warn"`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, cfg.Level())
}

func TestParseConfigRejectsBadSyntax(t *testing.T) {
	t.Parallel()
	_, err := ParseConfig([]byte("equity {"), "odds.hcl")
	assert.Error(t, err)

	_, err = ParseConfig([]byte(`unknown = 1`), "odds.hcl")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"negative workers", func(c *Config) { c.Equity.Workers = -1 }},
		{"zero samples", func(c *Config) { c.Equity.Samples = 0 }},
		{"one player", func(c *Config) { c.Session.Players = 1 }},
		{"eleven players", func(c *Config) { c.Session.Players = 11 }},
		{"unknown street", func(c *Config) { c.Session.Streets = []string{"showdown"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseConfigPartialEquityBlockKeepsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig([]byte("equity {\n  workers = 4\n}\n"), "odds.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 4, cfg.Equity.Workers)
	assert.Equal(t, 100000, cfg.Equity.Samples)
	require.NotNil(t, cfg.Equity.Progress)
	assert.True(t, cfg.Equity.ShowProgress())
	assert.Equal(t, DefaultConfig().Equity.ShowProgress(), cfg.Equity.ShowProgress())
}
