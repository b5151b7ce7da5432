package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zappabad/stockquest/internal/game"
	"github.com/zappabad/stockquest/internal/milestone"
	"github.com/zappabad/stockquest/internal/news/generator"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
starting_cash: 2500
seed: 7
instruments:
  - symbol: ACME
    name: Acme Corp
    min_price: 10
    max_price: 20
    volatility: 0.02
    trend: 0.001
milestones:
  - threshold: 5000
    description: Double up
events:
  enabled: true
  timeout: 2s
  window_days: 10
`
	cfg, err := Load(writeTempFile(t, yaml))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StartingCash != 2500 {
		t.Errorf("StartingCash = %v, want 2500", cfg.StartingCash)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if len(cfg.Instruments) != 1 || cfg.Instruments[0].Symbol != "ACME" {
		t.Fatalf("Instruments = %+v", cfg.Instruments)
	}
	if cfg.Instruments[0].MaxPrice != 20 {
		t.Errorf("MaxPrice = %v, want 20", cfg.Instruments[0].MaxPrice)
	}
	if !cfg.Events.Enabled {
		t.Error("Events.Enabled = false, want true")
	}
	if cfg.Events.Timeout != 2*time.Second {
		t.Errorf("Events.Timeout = %v, want 2s", cfg.Events.Timeout)
	}
	if cfg.Events.WindowDays != 10 {
		t.Errorf("Events.WindowDays = %d, want 10", cfg.Events.WindowDays)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "secret123")

	cfg, err := Load(writeTempFile(t, "events:\n  api_key: ${TEST_GEMINI_KEY}\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Events.APIKey != "secret123" {
		t.Errorf("Events.APIKey = %q, want %q", cfg.Events.APIKey, "secret123")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config file") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeTempFile(t, "instruments: [unclosed"))
	if err == nil || !strings.Contains(err.Error(), "parse config yaml") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(writeTempFile(t, "seed: 1\n"))
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.StartingCash != DefaultStartingCash {
		t.Errorf("StartingCash = %v, want %v", cfg.StartingCash, DefaultStartingCash)
	}
	if len(cfg.Instruments) != len(game.DefaultInstruments) {
		t.Errorf("len(Instruments) = %d, want %d", len(cfg.Instruments), len(game.DefaultInstruments))
	}
	if len(cfg.Milestones) != len(milestone.DefaultMilestones) {
		t.Errorf("len(Milestones) = %d, want %d", len(cfg.Milestones), len(milestone.DefaultMilestones))
	}
	if cfg.Events.Model != DefaultModel {
		t.Errorf("Events.Model = %q, want %q", cfg.Events.Model, DefaultModel)
	}
	if cfg.Events.Timeout != DefaultTimeout {
		t.Errorf("Events.Timeout = %v, want %v", cfg.Events.Timeout, DefaultTimeout)
	}
	if cfg.Events.WindowDays != DefaultWindowDays {
		t.Errorf("Events.WindowDays = %d, want %d", cfg.Events.WindowDays, DefaultWindowDays)
	}
	if cfg.Events.MaxPerDay != DefaultMaxPerDay {
		t.Errorf("Events.MaxPerDay = %d, want %d", cfg.Events.MaxPerDay, DefaultMaxPerDay)
	}
	if len(cfg.Events.Templates) != len(generator.DefaultTemplates) {
		t.Errorf("len(Events.Templates) = %d, want %d", len(cfg.Events.Templates), len(generator.DefaultTemplates))
	}
	if cfg.Pricing.SentimentRange == nil || *cfg.Pricing.SentimentRange != 0.02 {
		t.Errorf("Pricing.SentimentRange = %v, want 0.02", cfg.Pricing.SentimentRange)
	}
}

func TestLoadKeepsZeroSentiment(t *testing.T) {
	cfg, err := LoadWithDefaults(writeTempFile(t, "pricing:\n  sentiment_range: 0\n"))
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}
	if cfg.Pricing.SentimentRange == nil || *cfg.Pricing.SentimentRange != 0 {
		t.Errorf("Pricing.SentimentRange = %v, want 0", cfg.Pricing.SentimentRange)
	}
	if !cfg.GameConfig().Pricing.DisableSentiment {
		t.Error("GameConfig().Pricing.DisableSentiment = false, want true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative cash", func(c *Config) { c.StartingCash = -1 }, "starting_cash"},
		{"no instruments", func(c *Config) { c.Instruments = nil }, "instruments must not be empty"},
		{"missing symbol", func(c *Config) { c.Instruments[0].Symbol = "" }, "instruments[0].symbol is required"},
		{"zero min price", func(c *Config) { c.Instruments[1].MinPrice = 0 }, "instruments[1].min_price"},
		{"inverted range", func(c *Config) { c.Instruments[0].MaxPrice = 1 }, "cannot exceed max_price"},
		{"duplicate symbol", func(c *Config) { c.Instruments[1].Symbol = c.Instruments[0].Symbol }, "duplicated"},
		{"bad threshold", func(c *Config) { c.Milestones[0].Threshold = 0 }, "milestones[0].threshold"},
		{"duplicate threshold", func(c *Config) { c.Milestones[1].Threshold = c.Milestones[0].Threshold }, "duplicated"},
		{"zero window", func(c *Config) { c.Events.WindowDays = 0 }, "events.window_days"},
		{"zero max per day", func(c *Config) { c.Events.MaxPerDay = 0 }, "events.max_per_day"},
		{"inverted jitter", func(c *Config) { c.Pricing.TrendJitterMin = 2 }, "trend_jitter_min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAndValidate(t *testing.T) {
	yaml := `
instruments:
  - symbol: ACME
    min_price: 10
    max_price: 5
`
	_, err := LoadAndValidate(writeTempFile(t, yaml))
	if err == nil || !strings.Contains(err.Error(), "validate config") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGameConfig(t *testing.T) {
	cfg := Default()
	cfg.Seed = 99

	gc := cfg.GameConfig()
	if gc.Seed != 99 {
		t.Errorf("Seed = %d, want 99", gc.Seed)
	}
	if !gc.StartingCash.Equal(game.DefaultConfig().StartingCash) {
		t.Errorf("StartingCash = %s", gc.StartingCash)
	}
	if len(gc.Instruments) != len(game.DefaultInstruments) {
		t.Fatalf("len(Instruments) = %d", len(gc.Instruments))
	}
	if gc.Instruments[0] != game.DefaultInstruments[0] {
		t.Errorf("Instruments[0] = %+v, want %+v", gc.Instruments[0], game.DefaultInstruments[0])
	}

	g, err := game.NewGame(gc, nil, nil)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if g.Day() != 1 {
		t.Errorf("Day() = %d, want 1", g.Day())
	}
}
