package config

import "time"

// Config is the on-disk configuration of a StockQuest session.
type Config struct {
	StartingCash float64            `yaml:"starting_cash"`
	Seed         int64              `yaml:"seed"`
	Instruments  []InstrumentConfig `yaml:"instruments"`
	Milestones   []MilestoneConfig  `yaml:"milestones"`
	Events       EventsConfig       `yaml:"events"`
	Pricing      PricingConfig      `yaml:"pricing"`
}

// InstrumentConfig describes one tradable instrument.
type InstrumentConfig struct {
	Symbol     string  `yaml:"symbol"`
	Name       string  `yaml:"name"`
	MinPrice   float64 `yaml:"min_price"`
	MaxPrice   float64 `yaml:"max_price"`
	Volatility float64 `yaml:"volatility"`
	Trend      float64 `yaml:"trend"`
}

// MilestoneConfig is one net-worth goal.
type MilestoneConfig struct {
	Threshold   float64 `yaml:"threshold"`
	Description string  `yaml:"description"`
}

// EventsConfig holds news generation settings.
type EventsConfig struct {
	// Enabled turns on the external text generator. When false, or when no
	// API key is set, only locally generated events are used.
	Enabled     bool          `yaml:"enabled"`
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
	WindowDays  int           `yaml:"window_days"`
	MaxPerDay   int           `yaml:"max_per_day"`
	History     int           `yaml:"history"`
	Templates   []string      `yaml:"templates"`
}

// PricingConfig tunes the price model.
type PricingConfig struct {
	TrendJitterMin float64  `yaml:"trend_jitter_min"`
	TrendJitterMax float64  `yaml:"trend_jitter_max"`
	SentimentRange *float64 `yaml:"sentiment_range"`
	MinPrice       float64  `yaml:"min_price"`
}
