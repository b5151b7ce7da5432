package config

import (
	"time"

	"github.com/zappabad/stockquest/internal/game"
	"github.com/zappabad/stockquest/internal/market/pricing"
	"github.com/zappabad/stockquest/internal/milestone"
	"github.com/zappabad/stockquest/internal/news/dedup"
	"github.com/zappabad/stockquest/internal/news/generator"
)

// Default values for optional configuration fields.
const (
	DefaultStartingCash = 10000
	DefaultModel        = "gemini-2.0-flash"
	DefaultTemperature  = 0.9
	DefaultTimeout      = 5 * time.Second
	DefaultWindowDays   = dedup.DefaultSpan
	DefaultMaxPerDay    = 3
	DefaultHistory      = 100
)

// Default returns a configuration equivalent to the built-in game.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.StartingCash == 0 {
		c.StartingCash = DefaultStartingCash
	}
	if len(c.Instruments) == 0 {
		for _, ic := range game.DefaultInstruments {
			c.Instruments = append(c.Instruments, InstrumentConfig{
				Symbol:     string(ic.Symbol),
				Name:       ic.Name,
				MinPrice:   ic.MinPrice,
				MaxPrice:   ic.MaxPrice,
				Volatility: ic.Volatility,
				Trend:      ic.Trend,
			})
		}
	}
	if len(c.Milestones) == 0 {
		for _, m := range milestone.DefaultMilestones {
			c.Milestones = append(c.Milestones, MilestoneConfig{
				Threshold:   m.Threshold,
				Description: m.Description,
			})
		}
	}

	// Events defaults
	if c.Events.Model == "" {
		c.Events.Model = DefaultModel
	}
	if c.Events.Temperature == 0 {
		c.Events.Temperature = DefaultTemperature
	}
	if c.Events.Timeout == 0 {
		c.Events.Timeout = DefaultTimeout
	}
	if c.Events.WindowDays == 0 {
		c.Events.WindowDays = DefaultWindowDays
	}
	if c.Events.MaxPerDay == 0 {
		c.Events.MaxPerDay = DefaultMaxPerDay
	}
	if c.Events.History == 0 {
		c.Events.History = DefaultHistory
	}
	if len(c.Events.Templates) == 0 {
		c.Events.Templates = generator.DefaultTemplates
	}

	// Pricing defaults; an explicit sentiment_range of 0 is kept.
	def := pricing.DefaultConfig()
	if c.Pricing.TrendJitterMin == 0 && c.Pricing.TrendJitterMax == 0 {
		c.Pricing.TrendJitterMin = def.TrendJitterMin
		c.Pricing.TrendJitterMax = def.TrendJitterMax
	}
	if c.Pricing.SentimentRange == nil {
		r := def.SentimentRange
		c.Pricing.SentimentRange = &r
	}
	if c.Pricing.MinPrice == 0 {
		c.Pricing.MinPrice = def.MinPrice
	}
}
