package config

import (
	"github.com/shopspring/decimal"
	"github.com/zappabad/stockquest/internal/game"
	"github.com/zappabad/stockquest/internal/market"
	"github.com/zappabad/stockquest/internal/market/pricing"
	"github.com/zappabad/stockquest/internal/milestone"
	"github.com/zappabad/stockquest/internal/news/generator"
	"github.com/zappabad/stockquest/internal/news/textgen"
)

// GameConfig converts the file configuration into a game.Config.
func (c *Config) GameConfig() game.Config {
	cfg := game.Config{
		StartingCash:    decimal.NewFromFloat(c.StartingCash),
		Seed:            c.Seed,
		MaxEventsPerDay: c.Events.MaxPerDay,
		EventHistory:    c.Events.History,
		WindowSpan:      c.Events.WindowDays,
		Pricing: pricing.Config{
			TrendJitterMin: c.Pricing.TrendJitterMin,
			TrendJitterMax: c.Pricing.TrendJitterMax,
			MinPrice:       c.Pricing.MinPrice,
		},
		Events: generator.Config{
			Timeout:   c.Events.Timeout,
			Templates: c.Events.Templates,
		},
	}
	if c.Pricing.SentimentRange != nil {
		cfg.Pricing.SentimentRange = *c.Pricing.SentimentRange
		cfg.Pricing.DisableSentiment = *c.Pricing.SentimentRange == 0
	}
	for _, ic := range c.Instruments {
		cfg.Instruments = append(cfg.Instruments, game.InstrumentConfig{
			Symbol:     market.Symbol(ic.Symbol),
			Name:       ic.Name,
			MinPrice:   ic.MinPrice,
			MaxPrice:   ic.MaxPrice,
			Volatility: ic.Volatility,
			Trend:      ic.Trend,
		})
	}
	for _, m := range c.Milestones {
		cfg.Milestones = append(cfg.Milestones, milestone.Milestone{
			Threshold:   m.Threshold,
			Description: m.Description,
		})
	}
	return cfg
}

// GeminiConfig returns the text generator settings.
func (c *Config) GeminiConfig() textgen.GeminiConfig {
	return textgen.GeminiConfig{
		APIKey:      c.Events.APIKey,
		Model:       c.Events.Model,
		Temperature: c.Events.Temperature,
	}
}
