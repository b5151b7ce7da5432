package game

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zappabad/stockquest/internal/market"
	"github.com/zappabad/stockquest/internal/market/pricing"
	"github.com/zappabad/stockquest/internal/milestone"
	"github.com/zappabad/stockquest/internal/news/dedup"
	"github.com/zappabad/stockquest/internal/news/generator"
)

// InstrumentConfig describes an instrument created at session start. Its
// initial price is drawn uniformly from [MinPrice, MaxPrice].
type InstrumentConfig struct {
	Symbol     market.Symbol
	Name       string
	MinPrice   float64
	MaxPrice   float64
	Volatility float64
	Trend      float64
}

// Config holds configuration for the game.
type Config struct {
	// Instruments is the list of instruments to create in the market.
	Instruments []InstrumentConfig
	// Milestones is the net-worth goal ladder.
	Milestones []milestone.Milestone
	// StartingCash is the player's initial cash.
	StartingCash decimal.Decimal
	// Seed seeds the session's random source. Zero picks a time-based seed.
	Seed int64
	// MaxEventsPerDay bounds the number of events drawn each day.
	MaxEventsPerDay int
	// EventHistory is the capacity of the event history ring buffer.
	EventHistory int
	// WindowSpan is the number of days an event text stays reserved.
	WindowSpan int
	// Pricing is the configuration for the price model.
	Pricing pricing.Config
	// Events is the configuration for the event generator.
	Events generator.Config
	// Clock stamps price history. Nil means time.Now.
	Clock func() time.Time
}

// DefaultInstruments is the built-in market.
var DefaultInstruments = []InstrumentConfig{
	{Symbol: "NOVA", Name: "TechNova", MinPrice: 80, MaxPrice: 160, Volatility: 0.04, Trend: 0.002},
	{Symbol: "HELI", Name: "Helios Energy", MinPrice: 40, MaxPrice: 90, Volatility: 0.03, Trend: 0.001},
	{Symbol: "LEAF", Name: "GreenLeaf Foods", MinPrice: 20, MaxPrice: 60, Volatility: 0.015, Trend: 0.0005},
	{Symbol: "SMMT", Name: "Summit Financial", MinPrice: 60, MaxPrice: 120, Volatility: 0.02, Trend: 0.001},
	{Symbol: "VELO", Name: "Velocity Motors", MinPrice: 150, MaxPrice: 350, Volatility: 0.06, Trend: -0.001},
	{Symbol: "WAT", Name: "Waterworks Utilities", MinPrice: 30, MaxPrice: 70, Volatility: 0.01, Trend: 0.0003},
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Instruments:     DefaultInstruments,
		Milestones:      milestone.DefaultMilestones,
		StartingCash:    decimal.NewFromInt(10000),
		MaxEventsPerDay: 3,
		EventHistory:    100,
		WindowSpan:      dedup.DefaultSpan,
		Pricing:         pricing.DefaultConfig(),
		Events:          generator.DefaultConfig(),
	}
}
