// Package pricing evolves instrument prices one tick at a time.
package pricing

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/zappabad/stockquest/internal/market"
)

// Step reports the outcome of one price update.
type Step struct {
	Symbol   market.Symbol
	Previous float64
	Price    float64
	// Change is the combined fractional change before flooring.
	Change float64
	// Floored is set when the raw price fell below the configured minimum.
	Floored bool
}

// Model computes next prices from trend, volatility, sentiment and the
// shared event impact of the tick.
type Model struct {
	cfg    Config
	rng    *rand.Rand
	now    func() time.Time
	logger *slog.Logger
}

// New creates a price model drawing from rng.
func New(cfg Config, rng *rand.Rand, logger *slog.Logger) *Model {
	def := DefaultConfig()
	if cfg.TrendJitterMin == 0 && cfg.TrendJitterMax == 0 {
		cfg.TrendJitterMin = def.TrendJitterMin
		cfg.TrendJitterMax = def.TrendJitterMax
	}
	switch {
	case cfg.DisableSentiment:
		cfg.SentimentRange = 0
	case cfg.SentimentRange <= 0:
		cfg.SentimentRange = def.SentimentRange
	}
	if cfg.MinPrice <= 0 {
		cfg.MinPrice = def.MinPrice
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{
		cfg:    cfg,
		rng:    rng,
		now:    time.Now,
		logger: logger,
	}
}

// SetClock replaces the source of history timestamps.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// NextPrice returns the next price for inst without recording it.
func (m *Model) NextPrice(inst *market.Instrument, eventImpact float64) float64 {
	price, _, _ := m.next(inst, eventImpact)
	return price
}

// Apply computes the next price for inst and appends it to its history.
func (m *Model) Apply(inst *market.Instrument, eventImpact float64, day int) Step {
	prev := inst.Price()
	price, change, floored := m.next(inst, eventImpact)
	inst.Append(price, m.now(), day)

	if floored {
		m.logger.Warn("price floored",
			"symbol", inst.Symbol(),
			"day", day,
			"change", change,
			"floor", m.cfg.MinPrice,
		)
	}

	return Step{
		Symbol:   inst.Symbol(),
		Previous: prev,
		Price:    price,
		Change:   change,
		Floored:  floored,
	}
}

func (m *Model) next(inst *market.Instrument, eventImpact float64) (float64, float64, bool) {
	trend := inst.Trend() * m.uniform(m.cfg.TrendJitterMin, m.cfg.TrendJitterMax)
	noise := m.uniform(-inst.Volatility(), inst.Volatility())
	sentiment := m.uniform(-m.cfg.SentimentRange, m.cfg.SentimentRange)

	change := trend + noise + sentiment + eventImpact
	price := inst.Price() * (1 + change)
	if price < m.cfg.MinPrice {
		return m.cfg.MinPrice, change, true
	}
	return price, change, false
}

func (m *Model) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*m.rng.Float64()
}
