package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.StartingCash < 0 {
		return errors.New("starting_cash must be >= 0")
	}
	if len(c.Instruments) == 0 {
		return errors.New("instruments must not be empty")
	}

	seen := make(map[string]bool, len(c.Instruments))
	for i, ic := range c.Instruments {
		prefix := fmt.Sprintf("instruments[%d]", i)
		if err := ic.validate(prefix); err != nil {
			return err
		}
		if seen[ic.Symbol] {
			return fmt.Errorf("%s.symbol %q is duplicated", prefix, ic.Symbol)
		}
		seen[ic.Symbol] = true
	}

	thresholds := make(map[float64]bool, len(c.Milestones))
	for i, m := range c.Milestones {
		if !(m.Threshold > 0) || math.IsInf(m.Threshold, 0) {
			return fmt.Errorf("milestones[%d].threshold must be > 0, got %v", i, m.Threshold)
		}
		if thresholds[m.Threshold] {
			return fmt.Errorf("milestones[%d].threshold %v is duplicated", i, m.Threshold)
		}
		thresholds[m.Threshold] = true
	}

	if c.Events.Timeout < 0 {
		return errors.New("events.timeout must be >= 0")
	}
	if c.Events.WindowDays < 1 {
		return errors.New("events.window_days must be >= 1")
	}
	if c.Events.MaxPerDay < 1 {
		return errors.New("events.max_per_day must be >= 1")
	}
	if c.Events.History < 1 {
		return errors.New("events.history must be >= 1")
	}

	if c.Pricing.TrendJitterMin > c.Pricing.TrendJitterMax {
		return fmt.Errorf("pricing.trend_jitter_min (%v) cannot exceed trend_jitter_max (%v)",
			c.Pricing.TrendJitterMin, c.Pricing.TrendJitterMax)
	}
	if c.Pricing.SentimentRange != nil && *c.Pricing.SentimentRange < 0 {
		return errors.New("pricing.sentiment_range must be >= 0")
	}
	if c.Pricing.MinPrice < 0 {
		return errors.New("pricing.min_price must be >= 0")
	}
	return nil
}

func (ic *InstrumentConfig) validate(prefix string) error {
	if ic.Symbol == "" {
		return fmt.Errorf("%s.symbol is required", prefix)
	}
	if !(ic.MinPrice > 0) {
		return fmt.Errorf("%s.min_price must be > 0", prefix)
	}
	if ic.MaxPrice < ic.MinPrice {
		return fmt.Errorf("%s.min_price (%v) cannot exceed max_price (%v)", prefix, ic.MinPrice, ic.MaxPrice)
	}
	if ic.Volatility < 0 {
		return fmt.Errorf("%s.volatility must be >= 0", prefix)
	}
	return nil
}
