package strategy

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/zappabad/stockquest/internal/market"
	"github.com/zappabad/stockquest/internal/portfolio"
	"github.com/zappabad/stockquest/internal/trader"
)

// MomentumConfig holds configuration for NewsMomentum.
type MomentumConfig struct {
	// Threshold is the minimum absolute impact that triggers a trade.
	Threshold float64
	// Allocation is the fraction of cash spent on each buy.
	Allocation float64
}

// DefaultMomentumConfig returns a MomentumConfig with reasonable defaults.
func DefaultMomentumConfig() MomentumConfig {
	return MomentumConfig{
		Threshold:  0.05,
		Allocation: 0.25,
	}
}

// lookback is the number of recent events inspected each step.
const lookback = 32

// NewsMomentum buys instruments named by strongly positive events of the
// previous day and sells whole positions named by strongly negative ones.
type NewsMomentum struct {
	cfg MomentumConfig
}

// NewNewsMomentum creates a NewsMomentum strategy.
func NewNewsMomentum(cfg MomentumConfig) *NewsMomentum {
	def := DefaultMomentumConfig()
	if cfg.Threshold <= 0 {
		cfg.Threshold = def.Threshold
	}
	if cfg.Allocation <= 0 || cfg.Allocation > 1 {
		cfg.Allocation = def.Allocation
	}
	return &NewsMomentum{cfg: cfg}
}

// Step implements Strategy.
func (s *NewsMomentum) Step(_ context.Context, day int, mr MarketReader, nr NewsReader) []trader.OrderIntent {
	score := make(map[market.Symbol]float64)
	var order []market.Symbol
	for _, ev := range nr.RecentEvents(lookback) {
		if ev.Day != day-1 {
			continue
		}
		if _, ok := score[ev.Symbol]; !ok {
			order = append(order, ev.Symbol)
		}
		score[ev.Symbol] += ev.Impact
	}
	if len(order) == 0 {
		return nil
	}

	snap := mr.Snapshot()
	held := make(map[market.Symbol]int64, len(snap.Holdings))
	for _, h := range snap.Holdings {
		held[h.Symbol] = h.Shares
	}

	var intents []trader.OrderIntent
	cash := snap.Cash
	for _, sym := range order {
		switch v := score[sym]; {
		case v <= -s.cfg.Threshold && held[sym] > 0:
			intents = append(intents, trader.OrderIntent{Symbol: sym, Side: portfolio.SideSell, Quantity: held[sym]})

		case v >= s.cfg.Threshold:
			q, ok := snap.Market.Quote(sym)
			if !ok {
				continue
			}
			budget := cash.Mul(decimal.NewFromFloat(s.cfg.Allocation))
			qty := budget.Div(portfolio.PriceOf(q.Price)).IntPart()
			if qty <= 0 {
				continue
			}
			cash = cash.Sub(portfolio.PriceOf(q.Price).Mul(decimal.NewFromInt(qty)))
			intents = append(intents, trader.OrderIntent{Symbol: sym, Side: portfolio.SideBuy, Quantity: qty})
		}
	}
	return intents
}
