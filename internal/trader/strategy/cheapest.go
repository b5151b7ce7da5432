package strategy

import (
	"context"

	"github.com/zappabad/stockquest/internal/portfolio"
	"github.com/zappabad/stockquest/internal/trader"
)

// BuyCheapest spends all cash on the lowest priced instrument on its first
// step and holds the position afterwards.
type BuyCheapest struct {
	done bool
}

// Step implements Strategy.
func (s *BuyCheapest) Step(_ context.Context, _ int, mr MarketReader, _ NewsReader) []trader.OrderIntent {
	if s.done {
		return nil
	}
	s.done = true

	snap := mr.Snapshot()
	if len(snap.Market.Quotes) == 0 {
		return nil
	}
	cheapest := snap.Market.Quotes[0]
	for _, q := range snap.Market.Quotes[1:] {
		if q.Price < cheapest.Price {
			cheapest = q
		}
	}

	qty := snap.Cash.Div(portfolio.PriceOf(cheapest.Price)).IntPart()
	if qty <= 0 {
		return nil
	}
	return []trader.OrderIntent{{Symbol: cheapest.Symbol, Side: portfolio.SideBuy, Quantity: qty}}
}
