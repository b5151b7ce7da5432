package strategy

import (
	"context"
	"errors"
	"fmt"

	"github.com/zappabad/stockquest/internal/game"
	"github.com/zappabad/stockquest/internal/news"
	"github.com/zappabad/stockquest/internal/trader"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// MarketReader provides read-only access to the session state.
type MarketReader interface {
	Snapshot() game.Snapshot
}

// NewsReader provides read-only access to past events.
type NewsReader interface {
	RecentEvents(n int) []news.Event
}

// Strategy is the interface for trading strategies.
type Strategy interface {
	// Step is called before each day is simulated and returns the orders to
	// place at the current prices.
	Step(ctx context.Context, day int, mr MarketReader, nr NewsReader) []trader.OrderIntent
}

// Names lists the built-in strategies.
var Names = []string{"none", "cheapest", "momentum"}

// ByName returns a new instance of a built-in strategy.
func ByName(name string) (Strategy, error) {
	switch name {
	case "none":
		return Hold{}, nil
	case "cheapest":
		return &BuyCheapest{}, nil
	case "momentum":
		return NewNewsMomentum(DefaultMomentumConfig()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Hold never trades.
type Hold struct{}

// Step implements Strategy.
func (Hold) Step(context.Context, int, MarketReader, NewsReader) []trader.OrderIntent {
	return nil
}
