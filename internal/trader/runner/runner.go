package runner

import (
	"context"
	"log/slog"

	"github.com/zappabad/stockquest/internal/market"
	"github.com/zappabad/stockquest/internal/news"
	"github.com/zappabad/stockquest/internal/portfolio"
	"github.com/zappabad/stockquest/internal/trader"
	"github.com/zappabad/stockquest/internal/trader/strategy"
)

// Game is the part of a session the runner drives.
type Game interface {
	strategy.MarketReader
	strategy.NewsReader
	Day() int
	Buy(symbol market.Symbol, qty int64) (portfolio.Trade, error)
	Sell(symbol market.Symbol, qty int64) (portfolio.Trade, error)
	AdvanceDay(ctx context.Context) []news.Event
}

// DayFunc is called after each simulated day.
type DayFunc func(day int, events []news.Event)

// Result summarises a run.
type Result struct {
	Days   int
	Won    bool
	Trades []portfolio.Trade
	Events []trader.TraderEvent
}

// Runner plays a strategy against a game, one day at a time.
type Runner struct {
	cfg      Config
	strategy strategy.Strategy
	game     Game
	logger   *slog.Logger
	onDay    DayFunc
}

// NewRunner creates a new Runner.
func NewRunner(cfg Config, strat strategy.Strategy, g Game, logger *slog.Logger) *Runner {
	if cfg.Days <= 0 {
		cfg.Days = DefaultConfig().Days
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:      cfg,
		strategy: strat,
		game:     g,
		logger:   logger,
	}
}

// OnDay registers fn to be called after each day.
func (r *Runner) OnDay(fn DayFunc) {
	r.onDay = fn
}

// Run simulates up to cfg.Days days. Before each day the strategy places its
// orders at the current prices. Run stops early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) Result {
	var res Result

	for i := 0; i < r.cfg.Days; i++ {
		if ctx.Err() != nil {
			r.logger.Warn("run interrupted", "day", r.game.Day())
			break
		}

		day := r.game.Day()
		for _, intent := range r.strategy.Step(ctx, day, r.game, r.game) {
			ev := r.executeIntent(day, intent)
			if ev.Trade != nil {
				res.Trades = append(res.Trades, *ev.Trade)
			}
			res.Events = append(res.Events, ev)
		}

		events := r.game.AdvanceDay(ctx)
		res.Days++
		if r.onDay != nil {
			r.onDay(day, events)
		}

		if r.cfg.StopOnWin && r.game.Snapshot().Progress.Won() {
			res.Won = true
			r.logger.Info("all milestones reached", "day", day)
			break
		}
	}

	if !res.Won {
		res.Won = r.game.Snapshot().Progress.Won()
	}
	return res
}

func (r *Runner) executeIntent(day int, intent trader.OrderIntent) trader.TraderEvent {
	var (
		trade portfolio.Trade
		err   error
	)
	switch intent.Side {
	case portfolio.SideBuy:
		trade, err = r.game.Buy(intent.Symbol, intent.Quantity)
	case portfolio.SideSell:
		trade, err = r.game.Sell(intent.Symbol, intent.Quantity)
	}

	if err != nil {
		r.logger.Debug("strategy order rejected", "day", day, "symbol", intent.Symbol, "error", err)
		return trader.TraderEvent{
			Day:     day,
			Type:    trader.TraderEventError,
			Intent:  intent,
			Message: err.Error(),
		}
	}
	return trader.TraderEvent{
		Day:    day,
		Type:   trader.TraderEventPlacedOrder,
		Intent: intent,
		Trade:  &trade,
	}
}
