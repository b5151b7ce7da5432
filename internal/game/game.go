package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zappabad/stockquest/internal/market"
	"github.com/zappabad/stockquest/internal/market/pricing"
	marketview "github.com/zappabad/stockquest/internal/market/view"
	"github.com/zappabad/stockquest/internal/milestone"
	"github.com/zappabad/stockquest/internal/news"
	"github.com/zappabad/stockquest/internal/news/dedup"
	"github.com/zappabad/stockquest/internal/news/generator"
	"github.com/zappabad/stockquest/internal/news/textgen"
	newsview "github.com/zappabad/stockquest/internal/news/view"
	"github.com/zappabad/stockquest/internal/portfolio"
)

var (
	ErrUnknownSymbol     = errors.New("unknown symbol")
	ErrNoInstruments     = errors.New("no instruments configured")
	ErrDuplicateSymbol   = errors.New("duplicate symbol")
	ErrInvalidPriceRange = errors.New("invalid initial price range")
	ErrNegativeStartCash = errors.New("starting cash must not be negative")
)

// Game owns one player's session: the market, the portfolio and the news
// state. Sessions share nothing, so several games may run side by side.
type Game struct {
	ID uuid.UUID

	cfg    Config
	rng    *rand.Rand
	logger *slog.Logger

	instruments []*market.Instrument
	bySymbol    map[market.Symbol]*market.Instrument
	portfolio   *portfolio.Portfolio
	milestones  milestone.Table
	window      *dedup.Window
	events      *newsview.NewsView
	pricing     *pricing.Model
	generator   *generator.Generator

	mu  sync.Mutex
	day int
}

// NewGame creates a new session. text may be nil to use only locally
// generated events.
func NewGame(cfg Config, text textgen.Generator, logger *slog.Logger) (*Game, error) {
	def := DefaultConfig()
	if cfg.MaxEventsPerDay <= 0 {
		cfg.MaxEventsPerDay = def.MaxEventsPerDay
	}
	if cfg.EventHistory <= 0 {
		cfg.EventHistory = def.EventHistory
	}
	if cfg.WindowSpan <= 0 {
		cfg.WindowSpan = def.WindowSpan
	}
	if len(cfg.Milestones) == 0 {
		cfg.Milestones = def.Milestones
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.StartingCash.IsNegative() {
		return nil, ErrNegativeStartCash
	}
	if len(cfg.Instruments) == 0 {
		return nil, ErrNoInstruments
	}
	if logger == nil {
		logger = slog.Default()
	}

	table, err := milestone.NewTable(cfg.Milestones...)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	logger = logger.With("session", id.String())
	rng := rand.New(rand.NewSource(cfg.Seed))

	g := &Game{
		ID:         id,
		cfg:        cfg,
		rng:        rng,
		logger:     logger,
		bySymbol:   make(map[market.Symbol]*market.Instrument, len(cfg.Instruments)),
		portfolio:  portfolio.New(cfg.StartingCash),
		milestones: table,
		window:     dedup.NewWindow(cfg.WindowSpan, 1),
		events:     newsview.NewNewsView(cfg.EventHistory),
		pricing:    pricing.New(cfg.Pricing, rng, logger),
		generator:  generator.New(cfg.Events, text, rng, logger),
		day:        1,
	}
	g.pricing.SetClock(cfg.Clock)

	now := cfg.Clock()
	for _, ic := range cfg.Instruments {
		if _, ok := g.bySymbol[ic.Symbol]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, ic.Symbol)
		}
		if !(ic.MinPrice > 0) || ic.MaxPrice < ic.MinPrice {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPriceRange, ic.Symbol)
		}
		price := ic.MinPrice + (ic.MaxPrice-ic.MinPrice)*rng.Float64()
		price = math.Max(ic.MinPrice, math.Round(price*100)/100)

		inst, err := market.NewInstrument(ic.Symbol, ic.Name, price, ic.Volatility, ic.Trend, now)
		if err != nil {
			return nil, fmt.Errorf("instrument %s: %w", ic.Symbol, err)
		}
		g.instruments = append(g.instruments, inst)
		g.bySymbol[ic.Symbol] = inst
	}

	logger.Info("game created",
		"seed", cfg.Seed,
		"instruments", len(g.instruments),
		"cash", cfg.StartingCash.StringFixed(2),
	)
	return g, nil
}

// Day returns the day that the next AdvanceDay call will simulate.
func (g *Game) Day() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.day
}

// Symbols returns the instrument symbols in market order.
func (g *Game) Symbols() []market.Symbol {
	out := make([]market.Symbol, len(g.instruments))
	for i, inst := range g.instruments {
		out[i] = inst.Symbol()
	}
	return out
}

// Milestones returns the session's milestone table.
func (g *Game) Milestones() milestone.Table {
	return g.milestones
}

// Buy purchases qty shares of symbol at its current price.
func (g *Game) Buy(symbol market.Symbol, qty int64) (portfolio.Trade, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	inst, ok := g.bySymbol[symbol]
	if !ok {
		return portfolio.Trade{}, ErrUnknownSymbol
	}
	trade, err := g.portfolio.Buy(inst, qty)
	g.logTrade(portfolio.SideBuy, symbol, qty, trade, err)
	return trade, err
}

// Sell sells qty shares of symbol at its current price.
func (g *Game) Sell(symbol market.Symbol, qty int64) (portfolio.Trade, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	inst, ok := g.bySymbol[symbol]
	if !ok {
		return portfolio.Trade{}, ErrUnknownSymbol
	}
	trade, err := g.portfolio.Sell(inst, qty)
	g.logTrade(portfolio.SideSell, symbol, qty, trade, err)
	return trade, err
}

func (g *Game) logTrade(side portfolio.Side, symbol market.Symbol, qty int64, trade portfolio.Trade, err error) {
	if err != nil {
		g.logger.Info("trade rejected", "side", side, "symbol", symbol, "qty", qty, "error", err)
		return
	}
	g.logger.Info("trade accepted",
		"side", side,
		"symbol", symbol,
		"qty", qty,
		"price", trade.Price.StringFixed(2),
		"cash", trade.CashAfter.StringFixed(2),
	)
}

// Quote returns the current price of symbol.
func (g *Game) Quote(symbol market.Symbol) (float64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return quotes(g.bySymbol).Quote(symbol)
}

// NetWorth returns cash plus holdings at current prices.
func (g *Game) NetWorth() decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.portfolio.NetWorth(quotes(g.bySymbol))
}

// Progress evaluates the current net worth against the milestones.
func (g *Game) Progress() milestone.Progress {
	return milestone.Evaluate(g.NetWorth().InexactFloat64(), g.milestones)
}

// RecentEvents returns up to n of the latest events, oldest first.
func (g *Game) RecentEvents(n int) []news.Event {
	return g.events.Latest(n)
}

// Snapshot is a consistent read of the whole session state.
type Snapshot struct {
	Day      int
	Market   marketview.MarketSnapshot
	Cash     decimal.Decimal
	Holdings []portfolio.Holding
	NetWorth decimal.Decimal
	Progress milestone.Progress
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	nw := g.portfolio.NetWorth(quotes(g.bySymbol))
	return Snapshot{
		Day:      g.day,
		Market:   marketview.Snapshot(g.day, g.instruments),
		Cash:     g.portfolio.Cash(),
		Holdings: g.portfolio.Holdings(),
		NetWorth: nw,
		Progress: milestone.Evaluate(nw.InexactFloat64(), g.milestones),
	}
}

// quotes adapts the instrument index to portfolio.Quoter.
type quotes map[market.Symbol]*market.Instrument

func (q quotes) Quote(symbol market.Symbol) (float64, bool) {
	inst, ok := q[symbol]
	if !ok {
		return 0, false
	}
	return inst.Price(), true
}
