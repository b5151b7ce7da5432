package runner

import (
	"context"
	"testing"
	"time"

	"github.com/zappabad/stockquest/internal/game"
	"github.com/zappabad/stockquest/internal/milestone"
	"github.com/zappabad/stockquest/internal/news"
	"github.com/zappabad/stockquest/internal/portfolio"
	"github.com/zappabad/stockquest/internal/trader"
	"github.com/zappabad/stockquest/internal/trader/strategy"
)

func testGame(t *testing.T, cfg game.Config) *game.Game {
	t.Helper()
	cfg.Seed = 8
	cfg.Clock = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	g, err := game.NewGame(cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

// scripted returns fixed intents on given days.
type scripted map[int][]trader.OrderIntent

func (s scripted) Step(_ context.Context, day int, _ strategy.MarketReader, _ strategy.NewsReader) []trader.OrderIntent {
	return s[day]
}

func TestRun(t *testing.T) {
	g := testGame(t, game.DefaultConfig())
	strat := scripted{
		1: {{Symbol: "LEAF", Side: portfolio.SideBuy, Quantity: 10}},
		3: {
			{Symbol: "LEAF", Side: portfolio.SideSell, Quantity: 4},
			{Symbol: "LEAF", Side: portfolio.SideSell, Quantity: 100},
		},
	}

	r := NewRunner(Config{Days: 5}, strat, g, nil)
	var days []int
	r.OnDay(func(day int, events []news.Event) {
		days = append(days, day)
		if len(events) == 0 {
			t.Errorf("day %d: expected events", day)
		}
	})

	res := r.Run(context.Background())
	if res.Days != 5 || g.Day() != 6 {
		t.Errorf("expected 5 days, got %d (game day %d)", res.Days, g.Day())
	}
	for i, d := range days {
		if d != i+1 {
			t.Errorf("callback %d: expected day %d, got %d", i, i+1, d)
		}
	}
	if len(res.Trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(res.Trades))
	}
	if len(res.Events) != 3 || res.Events[2].Type != trader.TraderEventError {
		t.Errorf("expected a rejected third order, got %+v", res.Events)
	}

	snap := g.Snapshot()
	if len(snap.Holdings) != 1 || snap.Holdings[0].Shares != 6 {
		t.Errorf("unexpected holdings %+v", snap.Holdings)
	}
}

func TestRunStopsOnWin(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Milestones = []milestone.Milestone{{Threshold: 100, Description: "easy"}}
	g := testGame(t, cfg)

	res := NewRunner(Config{Days: 10, StopOnWin: true}, strategy.Hold{}, g, nil).Run(context.Background())
	if !res.Won || res.Days != 1 {
		t.Errorf("expected a win after one day, got %+v", res)
	}
}

func TestRunCancelled(t *testing.T) {
	g := testGame(t, game.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewRunner(Config{Days: 10}, strategy.Hold{}, g, nil).Run(ctx)
	if res.Days != 0 || g.Day() != 1 {
		t.Errorf("expected no days simulated, got %d", res.Days)
	}
}
