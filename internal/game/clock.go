package game

import (
	"context"

	"github.com/zappabad/stockquest/internal/news"
)

// AdvanceDay simulates one day: it draws one to MaxEventsPerDay events and,
// after each, moves every instrument using that event's impact. The day
// counter is incremented once all events are applied.
//
// AdvanceDay always completes; a failing text generator only changes which
// events are produced.
func (g *Game) AdvanceDay(ctx context.Context) []news.Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := 1 + g.rng.Intn(g.cfg.MaxEventsPerDay)
	events := make([]news.Event, 0, n)

	for i := 0; i < n; i++ {
		ev := g.generator.Generate(ctx, g.day, g.instruments, g.window)
		for _, inst := range g.instruments {
			g.pricing.Apply(inst, ev.Impact, g.day)
		}
		g.events.Append(ev)
		events = append(events, ev)

		g.logger.Debug("event applied",
			"day", g.day,
			"symbol", ev.Symbol,
			"source", ev.Source,
			"impact", ev.Impact,
			"text", ev.Text,
		)
	}

	g.logger.Info("day advanced", "day", g.day, "events", len(events))
	g.day++
	return events
}
