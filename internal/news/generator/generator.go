// Package generator produces the daily news events that move the market.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/zappabad/stockquest/internal/market"
	"github.com/zappabad/stockquest/internal/news"
	"github.com/zappabad/stockquest/internal/news/dedup"
	"github.com/zappabad/stockquest/internal/news/textgen"
)

// Generator produces one event per call, preferring the external text
// generator and falling back to local templates. It never fails.
type Generator struct {
	cfg    Config
	text   textgen.Generator
	rng    *rand.Rand
	logger *slog.Logger
	lastID news.EventID
}

// New creates a Generator. text may be nil, in which case every event comes
// from the local templates.
func New(cfg Config, text textgen.Generator, rng *rand.Rand, logger *slog.Logger) *Generator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if len(cfg.Templates) == 0 {
		cfg.Templates = DefaultTemplates
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		cfg:    cfg,
		text:   text,
		rng:    rng,
		logger: logger,
	}
}

// Generate returns a news event for day about a random instrument. The text
// is unique within window and is registered there before returning.
func (g *Generator) Generate(ctx context.Context, day int, instruments []*market.Instrument, window *dedup.Window) news.Event {
	if window.Roll(day) {
		g.logger.Debug("event window reset", "day", day)
	}

	var subject *market.Instrument
	if len(instruments) > 0 {
		subject = instruments[g.rng.Intn(len(instruments))]
	}
	name, symbol := "The market", market.Symbol("")
	if subject != nil {
		name, symbol = subject.Name(), subject.Symbol()
	}

	ev := news.Event{Day: day, Symbol: symbol}

	out := g.ask(ctx, name)
	switch {
	case !out.OK():
		g.logger.Debug("external event unavailable",
			"day", day,
			"symbol", symbol,
			"reason", out.Failure,
			"error", out.Err,
		)
		ev.Text, ev.Impact = g.fallback(day, name, window)
		ev.Source = news.SourceFallback
	case window.Contains(out.Text):
		g.logger.Debug("duplicate external event", "day", day, "text", out.Text)
		ev.Text, ev.Impact, ev.Source = g.alternative(day, name, window)
	default:
		ev.Text, ev.Impact = out.Text, out.Impact
		ev.Source = news.SourceExternal
	}

	window.Add(ev.Text)
	g.lastID++
	ev.ID = g.lastID
	return ev
}

// ask queries the text generator once, bounded by the configured timeout.
// A generator that ignores ctx is abandoned when the timeout expires.
func (g *Generator) ask(ctx context.Context, subject string) Outcome {
	if g.text == nil {
		return failed(FailureUnavailable, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	type reply struct {
		resp string
		err  error
	}
	replies := make(chan reply, 1)
	req := textgen.Request{Subject: subject, Templates: g.cfg.Templates}
	go func() {
		resp, err := g.text.Generate(ctx, req)
		replies <- reply{resp, err}
	}()

	select {
	case r := <-replies:
		if r.err != nil {
			if errors.Is(r.err, context.DeadlineExceeded) {
				return failed(FailureTimeout, r.err)
			}
			return failed(FailureCall, r.err)
		}
		return Parse(r.resp)
	case <-ctx.Done():
		return failed(FailureTimeout, ctx.Err())
	}
}

// alternative replaces a duplicate external headline with a random template
// for the same subject and a fresh impact.
func (g *Generator) alternative(day int, name string, window *dedup.Window) (string, float64, news.Source) {
	phrase := g.cfg.Templates[g.rng.Intn(len(g.cfg.Templates))]
	text := name + " " + phrase
	if !window.Contains(text) {
		return text, g.impact(), news.SourceAlternative
	}
	text, impact := g.fallback(day, name, window)
	return text, impact, news.SourceFallback
}

// fallback picks an unused template for the subject, or a day-numbered
// headline once every template has been used.
func (g *Generator) fallback(day int, name string, window *dedup.Window) (string, float64) {
	var unused []string
	for _, phrase := range g.cfg.Templates {
		text := name + " " + phrase
		if !window.Contains(text) {
			unused = append(unused, text)
		}
	}
	if len(unused) > 0 {
		return unused[g.rng.Intn(len(unused))], g.impact()
	}

	text := fmt.Sprintf("%s issues a market update on day %d", name, day)
	for n := 2; window.Contains(text); n++ {
		text = fmt.Sprintf("%s issues market update #%d on day %d", name, n, day)
	}
	return text, g.impact()
}

func (g *Generator) impact() float64 {
	return -news.MaxImpact + 2*news.MaxImpact*g.rng.Float64()
}
