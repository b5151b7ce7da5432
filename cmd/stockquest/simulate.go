package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/zappabad/stockquest/internal/news"
	"github.com/zappabad/stockquest/internal/report"
	"github.com/zappabad/stockquest/internal/trader/runner"
	"github.com/zappabad/stockquest/internal/trader/strategy"
)

// simulateCmd runs the game without a terminal UI.
type simulateCmd struct {
	out       io.Writer
	days      int
	strategy  string
	daily     bool
	stopOnWin bool
	raw       bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "simulate days and print a report" }
func (*simulateCmd) Usage() string {
	return `stockquest simulate [-days <n>] [-strategy none|cheapest|momentum] [-daily] [-raw]

  Runs the market for n days with an automated player and prints a
  markdown report. The cheapest strategy spends all cash on the cheapest
  instrument before day one and holds it. The momentum strategy trades on
  the previous day's strongest events.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "number of days to simulate")
	f.StringVar(&c.strategy, "strategy", "cheapest", "trading strategy: "+strings.Join(strategy.Names, ", "))
	f.BoolVar(&c.daily, "daily", false, "print events and prices for every day")
	f.BoolVar(&c.stopOnWin, "stop-on-win", false, "stop once every milestone is reached")
	f.BoolVar(&c.raw, "raw", false, "print markdown without terminal rendering")
}

func (c *simulateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days < 1 {
		fmt.Fprintln(os.Stderr, "Error: -days must be at least 1")
		return subcommands.ExitUsageError
	}
	strat, err := strategy.ByName(c.strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	logger := newLogger(os.Stderr)
	g, err := newGame(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	r := runner.NewRunner(runner.Config{Days: c.days, StopOnWin: c.stopOnWin}, strat, g, logger)
	if c.daily {
		r.OnDay(func(day int, events []news.Event) {
			b.WriteString(report.DayMarkdown(day, events, g.Snapshot()))
			b.WriteString("\n")
		})
	}
	res := r.Run(ctx)

	logger.Info("simulation finished",
		"days", res.Days,
		"trades", len(res.Trades),
		"won", res.Won,
	)
	b.WriteString(report.SummaryMarkdown(g.Snapshot(), res.Trades))

	printMarkdown(c.out, b.String(), c.raw)
	return subcommands.ExitSuccess
}
