package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/subcommands"
	"github.com/zappabad/stockquest/tui"
)

// playCmd runs the interactive terminal game.
type playCmd struct {
	logFile string
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "play the game in the terminal" }
func (*playCmd) Usage() string {
	return `stockquest play [-log <file>]

  Starts an interactive session. Press n to simulate the next day,
  Tab to move between panels and q to quit.
`
}

func (c *playCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.logFile, "log", "stockquest.log", "file receiving the session log")
}

func (c *playCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// The terminal belongs to the UI, so logs go to a file.
	logOut, err := os.OpenFile(c.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %q: %v\n", c.logFile, err)
		return subcommands.ExitFailure
	}
	defer logOut.Close()
	logger := newLogger(logOut)

	g, err := newGame(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p := tea.NewProgram(tui.NewModel(ctx, g), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return subcommands.ExitFailure
	}

	snap := g.Snapshot()
	logger.Info("session ended", "day", snap.Day, "net_worth", snap.NetWorth.StringFixed(2))
	return subcommands.ExitSuccess
}
