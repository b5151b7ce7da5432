package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/zappabad/stockquest/internal/milestone"
	"github.com/zappabad/stockquest/internal/report"
)

// milestonesCmd prints the configured milestone table.
type milestonesCmd struct {
	out io.Writer
	raw bool
}

func (*milestonesCmd) Name() string     { return "milestones" }
func (*milestonesCmd) Synopsis() string { return "list the net worth milestones" }
func (*milestonesCmd) Usage() string {
	return `stockquest milestones [-raw]

  Lists the net worth goals of the configured game.
`
}

func (c *milestonesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print markdown without terminal rendering")
}

func (c *milestonesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	table, err := milestone.NewTable(cfg.GameConfig().Milestones...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(c.out, report.MilestonesMarkdown(table, nil), c.raw)
	return subcommands.ExitSuccess
}
