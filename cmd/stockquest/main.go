// Command stockquest is a turn-based stock market game.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file; built-in defaults when empty")
	logLevel   = flag.String("log-level", "info", "log level: debug, info, warn or error")
	seed       = flag.Int64("seed", 0, "random seed; overrides the config file when non-zero")
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&playCmd{}, "game")
	commander.Register(&simulateCmd{out: os.Stdout}, "game")
	commander.Register(&milestonesCmd{out: os.Stdout}, "game")

	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(int(commander.Execute(ctx)))
}
