package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/zappabad/stockquest/internal/config"
	"github.com/zappabad/stockquest/internal/game"
	"github.com/zappabad/stockquest/internal/news/textgen"
)

// apiKeyEnv is read when the config file does not carry a key.
const apiKeyEnv = "GEMINI_API_KEY"

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configPath == "" {
		cfg = config.Default()
	} else {
		cfg, err = config.LoadAndValidate(*configPath)
		if err != nil {
			return nil, err
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	return cfg, nil
}

func newLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newTextGenerator returns the external headline generator, or nil when it
// is disabled or not configured. The game then only uses local events.
func newTextGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) textgen.Generator {
	if !cfg.Events.Enabled {
		return nil
	}
	gc := cfg.GeminiConfig()
	if gc.APIKey == "" {
		gc.APIKey = os.Getenv(apiKeyEnv)
	}
	if gc.APIKey == "" {
		logger.Warn("external events disabled: no API key", "env", apiKeyEnv)
		return nil
	}
	gen, err := textgen.NewGemini(ctx, gc)
	if err != nil {
		logger.Warn("external events disabled", "error", err)
		return nil
	}
	logger.Info("external events enabled", "model", gc.Model)
	return gen
}

func newGame(ctx context.Context, logger *slog.Logger) (*game.Game, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	text := newTextGenerator(ctx, cfg, logger)
	g, err := game.NewGame(cfg.GameConfig(), text, logger)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return g, nil
}

// printMarkdown renders md for the terminal. raw writes it unchanged.
func printMarkdown(w io.Writer, md string, raw bool) {
	if raw {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, strings.TrimRight(out, "\n")+"\n")
}
