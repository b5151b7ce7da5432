package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("empty response from model")

// GeminiConfig holds configuration for the Gemini generator.
type GeminiConfig struct {
	// APIKey is the Gemini API key. Empty lets the client read GEMINI_API_KEY
	// or GOOGLE_API_KEY from the environment.
	APIKey string
	// Model is the model name.
	Model string
	// Temperature controls headline variety.
	Temperature float32
}

// DefaultGeminiConfig returns a GeminiConfig with reasonable defaults.
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		Model:       "gemini-2.0-flash",
		Temperature: 0.9,
	}
}

// withDefaults fills zero fields from DefaultGeminiConfig.
func (c GeminiConfig) withDefaults() GeminiConfig {
	def := DefaultGeminiConfig()
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.Temperature <= 0 {
		c.Temperature = def.Temperature
	}
	return c
}

// Gemini generates headlines with the Gemini API.
type Gemini struct {
	cfg    GeminiConfig
	client *genai.Client
}

// NewGemini creates a Gemini client.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	cfg = cfg.withDefaults()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{cfg: cfg, client: client}, nil
}

// Generate asks the model for one headline.
func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.cfg.Temperature),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(Prompt(req)), config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
