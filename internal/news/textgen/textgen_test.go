package textgen

import (
	"context"
	"strings"
	"testing"
)

func TestPromptIncludesSubjectAndHints(t *testing.T) {
	p := Prompt(Request{
		Subject:   "Acme Corp",
		Templates: []string{"beats earnings expectations", "faces regulatory scrutiny"},
	})

	for _, want := range []string{
		"Acme Corp",
		"- Acme Corp beats earnings expectations",
		"- Acme Corp faces regulatory scrutiny",
		"<headline>|<impact>",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q:\n%s", want, p)
		}
	}
}

func TestFuncAdapter(t *testing.T) {
	var got Request
	g := Func(func(_ context.Context, req Request) (string, error) {
		got = req
		return "headline|0.01", nil
	})

	out, err := g.Generate(context.Background(), Request{Subject: "Acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "headline|0.01" {
		t.Errorf("unexpected output %q", out)
	}
	if got.Subject != "Acme" {
		t.Errorf("request not forwarded, got %+v", got)
	}
}

func TestGeminiConfigDefaults(t *testing.T) {
	def := DefaultGeminiConfig()

	got := GeminiConfig{APIKey: "key"}.withDefaults()
	if got.Model != def.Model {
		t.Errorf("Model = %q, want %q", got.Model, def.Model)
	}
	if got.Temperature != def.Temperature {
		t.Errorf("Temperature = %v, want %v", got.Temperature, def.Temperature)
	}
	if got.APIKey != "key" {
		t.Errorf("APIKey = %q, want key", got.APIKey)
	}

	custom := GeminiConfig{Model: "other", Temperature: 0.3}.withDefaults()
	if custom.Model != "other" || custom.Temperature != 0.3 {
		t.Errorf("explicit values overridden: %+v", custom)
	}
}
