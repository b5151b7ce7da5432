// Package textgen defines the external text generation service consulted
// for news headlines, and its Gemini implementation.
package textgen

import (
	"context"
	"fmt"
	"strings"
)

// Delimiter separates the headline from its impact in a response.
const Delimiter = "|"

// Request describes the headline wanted from the service.
type Request struct {
	// Subject is the display name of the company the news is about.
	Subject string
	// Templates are example phrasings offered as hints.
	Templates []string
}

// Generator produces a raw "<headline>|<impact>" response.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Func is a function adapter for Generator.
type Func func(ctx context.Context, req Request) (string, error)

func (f Func) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Prompt renders req as an instruction for a language model.
func Prompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one short, fictional stock market news headline about %s.\n", req.Subject)
	if len(req.Templates) > 0 {
		b.WriteString("It may be inspired by one of these kinds of events:\n")
		for _, t := range req.Templates {
			fmt.Fprintf(&b, "- %s %s\n", req.Subject, t)
		}
	}
	fmt.Fprintf(&b, "Then estimate its effect on the stock price as a decimal fraction between -0.15 and 0.15.\n")
	fmt.Fprintf(&b, "Answer with exactly one line in the form: <headline>%s<impact>\n", Delimiter)
	b.WriteString("Do not add quotes, explanations or any other text.")
	return b.String()
}
