package generator

import (
	"math"
	"strconv"
	"strings"

	"github.com/zappabad/stockquest/internal/news"
	"github.com/zappabad/stockquest/internal/news/textgen"
)

// Failure is the reason an external headline could not be used.
type Failure uint8

const (
	FailureNone Failure = iota
	// FailureUnavailable means no text generator is configured.
	FailureUnavailable
	FailureCall
	FailureTimeout
	FailureMissingDelimiter
	FailureEmptyText
	// FailureBadImpact means the impact was not a finite number.
	FailureBadImpact
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureUnavailable:
		return "unavailable"
	case FailureCall:
		return "call failed"
	case FailureTimeout:
		return "timeout"
	case FailureMissingDelimiter:
		return "missing delimiter"
	case FailureEmptyText:
		return "empty text"
	case FailureBadImpact:
		return "bad impact"
	default:
		return "unknown"
	}
}

// Outcome is the result of asking the text generator for a headline:
// either a parsed headline and impact, or the reason it failed.
type Outcome struct {
	Text    string
	Impact  float64
	Failure Failure
	Err     error
}

// OK reports whether the outcome carries a usable headline.
func (o Outcome) OK() bool { return o.Failure == FailureNone }

func failed(f Failure, err error) Outcome {
	return Outcome{Failure: f, Err: err}
}

// Parse decodes a "<headline>|<impact>" response. The impact is clamped to
// [-news.MaxImpact, news.MaxImpact].
func Parse(resp string) Outcome {
	i := strings.LastIndex(resp, textgen.Delimiter)
	if i < 0 {
		return failed(FailureMissingDelimiter, nil)
	}

	text := strings.Trim(strings.TrimSpace(resp[:i]), `"`)
	if text == "" {
		return failed(FailureEmptyText, nil)
	}

	impact, err := strconv.ParseFloat(strings.TrimSpace(resp[i+len(textgen.Delimiter):]), 64)
	if err != nil {
		return failed(FailureBadImpact, err)
	}
	if math.IsNaN(impact) || math.IsInf(impact, 0) {
		return failed(FailureBadImpact, nil)
	}

	return Outcome{Text: text, Impact: news.ClampImpact(impact)}
}
