package news

import (
	"math"

	"github.com/zappabad/stockquest/internal/market"
)

// MaxImpact bounds the absolute fractional price impact of a single event.
const MaxImpact = 0.15

// EventID uniquely identifies an event within a session.
type EventID int64

// Source records which path produced an event.
type Source uint8

const (
	// SourceExternal events come from the text generation service.
	SourceExternal Source = iota
	// SourceAlternative events replace an external event whose text was
	// already used in the current window.
	SourceAlternative
	// SourceFallback events come from the local template generator.
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceExternal:
		return "EXTERNAL"
	case SourceAlternative:
		return "ALTERNATIVE"
	case SourceFallback:
		return "FALLBACK"
	default:
		return "UNKNOWN"
	}
}

// Event represents a news item and its market-wide price impact.
type Event struct {
	ID     EventID
	Day    int
	Symbol market.Symbol // subject instrument
	Text   string
	Impact float64
	Source Source
}

// Severe reports whether the event moves prices by at least 5%.
func (e Event) Severe() bool {
	return math.Abs(e.Impact) >= 0.05
}

// ClampImpact bounds v to [-MaxImpact, MaxImpact].
func ClampImpact(v float64) float64 {
	return math.Max(-MaxImpact, math.Min(MaxImpact, v))
}
