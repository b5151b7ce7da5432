package generator

import "time"

// Config holds configuration for the event generator.
type Config struct {
	// Timeout bounds each call to the text generator.
	Timeout time.Duration
	// Templates are event phrasings completed with the subject's name. They
	// are sent as hints to the text generator and used by the local fallback.
	Templates []string
}

// DefaultTemplates is the built-in event catalog.
var DefaultTemplates = []string{
	"launches a new flagship product",
	"beats quarterly earnings expectations",
	"misses quarterly earnings expectations",
	"announces expansion into new markets",
	"faces regulatory scrutiny",
	"secures a major partnership deal",
	"announces a leadership shake-up",
	"recalls a best-selling product",
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:   5 * time.Second,
		Templates: DefaultTemplates,
	}
}
