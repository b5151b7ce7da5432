package pricing

// Config holds configuration for the price model.
type Config struct {
	// TrendJitterMin and TrendJitterMax bound the random multiplier applied to
	// an instrument's trend every tick.
	TrendJitterMin float64
	TrendJitterMax float64
	// SentimentRange bounds the market-wide sentiment noise, sampled in
	// [-SentimentRange, SentimentRange]. Zero means the default range.
	SentimentRange float64
	// DisableSentiment turns the sentiment term off.
	DisableSentiment bool
	// MinPrice is the floor applied to every new price.
	MinPrice float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		TrendJitterMin: 0.8,
		TrendJitterMax: 1.2,
		SentimentRange: 0.02,
		MinPrice:       0.01,
	}
}
