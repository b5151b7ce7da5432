package runner

// Config holds configuration for the trader runner.
type Config struct {
	// Days is the number of days to simulate.
	Days int
	// StopOnWin ends the run once every milestone is reached.
	StopOnWin bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Days: 30,
	}
}
