package market

import (
	"errors"
	"time"
)

var (
	ErrEmptySymbol       = errors.New("empty symbol")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInvalidVolatility = errors.New("volatility must not be negative")
)

// Symbol uniquely identifies an instrument.
type Symbol string

// Instrument represents a tradeable stock and its price history.
//
// Symbol, name, volatility and trend are fixed at creation. The price is only
// ever changed through Append, which the price model calls once per tick.
// History and timestamps always have the same length and are seeded with the
// initial price.
type Instrument struct {
	symbol     Symbol
	name       string
	volatility float64
	trend      float64

	price      float64
	history    []float64
	timestamps []time.Time
	days       []int
}

// NewInstrument creates an instrument seeded with its initial price at day 0.
func NewInstrument(symbol Symbol, name string, price, volatility, trend float64, at time.Time) (*Instrument, error) {
	if symbol == "" {
		return nil, ErrEmptySymbol
	}
	if !(price > 0) {
		return nil, ErrInvalidPrice
	}
	if volatility < 0 {
		return nil, ErrInvalidVolatility
	}
	if name == "" {
		name = string(symbol)
	}
	return &Instrument{
		symbol:     symbol,
		name:       name,
		volatility: volatility,
		trend:      trend,
		price:      price,
		history:    []float64{price},
		timestamps: []time.Time{at},
		days:       []int{0},
	}, nil
}

// Symbol returns the instrument's ticker.
func (i *Instrument) Symbol() Symbol {
	return i.symbol
}

// Name returns the display name.
func (i *Instrument) Name() string {
	return i.name
}

// Volatility returns the bound of the per-tick random noise.
func (i *Instrument) Volatility() float64 {
	return i.volatility
}

// Trend returns the per-tick drift.
func (i *Instrument) Trend() float64 {
	return i.trend
}

// Price returns the current price.
func (i *Instrument) Price() float64 {
	return i.price
}

// Append records a new price produced on the given simulated day.
func (i *Instrument) Append(price float64, at time.Time, day int) {
	i.price = price
	i.history = append(i.history, price)
	i.timestamps = append(i.timestamps, at)
	i.days = append(i.days, day)
}

// Len returns the number of recorded prices.
func (i *Instrument) Len() int {
	return len(i.history)
}

// History returns a copy of all recorded prices, oldest first.
func (i *Instrument) History() []float64 {
	out := make([]float64, len(i.history))
	copy(out, i.history)
	return out
}

// Timestamps returns a copy of the timestamps parallel to History.
func (i *Instrument) Timestamps() []time.Time {
	out := make([]time.Time, len(i.timestamps))
	copy(out, i.timestamps)
	return out
}

// Days returns a copy of the simulated day of each History entry.
func (i *Instrument) Days() []int {
	out := make([]int, len(i.days))
	copy(out, i.days)
	return out
}
