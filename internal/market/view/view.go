package view

import (
	"github.com/zappabad/stockquest/internal/market"
)

// Candle summarises the prices recorded on one simulated day.
type Candle struct {
	Day   int
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Up reports whether the candle closed at or above its open.
func (c Candle) Up() bool { return c.Close >= c.Open }

// Quote is a point-in-time view of one instrument.
type Quote struct {
	Symbol    market.Symbol
	Name      string
	Price     float64
	PrevClose float64
	// Change is the fractional change against PrevClose.
	Change  float64
	Candles []Candle
}

// MarketSnapshot is a point-in-time snapshot of all instruments.
type MarketSnapshot struct {
	Day    int
	Quotes []Quote
}

// Quote returns the quote for symbol, if present.
func (s MarketSnapshot) Quote(symbol market.Symbol) (Quote, bool) {
	for _, q := range s.Quotes {
		if q.Symbol == symbol {
			return q, true
		}
	}
	return Quote{}, false
}

// Snapshot builds a snapshot of instruments in the given order.
func Snapshot(day int, instruments []*market.Instrument) MarketSnapshot {
	snap := MarketSnapshot{
		Day:    day,
		Quotes: make([]Quote, 0, len(instruments)),
	}
	for _, inst := range instruments {
		snap.Quotes = append(snap.Quotes, QuoteOf(inst))
	}
	return snap
}

// QuoteOf builds a quote for a single instrument.
func QuoteOf(inst *market.Instrument) Quote {
	candles := Candles(inst)
	q := Quote{
		Symbol:    inst.Symbol(),
		Name:      inst.Name(),
		Price:     inst.Price(),
		PrevClose: inst.Price(),
		Candles:   candles,
	}
	if len(candles) >= 2 {
		q.PrevClose = candles[len(candles)-2].Close
	}
	if q.PrevClose > 0 {
		q.Change = (q.Price - q.PrevClose) / q.PrevClose
	}
	return q
}

// Candles groups an instrument's history by simulated day. Each candle opens
// at the previous day's close; the first one covers the seed price alone.
func Candles(inst *market.Instrument) []Candle {
	prices := inst.History()
	days := inst.Days()
	if len(prices) == 0 {
		return nil
	}

	var out []Candle
	cur := Candle{Day: days[0], Open: prices[0], High: prices[0], Low: prices[0], Close: prices[0]}
	for i := 1; i < len(prices); i++ {
		p := prices[i]
		if days[i] != cur.Day {
			out = append(out, cur)
			open := cur.Close
			cur = Candle{Day: days[i], Open: open, High: max(open, p), Low: min(open, p), Close: p}
			continue
		}
		cur.High = max(cur.High, p)
		cur.Low = min(cur.Low, p)
		cur.Close = p
	}
	return append(out, cur)
}
