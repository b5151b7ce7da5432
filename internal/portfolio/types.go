package portfolio

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/zappabad/stockquest/internal/market"
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
)

type Side uint8

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// Trade confirms an accepted buy or sell.
type Trade struct {
	Symbol   market.Symbol
	Side     Side
	Quantity int64
	Price    decimal.Decimal
	// Amount is the cost of a buy or the revenue of a sell.
	Amount    decimal.Decimal
	CashAfter decimal.Decimal
}

// CashFlow returns the signed change in cash caused by the trade.
func (t Trade) CashFlow() decimal.Decimal {
	if t.Side == SideBuy {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Holding is a position in one instrument.
type Holding struct {
	Symbol market.Symbol
	Shares int64
}

// Quoter provides current prices.
type Quoter interface {
	Quote(symbol market.Symbol) (float64, bool)
}

// Quotes is a fixed price table.
type Quotes map[market.Symbol]float64

func (q Quotes) Quote(symbol market.Symbol) (float64, bool) {
	p, ok := q[symbol]
	return p, ok
}
