// Package portfolio holds the player's cash and share positions.
package portfolio

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/zappabad/stockquest/internal/market"
)

// Portfolio is a single player's ledger. Cash is exact, so any sequence of
// accepted trades changes it by exactly the sum of their cash flows.
//
// Holdings never contain zero entries: a position that is sold out is
// removed.
type Portfolio struct {
	cash     decimal.Decimal
	holdings map[market.Symbol]int64
}

// New creates an empty portfolio with the given cash.
func New(cash decimal.Decimal) *Portfolio {
	return &Portfolio{
		cash:     cash,
		holdings: make(map[market.Symbol]int64),
	}
}

// Cash returns the cash balance.
func (p *Portfolio) Cash() decimal.Decimal {
	return p.cash
}

// Shares returns the number of shares held in symbol.
func (p *Portfolio) Shares(symbol market.Symbol) int64 {
	return p.holdings[symbol]
}

// Holdings returns all positions sorted by symbol.
func (p *Portfolio) Holdings() []Holding {
	out := make([]Holding, 0, len(p.holdings))
	for sym, n := range p.holdings {
		out = append(out, Holding{Symbol: sym, Shares: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Buy converts cash into qty shares of inst at its current price.
func (p *Portfolio) Buy(inst *market.Instrument, qty int64) (Trade, error) {
	if qty <= 0 {
		return Trade{}, ErrInvalidQuantity
	}
	price := PriceOf(inst.Price())
	cost := price.Mul(decimal.NewFromInt(qty))
	if cost.GreaterThan(p.cash) {
		return Trade{}, ErrInsufficientFunds
	}

	p.cash = p.cash.Sub(cost)
	p.holdings[inst.Symbol()] += qty

	return Trade{
		Symbol:    inst.Symbol(),
		Side:      SideBuy,
		Quantity:  qty,
		Price:     price,
		Amount:    cost,
		CashAfter: p.cash,
	}, nil
}

// Sell converts qty shares of inst back into cash at its current price.
func (p *Portfolio) Sell(inst *market.Instrument, qty int64) (Trade, error) {
	if qty <= 0 {
		return Trade{}, ErrInvalidQuantity
	}
	owned := p.holdings[inst.Symbol()]
	if qty > owned {
		return Trade{}, ErrInsufficientShares
	}
	price := PriceOf(inst.Price())
	revenue := price.Mul(decimal.NewFromInt(qty))

	p.cash = p.cash.Add(revenue)
	if owned == qty {
		delete(p.holdings, inst.Symbol())
	} else {
		p.holdings[inst.Symbol()] = owned - qty
	}

	return Trade{
		Symbol:    inst.Symbol(),
		Side:      SideSell,
		Quantity:  qty,
		Price:     price,
		Amount:    revenue,
		CashAfter: p.cash,
	}, nil
}

// MarketValue returns the value of all positions at current quotes.
// Positions without a quote are valued at zero.
func (p *Portfolio) MarketValue(q Quoter) decimal.Decimal {
	total := decimal.Zero
	for sym, n := range p.holdings {
		price, ok := q.Quote(sym)
		if !ok {
			continue
		}
		total = total.Add(PriceOf(price).Mul(decimal.NewFromInt(n)))
	}
	return total
}

// NetWorth returns cash plus the market value of all positions.
func (p *Portfolio) NetWorth(q Quoter) decimal.Decimal {
	return p.cash.Add(p.MarketValue(q))
}
