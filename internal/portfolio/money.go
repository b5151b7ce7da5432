package portfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the game's accounting currency.
const Currency = money.USD

// FormatCash renders an amount with the currency symbol and grouping,
// e.g. "$5,000.00".
func FormatCash(amount decimal.Decimal) string {
	cur := money.New(0, Currency).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, Currency).Display()
}

// PriceOf converts an instrument price into the ledger's exact
// representation.
func PriceOf(price float64) decimal.Decimal {
	return decimal.NewFromFloat(price)
}
