package trader

import (
	"github.com/zappabad/stockquest/internal/market"
	"github.com/zappabad/stockquest/internal/portfolio"
)

// OrderIntent represents a trader's intention to place an order.
type OrderIntent struct {
	Symbol   market.Symbol
	Side     portfolio.Side
	Quantity int64
}

// TraderEventType indicates the type of trader event.
type TraderEventType int

const (
	TraderEventPlacedOrder TraderEventType = iota
	TraderEventError
)

// TraderEvent represents an action or event from a trader.
type TraderEvent struct {
	Day     int
	Type    TraderEventType
	Intent  OrderIntent
	Trade   *portfolio.Trade // set for PlacedOrder
	Message string           // set for errors
}
