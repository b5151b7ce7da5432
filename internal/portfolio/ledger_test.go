package portfolio

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zappabad/stockquest/internal/market"
)

func newInstrument(t *testing.T, symbol market.Symbol, price float64) *market.Instrument {
	t.Helper()
	inst, err := market.NewInstrument(symbol, "", price, 0, 0, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return inst
}

func TestBuySellScenario(t *testing.T) {
	p := New(decimal.NewFromInt(10000))
	x := newInstrument(t, "X", 50.0)

	trade, err := p.Buy(x, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !trade.Amount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected cost 5000, got %s", trade.Amount)
	}
	if !p.Cash().Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected cash 5000, got %s", p.Cash())
	}
	if p.Shares("X") != 100 {
		t.Errorf("expected 100 shares, got %d", p.Shares("X"))
	}

	_, err = p.Sell(x, 150)
	if !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("expected ErrInsufficientShares, got %v", err)
	}
	if !p.Cash().Equal(decimal.NewFromInt(5000)) || p.Shares("X") != 100 {
		t.Errorf("rejected sell changed state: cash %s, shares %d", p.Cash(), p.Shares("X"))
	}
}

func TestBuyInsufficientFunds(t *testing.T) {
	p := New(decimal.NewFromInt(100))
	x := newInstrument(t, "X", 50.5)

	_, err := p.Buy(x, 2)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if !p.Cash().Equal(decimal.NewFromInt(100)) {
		t.Errorf("cash changed to %s", p.Cash())
	}
	if len(p.Holdings()) != 0 {
		t.Errorf("unexpected holdings %v", p.Holdings())
	}

	// Exactly affordable.
	y := newInstrument(t, "Y", 50)
	if _, err := p.Buy(y, 2); err != nil {
		t.Fatalf("expected exact buy to succeed, got %v", err)
	}
	if !p.Cash().IsZero() {
		t.Errorf("expected zero cash, got %s", p.Cash())
	}
}

func TestInvalidQuantity(t *testing.T) {
	p := New(decimal.NewFromInt(1000))
	x := newInstrument(t, "X", 10)

	for _, qty := range []int64{0, -3} {
		if _, err := p.Buy(x, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("buy %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
		if _, err := p.Sell(x, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("sell %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestSellRemovesEmptyPosition(t *testing.T) {
	p := New(decimal.NewFromInt(1000))
	x := newInstrument(t, "X", 10)

	if _, err := p.Buy(x, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Sell(x, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Shares("X") != 3 {
		t.Errorf("expected 3 shares, got %d", p.Shares("X"))
	}
	if _, err := p.Sell(x, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.holdings["X"]; ok {
		t.Error("emptied position still present in holdings")
	}
	if len(p.Holdings()) != 0 {
		t.Errorf("unexpected holdings %v", p.Holdings())
	}
}

func TestCashConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	start := decimal.NewFromInt(25000)
	p := New(start)
	instruments := []*market.Instrument{
		newInstrument(t, "A", 12.37),
		newInstrument(t, "B", 101.01),
		newInstrument(t, "C", 0.33),
	}

	flows := decimal.Zero
	accepted := 0
	for i := 0; i < 500; i++ {
		inst := instruments[rng.Intn(len(instruments))]
		qty := int64(rng.Intn(40) + 1)

		var (
			trade Trade
			err   error
		)
		if rng.Intn(2) == 0 {
			trade, err = p.Buy(inst, qty)
		} else {
			trade, err = p.Sell(inst, qty)
		}
		if err != nil {
			continue
		}
		accepted++
		flows = flows.Add(trade.CashFlow())

		if p.Cash().IsNegative() {
			t.Fatalf("cash went negative: %s", p.Cash())
		}
		for _, h := range p.Holdings() {
			if h.Shares <= 0 {
				t.Fatalf("non-positive holding %+v", h)
			}
		}
	}

	if accepted == 0 {
		t.Fatal("no trades accepted")
	}
	if !start.Sub(p.Cash()).Equal(flows.Neg()) {
		t.Errorf("cash drifted: start %s, now %s, flows %s", start, p.Cash(), flows)
	}
}

func TestNetWorth(t *testing.T) {
	p := New(decimal.NewFromInt(1000))
	x := newInstrument(t, "X", 10)
	if _, err := p.Buy(x, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := p.NetWorth(Quotes{"X": 12.5})
	if !got.Equal(decimal.NewFromInt(1025)) {
		t.Errorf("expected net worth 1025, got %s", got)
	}

	// Unquoted positions are worth nothing.
	if got := p.NetWorth(Quotes{}); !got.Equal(decimal.NewFromInt(900)) {
		t.Errorf("expected net worth 900, got %s", got)
	}
}

func TestFormatCash(t *testing.T) {
	if got := FormatCash(decimal.NewFromFloat(5000)); got != "$5,000.00" {
		t.Errorf("expected $5,000.00, got %q", got)
	}
	if got := FormatCash(decimal.RequireFromString("12.345")); got != "$12.35" {
		t.Errorf("expected $12.35, got %q", got)
	}
}
