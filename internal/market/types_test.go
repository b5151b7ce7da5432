package market

import (
	"testing"
	"time"
)

func TestNewInstrumentSeedsHistory(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	inst, err := NewInstrument("ACME", "Acme Corp", 50, 0.03, 0.001, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.Price() != 50 {
		t.Errorf("expected price 50, got %v", inst.Price())
	}
	if inst.Len() != 1 {
		t.Fatalf("expected 1 history entry, got %d", inst.Len())
	}
	if len(inst.Timestamps()) != inst.Len() || len(inst.Days()) != inst.Len() {
		t.Errorf("history and timestamps diverged")
	}
}

func TestNewInstrumentValidation(t *testing.T) {
	at := time.Now()
	tests := []struct {
		name   string
		symbol Symbol
		price  float64
		vol    float64
		want   error
	}{
		{"empty symbol", "", 10, 0, ErrEmptySymbol},
		{"zero price", "X", 0, 0, ErrInvalidPrice},
		{"negative price", "X", -1, 0, ErrInvalidPrice},
		{"negative volatility", "X", 10, -0.1, ErrInvalidVolatility},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInstrument(tt.symbol, "", tt.price, tt.vol, 0, at)
			if err != tt.want {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAppendKeepsParallelSequences(t *testing.T) {
	start := time.Unix(0, 0)
	inst, err := NewInstrument("ACME", "", 10, 0, 0, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inst.Append(11, start.Add(time.Second), 1)
	inst.Append(12, start.Add(2*time.Second), 1)

	if inst.Price() != 12 {
		t.Errorf("expected price 12, got %v", inst.Price())
	}
	hist := inst.History()
	if len(hist) != 3 || hist[0] != 10 || hist[2] != 12 {
		t.Errorf("unexpected history %v", hist)
	}
	if len(inst.Timestamps()) != 3 {
		t.Errorf("expected 3 timestamps, got %d", len(inst.Timestamps()))
	}

	// Returned slices are copies.
	hist[0] = 999
	if inst.History()[0] != 10 {
		t.Error("History exposed internal storage")
	}
}

func TestInstrumentAttributesFixedAtCreation(t *testing.T) {
	inst, err := NewInstrument("ACME", "", 50, 0.03, 0.001, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.Symbol() != "ACME" {
		t.Errorf("expected symbol ACME, got %s", inst.Symbol())
	}
	if inst.Name() != "ACME" {
		t.Errorf("expected name to default to the symbol, got %q", inst.Name())
	}

	inst.Append(60, time.Now(), 1)
	if inst.Volatility() != 0.03 || inst.Trend() != 0.001 {
		t.Errorf("attributes changed after append: volatility %v, trend %v", inst.Volatility(), inst.Trend())
	}
}
