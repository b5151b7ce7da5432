package dedup

import "testing"

func TestWindowAdd(t *testing.T) {
	w := NewWindow(30, 0)
	if !w.Add("a") {
		t.Fatal("expected first add to succeed")
	}
	if w.Add("a") {
		t.Error("expected duplicate add to fail")
	}
	if !w.Contains("a") || w.Contains("b") {
		t.Error("unexpected Contains result")
	}
	if w.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", w.Len())
	}
}

func TestWindowRoll(t *testing.T) {
	w := NewWindow(30, 1)
	w.Add("a")

	if w.Roll(30) {
		t.Error("window should not reset after 29 days")
	}
	if !w.Contains("a") {
		t.Error("entry dropped before reset")
	}

	if !w.Roll(31) {
		t.Fatal("window should reset after 30 days")
	}
	if w.StartDay() != 31 {
		t.Errorf("expected start day 31, got %d", w.StartDay())
	}
	if w.Contains("a") || w.Len() != 0 {
		t.Error("entries survived reset")
	}
	if !w.Add("a") {
		t.Error("text should be reusable after reset")
	}
}

func TestWindowDefaultSpan(t *testing.T) {
	w := NewWindow(0, 0)
	if w.Span() != DefaultSpan {
		t.Errorf("expected span %d, got %d", DefaultSpan, w.Span())
	}
}
