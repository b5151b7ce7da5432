package milestone

import (
	"errors"
	"testing"
)

func testTable(t *testing.T) Table {
	t.Helper()
	table, err := NewTable(
		Milestone{Threshold: 50000, Description: "C"},
		Milestone{Threshold: 15000, Description: "A"},
		Milestone{Threshold: 25000, Description: "B"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return table
}

func TestNewTableSorts(t *testing.T) {
	ms := testTable(t).Milestones()
	for i, want := range []string{"A", "B", "C"} {
		if ms[i].Description != want {
			t.Errorf("index %d: expected %s, got %s", i, want, ms[i].Description)
		}
	}
}

func TestNewTableValidation(t *testing.T) {
	if _, err := NewTable(Milestone{Threshold: 0}); !errors.Is(err, ErrInvalidThreshold) {
		t.Errorf("expected ErrInvalidThreshold, got %v", err)
	}
	if _, err := NewTable(Milestone{Threshold: 10}, Milestone{Threshold: 10}); !errors.Is(err, ErrDuplicateThreshold) {
		t.Errorf("expected ErrDuplicateThreshold, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	table := testTable(t)

	p := Evaluate(20000, table)
	if len(p.Achieved) != 1 || p.Achieved[0].Description != "A" {
		t.Errorf("unexpected achieved %v", p.Achieved)
	}
	if p.Next == nil || p.Next.Description != "B" {
		t.Fatalf("expected next B, got %+v", p.Next)
	}
	if p.Next.Progress != 0.8 {
		t.Errorf("expected progress 0.8, got %v", p.Next.Progress)
	}
	if p.Won() {
		t.Error("should not be won")
	}
}

func TestEvaluateExactThresholdIsAchieved(t *testing.T) {
	p := Evaluate(25000, testTable(t))
	if len(p.Achieved) != 2 || p.Achieved[1].Threshold != 25000 {
		t.Errorf("expected 25000 to be achieved, got %v", p.Achieved)
	}
	if p.Next == nil || p.Next.Threshold != 50000 {
		t.Errorf("expected next 50000, got %+v", p.Next)
	}
}

func TestEvaluateWon(t *testing.T) {
	p := Evaluate(1e9, testTable(t))
	if !p.Won() {
		t.Error("expected won")
	}
	if len(p.Achieved) != 3 {
		t.Errorf("expected 3 achieved, got %d", len(p.Achieved))
	}
}

func TestEvaluateNegativeNetWorth(t *testing.T) {
	p := Evaluate(-100, testTable(t))
	if p.Next == nil || p.Next.Progress != 0 {
		t.Errorf("expected zero progress, got %+v", p.Next)
	}
}

func TestEvaluateMonotonic(t *testing.T) {
	table := DefaultTable()
	prevAchieved := 0
	var prevProgress float64
	var prevThreshold float64
	for nw := 0.0; nw <= 1.2e6; nw += 1234.5 {
		p := Evaluate(nw, table)
		if len(p.Achieved) < prevAchieved {
			t.Fatalf("achieved shrank at %v", nw)
		}
		if p.Next != nil {
			if p.Next.Progress < 0 || p.Next.Progress >= 1 {
				t.Fatalf("progress %v out of [0,1) at %v", p.Next.Progress, nw)
			}
			if p.Next.Threshold == prevThreshold && p.Next.Progress < prevProgress {
				t.Fatalf("progress decreased at %v", nw)
			}
			prevProgress, prevThreshold = p.Next.Progress, p.Next.Threshold
		}
		prevAchieved = len(p.Achieved)
	}
}
