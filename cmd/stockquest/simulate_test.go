package main

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestSimulateCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &simulateCmd{out: &out}
	f := flag.NewFlagSet("simulate", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-days", "5", "-daily", "-raw"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("expected success, got %v", status)
	}

	got := out.String()
	for _, want := range []string{"## Day 1", "## Day 5", "Summary after day 5", "Holdings", "BUY"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "## Day 6") {
		t.Errorf("simulated too many days:\n%s", got)
	}
}

func TestSimulateCmdNoStrategy(t *testing.T) {
	var out bytes.Buffer
	cmd := &simulateCmd{out: &out}
	f := flag.NewFlagSet("simulate", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-days", "2", "-strategy", "none", "-raw"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("expected success, got %v", status)
	}
	if strings.Contains(out.String(), "Holdings") {
		t.Errorf("expected no holdings:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "$10,000.00") {
		t.Errorf("expected untouched cash:\n%s", out.String())
	}
}

func TestSimulateCmdUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero days", []string{"-days", "0"}},
		{"unknown strategy", []string{"-strategy", "yolo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &simulateCmd{out: &bytes.Buffer{}}
			f := flag.NewFlagSet("simulate", flag.ContinueOnError)
			cmd.SetFlags(f)
			if err := f.Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}
			if status := cmd.Execute(context.Background(), f); status != subcommands.ExitUsageError {
				t.Errorf("expected usage error, got %v", status)
			}
		})
	}
}

func TestMilestonesCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &milestonesCmd{out: &out}
	f := flag.NewFlagSet("milestones", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-raw"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("expected success, got %v", status)
	}
	for _, want := range []string{"# Milestones", "Street Vendor", "Stock Tycoon"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q:\n%s", want, out.String())
		}
	}
}
