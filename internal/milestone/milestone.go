// Package milestone reports progress toward net-worth goals.
package milestone

import (
	"errors"
	"sort"
)

var (
	ErrInvalidThreshold   = errors.New("milestone threshold must be positive")
	ErrDuplicateThreshold = errors.New("duplicate milestone threshold")
)

// Milestone is a net-worth goal.
type Milestone struct {
	Threshold   float64
	Description string
}

// Table is an immutable set of milestones sorted by threshold.
type Table struct {
	entries []Milestone
}

// NewTable validates and sorts milestones into a Table.
func NewTable(milestones ...Milestone) (Table, error) {
	entries := make([]Milestone, len(milestones))
	copy(entries, milestones)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Threshold < entries[j].Threshold })

	for i, m := range entries {
		if !(m.Threshold > 0) {
			return Table{}, ErrInvalidThreshold
		}
		if i > 0 && entries[i-1].Threshold == m.Threshold {
			return Table{}, ErrDuplicateThreshold
		}
	}
	return Table{entries: entries}, nil
}

// DefaultMilestones is the built-in goal ladder.
var DefaultMilestones = []Milestone{
	{Threshold: 15000, Description: "Street Vendor"},
	{Threshold: 25000, Description: "Day Trader"},
	{Threshold: 50000, Description: "Fund Manager"},
	{Threshold: 100000, Description: "Market Maker"},
	{Threshold: 250000, Description: "Wall Street Legend"},
	{Threshold: 1000000, Description: "Stock Tycoon"},
}

// DefaultTable returns a Table of DefaultMilestones.
func DefaultTable() Table {
	t, _ := NewTable(DefaultMilestones...)
	return t
}

// Milestones returns a copy of the table entries in ascending order.
func (t Table) Milestones() []Milestone {
	out := make([]Milestone, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of milestones.
func (t Table) Len() int { return len(t.entries) }

// Next is the closest milestone not yet reached.
type Next struct {
	Milestone
	// Progress is net worth as a fraction of the threshold, in [0, 1).
	Progress float64
}

// Progress is the evaluation of a net worth against a Table.
type Progress struct {
	NetWorth float64
	Achieved []Milestone
	Next     *Next
}

// Won reports whether every milestone has been reached.
func (p Progress) Won() bool { return p.Next == nil }

// Evaluate splits the table into milestones reached by netWorth and the next
// one to reach. A threshold equal to netWorth counts as reached.
func Evaluate(netWorth float64, t Table) Progress {
	p := Progress{NetWorth: netWorth}
	for i, m := range t.entries {
		if m.Threshold <= netWorth {
			p.Achieved = append(p.Achieved, m)
			continue
		}
		p.Next = &Next{
			Milestone: t.entries[i],
			Progress:  max(0, netWorth/m.Threshold),
		}
		break
	}
	return p
}
