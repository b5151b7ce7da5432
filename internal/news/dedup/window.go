// Package dedup tracks event texts used within a rolling window of days.
//
// The window is not sliding: once span days have elapsed since it was
// started, every entry is dropped at once and the window restarts at the
// current day.
package dedup

// DefaultSpan is the number of days a text stays reserved.
const DefaultSpan = 30

// Window is the set of event texts used since StartDay.
type Window struct {
	span    int
	start   int
	entries map[string]struct{}
}

// NewWindow creates an empty window starting at startDay.
func NewWindow(span, startDay int) *Window {
	if span <= 0 {
		span = DefaultSpan
	}
	return &Window{
		span:    span,
		start:   startDay,
		entries: make(map[string]struct{}),
	}
}

// Roll clears the window if day is at least span days past its start.
// It reports whether a reset happened.
func (w *Window) Roll(day int) bool {
	if day-w.start < w.span {
		return false
	}
	clear(w.entries)
	w.start = day
	return true
}

// Contains reports whether text was used in the current window.
func (w *Window) Contains(text string) bool {
	_, ok := w.entries[text]
	return ok
}

// Add records text. It reports false if text was already present.
func (w *Window) Add(text string) bool {
	if w.Contains(text) {
		return false
	}
	w.entries[text] = struct{}{}
	return true
}

// StartDay returns the day the window was last reset.
func (w *Window) StartDay() int { return w.start }

// Span returns the window length in days.
func (w *Window) Span() int { return w.span }

// Len returns the number of texts in the window.
func (w *Window) Len() int { return len(w.entries) }
