package view

import (
	"sync"

	"github.com/zappabad/stockquest/internal/news"
)

// NewsView maintains a bounded ring buffer of events.
type NewsView struct {
	mu    sync.RWMutex
	buf   []news.Event
	size  int
	start int
	count int
	total int
}

// NewNewsView creates a new NewsView with the given capacity.
func NewNewsView(capacity int) *NewsView {
	if capacity <= 0 {
		capacity = 100
	}
	return &NewsView{
		buf:  make([]news.Event, capacity),
		size: capacity,
	}
}

// Append adds an event to the view, overwriting the oldest when full.
func (v *NewsView) Append(ev news.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.total++
	if v.count < v.size {
		v.buf[(v.start+v.count)%v.size] = ev
		v.count++
		return
	}
	// overwrite oldest
	v.buf[v.start] = ev
	v.start = (v.start + 1) % v.size
}

// Latest returns the last n events in chronological order (oldest first).
// Returns a copy (not internal references).
func (v *NewsView) Latest(n int) []news.Event {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if n <= 0 || v.count == 0 {
		return nil
	}
	if n > v.count {
		n = v.count
	}

	out := make([]news.Event, n)
	// take last n in chronological order
	first := (v.start + (v.count - n)) % v.size
	for i := 0; i < n; i++ {
		out[i] = v.buf[(first+i)%v.size]
	}
	return out
}

// Count returns the number of events held in the view.
func (v *NewsView) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.count
}

// Total returns the number of events ever appended.
func (v *NewsView) Total() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.total
}
