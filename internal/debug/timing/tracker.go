// Package timing keeps running duration statistics per named operation.
package timing

import (
	"sync"
	"time"
)

// Span is an operation in progress
type Span struct {
	Operation string
	StartTime time.Time
}

// Stats summarizes the completed spans of one operation
type Stats struct {
	Count int
	Total time.Duration
	Max   time.Duration
	Last  time.Duration
}

func (s Stats) Average() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

type Tracker struct {
	stats map[string]Stats
	mu    sync.Mutex
	now   func() time.Time
}

// NewTracker measures with now, or the wall clock when now is nil
func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		stats: make(map[string]Stats),
		now:   now,
	}
}

func (t *Tracker) StartTiming(operation string) Span {
	return Span{Operation: operation, StartTime: t.now()}
}

// EndTiming records span and returns the updated stats of its operation
func (t *Tracker) EndTiming(span Span) Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.stats[span.Operation]
	if span.StartTime.IsZero() {
		return s
	}

	duration := t.now().Sub(span.StartTime)
	s.Count++
	s.Total += duration
	s.Last = duration
	if duration > s.Max {
		s.Max = duration
	}
	t.stats[span.Operation] = s
	return s
}

func (t *Tracker) Stats(operation string) Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats[operation]
}
