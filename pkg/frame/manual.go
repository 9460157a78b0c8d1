package frame

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls.
// It is safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Duration
	q   queue
}

// NewManual returns a scheduler whose clock starts at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Request implements Scheduler.
func (m *Manual) Request(cb Callback) ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.q.add(cb)
}

// Cancel implements Scheduler.
func (m *Manual) Cancel(id ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.q.remove(id)
}

// Advance moves the clock forward by d and runs the callbacks that were
// pending before the call. Callbacks requested while they run wait for the
// next Advance. It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	m.now += d
	now := m.now
	due := m.q.take()
	m.mu.Unlock()

	for _, p := range due {
		p.cb(now)
	}
	return len(due)
}

// Now returns the current frame timestamp.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of callbacks waiting for the next frame.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.q.items)
}

// Scheduled reports whether id is still waiting to run.
func (m *Manual) Scheduled(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.q.has(id)
}
