// Package frame schedules per-frame callbacks the way a display refresh
// loop does.
//
// A callback registered with [Scheduler.Request] runs once, on the next
// frame, and receives the frame timestamp measured from the scheduler's
// start. Animations re-request from inside the callback to keep running.
//
// [Ticker] delivers frames from a goroutine at a fixed refresh interval.
// [Manual] delivers frames only when [Manual.Advance] is called, which
// makes animations deterministic in tests and lets the CLI render an
// animation offline frame by frame.
package frame

import "time"

// ID identifies a pending callback. The zero ID is never issued.
type ID uint64

// Callback receives the frame timestamp.
type Callback func(ts time.Duration)

// Scheduler runs callbacks on the next frame.
type Scheduler interface {
	// Request schedules cb for the next frame.
	Request(cb Callback) ID
	// Cancel drops a pending callback. Unknown or already run IDs are
	// ignored.
	Cancel(id ID)
}

// DefaultInterval is a 60Hz refresh.
const DefaultInterval = time.Second / 60

type pending struct {
	id ID
	cb Callback
}

// queue is the bookkeeping shared by the schedulers. Callers hold the
// owning scheduler's lock.
type queue struct {
	next  ID
	items []pending
}

func (q *queue) add(cb Callback) ID {
	q.next++
	q.items = append(q.items, pending{id: q.next, cb: cb})
	return q.next
}

func (q *queue) remove(id ID) {
	for i, p := range q.items {
		if p.id == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// take removes and returns every queued callback.
func (q *queue) take() []pending {
	items := q.items
	q.items = nil
	return items
}

func (q *queue) has(id ID) bool {
	for _, p := range q.items {
		if p.id == id {
			return true
		}
	}
	return false
}
