package frame

import (
	"sync"
	"time"
)

// Ticker is a Scheduler that delivers frames from a background goroutine
// at a fixed interval. Callbacks run serially on that goroutine. The
// goroutine only runs while callbacks are pending.
type Ticker struct {
	interval time.Duration
	start    time.Time

	mu      sync.Mutex
	q       queue
	stopped bool
	wake    chan struct{}
	done    chan struct{}
}

// TickerOption configures a Ticker.
type TickerOption func(*Ticker)

// WithInterval sets the refresh interval. Non-positive values keep the
// default.
func WithInterval(d time.Duration) TickerOption {
	return func(t *Ticker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithFPS sets the refresh interval from a frame rate.
func WithFPS(fps int) TickerOption {
	return func(t *Ticker) {
		if fps > 0 {
			t.interval = time.Second / time.Duration(fps)
		}
	}
}

// NewTicker creates a ticker. Call Stop to release its goroutine.
func NewTicker(opts ...TickerOption) *Ticker {
	t := &Ticker{
		interval: DefaultInterval,
		start:    time.Now(),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	go t.loop()
	return t
}

// Interval returns the refresh interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Request implements Scheduler. Requests after Stop are dropped.
func (t *Ticker) Request(cb Callback) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return 0
	}
	id := t.q.add(cb)
	select {
	case t.wake <- struct{}{}:
	default:
	}
	return id
}

// Cancel implements Scheduler.
func (t *Ticker) Cancel(id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.q.remove(id)
}

// Stop ends frame delivery and drops pending callbacks. It waits for a
// frame in progress to finish, so it must not be called from a callback.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	t.q.take()
	t.mu.Unlock()

	close(t.wake)
	<-t.done
}

func (t *Ticker) loop() {
	defer close(t.done)
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		if !t.idleWait() {
			return
		}
		tick.Reset(t.interval)
		for {
			now := <-tick.C
			t.mu.Lock()
			if t.stopped {
				t.mu.Unlock()
				return
			}
			due := t.q.take()
			t.mu.Unlock()

			ts := now.Sub(t.start)
			for _, p := range due {
				p.cb(ts)
			}

			t.mu.Lock()
			idle := len(t.q.items) == 0
			t.mu.Unlock()
			if idle {
				break
			}
		}
	}
}

// idleWait blocks until a callback is requested. It returns false once
// the ticker is stopped.
func (t *Ticker) idleWait() bool {
	for {
		t.mu.Lock()
		if t.stopped {
			t.mu.Unlock()
			return false
		}
		busy := len(t.q.items) > 0
		t.mu.Unlock()
		if busy {
			return true
		}
		if _, ok := <-t.wake; !ok {
			return false
		}
	}
}
