package frame

import (
	"sync"
	"testing"
	"time"
)

func TestManualAdvance(t *testing.T) {
	m := NewManual()
	var got []time.Duration
	m.Request(func(ts time.Duration) { got = append(got, ts) })
	m.Request(func(ts time.Duration) { got = append(got, ts) })

	if m.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", m.Pending())
	}
	if n := m.Advance(16 * time.Millisecond); n != 2 {
		t.Errorf("Advance ran %d callbacks, want 2", n)
	}
	if len(got) != 2 || got[0] != 16*time.Millisecond {
		t.Errorf("timestamps = %v", got)
	}
	if m.Advance(time.Millisecond) != 0 {
		t.Error("callbacks ran twice")
	}
	if m.Now() != 17*time.Millisecond {
		t.Errorf("Now() = %v", m.Now())
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	ran := false
	id := m.Request(func(time.Duration) { ran = true })
	if id == 0 {
		t.Fatal("Request returned the zero ID")
	}
	if !m.Scheduled(id) {
		t.Error("Scheduled() = false for a pending request")
	}
	m.Cancel(id)
	m.Cancel(id)
	m.Cancel(12345)
	m.Advance(time.Millisecond)
	if ran {
		t.Error("cancelled callback ran")
	}
	if m.Scheduled(id) {
		t.Error("Scheduled() = true after Cancel")
	}
}

func TestManualRequestFromCallback(t *testing.T) {
	m := NewManual()
	frames := 0
	var step Callback
	step = func(time.Duration) {
		frames++
		if frames < 3 {
			m.Request(step)
		}
	}
	m.Request(step)

	if m.Advance(time.Millisecond) != 1 {
		t.Error("a callback requested during Advance ran in the same frame")
	}
	for m.Pending() > 0 {
		m.Advance(time.Millisecond)
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
}

func TestTickerDelivers(t *testing.T) {
	tk := NewTicker(WithInterval(time.Millisecond))
	defer tk.Stop()

	var wg sync.WaitGroup
	wg.Add(3)
	var mu sync.Mutex
	var stamps []time.Duration
	var step Callback
	step = func(ts time.Duration) {
		mu.Lock()
		stamps = append(stamps, ts)
		n := len(stamps)
		mu.Unlock()
		wg.Done()
		if n < 3 {
			tk.Request(step)
		}
	}
	tk.Request(step)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ticker did not deliver three frames")
	}

	mu.Lock()
	defer mu.Unlock()
	for i := 1; i < len(stamps); i++ {
		if stamps[i] <= stamps[i-1] {
			t.Errorf("timestamps not increasing: %v", stamps)
		}
	}
}

func TestTickerCancel(t *testing.T) {
	tk := NewTicker(WithInterval(time.Millisecond))
	defer tk.Stop()

	ran := make(chan struct{}, 1)
	id := tk.Request(func(time.Duration) { ran <- struct{}{} })
	tk.Cancel(id)

	confirm := make(chan struct{})
	tk.Request(func(time.Duration) { close(confirm) })
	select {
	case <-confirm:
	case <-time.After(5 * time.Second):
		t.Fatal("ticker stalled")
	}
	select {
	case <-ran:
		t.Error("cancelled callback ran")
	default:
	}
}

func TestTickerStop(t *testing.T) {
	tk := NewTicker()
	tk.Stop()
	tk.Stop()
	if id := tk.Request(func(time.Duration) {}); id != 0 {
		t.Errorf("Request after Stop = %d, want 0", id)
	}
}

func TestTickerOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  TickerOption
		want time.Duration
	}{
		{"default", WithInterval(0), DefaultInterval},
		{"interval", WithInterval(10 * time.Millisecond), 10 * time.Millisecond},
		{"fps", WithFPS(30), time.Second / 30},
		{"bad fps", WithFPS(-1), DefaultInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := NewTicker(tt.opt)
			defer tk.Stop()
			if tk.Interval() != tt.want {
				t.Errorf("Interval() = %v, want %v", tk.Interval(), tt.want)
			}
		})
	}
}
