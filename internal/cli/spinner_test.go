package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDrawsOnTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, true, "Rendering frames...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Rendering frames...") {
		t.Errorf("spinner output %q should contain the message", buf.String())
	}
}

func TestSpinnerSilentWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, false, "Rendering frames...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("spinner wrote %q to a non-terminal", buf.String())
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerTo(ctx, io.Discard, false, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerTo(ctx, io.Discard, false, "Testing with timeout...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStop(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Spinner)
	}{
		{"idempotent", func(s *Spinner) { s.Start(); s.Stop(); s.Stop(); s.Stop() }},
		{"without start", func(s *Spinner) { s.Stop() }},
		{"with success", func(s *Spinner) { s.Start(); s.StopWithSuccess("Exported 61 frames") }},
		{"with error", func(s *Spinner) { s.Start(); s.StopWithError("Frame export failed") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := newSpinnerTo(context.Background(), &buf, true, "Rendering frames...")
			tt.run(s)
			if !s.Cancelled() {
				t.Error("Stop should cancel the spinner context")
			}
		})
	}
}
