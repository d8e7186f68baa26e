package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureSpinner(ctx context.Context, msg string) (*Spinner, *syncBuffer) {
	buf := &syncBuffer{}
	s := newSpinnerWithContext(ctx, msg)
	s.w = buf
	return s, buf
}

func TestSpinnerDrawsMessage(t *testing.T) {
	s, buf := captureSpinner(context.Background(), "Fetching octocat/hello-world")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Fetching octocat/hello-world") {
		t.Errorf("output %q should contain the message", buf.String())
	}
	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestSpinnerUpdate(t *testing.T) {
	s, buf := captureSpinner(context.Background(), "Fetching")
	s.Start()
	time.Sleep(120 * time.Millisecond)
	s.Update("Rendering classic")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Rendering classic") {
		t.Errorf("output %q should contain the updated message", buf.String())
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, _ := captureSpinner(ctx, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	s, _ := captureSpinner(ctx, "Testing with timeout...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := captureSpinner(context.Background(), "Testing idempotent stop...")
	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithStatus(t *testing.T) {
	var out bytes.Buffer
	stdout = &out
	t.Cleanup(restoreStdout)

	s, _ := captureSpinner(context.Background(), "Rendering")
	s.Start()
	s.StopWithSuccess("Rendered 6 cards")

	s, _ = captureSpinner(context.Background(), "Rendering")
	s.Start()
	s.StopWithError("no cards rendered")

	for _, want := range []string{"Rendered 6 cards", "no cards rendered"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("status output %q missing %q", out.String(), want)
		}
	}
}
