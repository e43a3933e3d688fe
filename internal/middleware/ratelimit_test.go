package middleware

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestClientLimiterConcurrentFirstRequests(t *testing.T) {
	// 1/min: a single token per client
	cl := newClientLimiter(1)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if cl.allow("10.0.0.1") == nil {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("expected exactly 1 allowed request, got %d", got)
	}
}

func TestClientLimiterPerClient(t *testing.T) {
	cl := newClientLimiter(1)

	if err := cl.allow("10.0.0.1"); err != nil {
		t.Fatalf("first request from client 1: %v", err)
	}
	if err := cl.allow("10.0.0.2"); err != nil {
		t.Fatalf("first request from client 2: %v", err)
	}
	if err := cl.allow("10.0.0.1"); err == nil {
		t.Error("expected second request from client 1 to be limited")
	}
}

func TestNewClientLimiterBurst(t *testing.T) {
	tcs := map[int]int{1: 1, 9: 1, 60: 6, 600: 60}
	for perMin, want := range tcs {
		if got := newClientLimiter(perMin).burst; got != want {
			t.Errorf("perMin %d: expected burst %d, got %d", perMin, want, got)
		}
	}
}
