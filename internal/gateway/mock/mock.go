// Package mock provides in-process gateway implementations backed by canned
// data behind simulated network latency. It stands in for the real backend
// until one exists.
package mock

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Latency bounds the simulated round-trip delay of every gateway call.
// The zero value disables the delay entirely (useful in tests).
type Latency struct {
	Min time.Duration
	Max time.Duration
}

// DefaultLatency mirrors the 500-1500 ms window the legacy client simulated.
var DefaultLatency = Latency{Min: 500 * time.Millisecond, Max: 1500 * time.Millisecond}

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// sleep blocks for a random duration within the latency window, or returns
// early with the context error if the context is cancelled first.
func (l Latency) sleep(ctx context.Context) error {
	d := l.Min
	if l.Max > l.Min {
		rngMu.Lock()
		d += time.Duration(rng.Int63n(int64(l.Max - l.Min)))
		rngMu.Unlock()
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// daysFromNow returns the current time shifted by the given number of days.
// Seed data uses it so fetches always produce dates relative to "now".
func daysFromNow(days int) time.Time {
	return time.Now().Add(time.Duration(days) * 24 * time.Hour)
}

func hoursAgo(hours int) time.Time {
	return time.Now().Add(-time.Duration(hours) * time.Hour)
}
