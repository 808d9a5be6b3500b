package translate

import (
	"context"
	"sync"
	"time"
)

// Gate enforces a minimum interval between consecutive operations. It is a
// single shared object owned by the Client; every translation call passes
// through it, even when source adapters fetch concurrently.
type Gate struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// NewGate creates a Gate with the given minimum interval.
func NewGate(interval time.Duration) *Gate {
	return &Gate{interval: interval}
}

// Wait blocks until the caller's reserved slot arrives or the context is
// cancelled. Slots are handed out under the mutex, so concurrent callers
// are serialized at least one interval apart.
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	now := time.Now()
	slot := g.next
	if slot.Before(now) {
		slot = now
	}
	g.next = slot.Add(g.interval)
	g.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
