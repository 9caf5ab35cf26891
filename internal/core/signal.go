package core

import (
	"context"
	"sync"
)

// Signal broadcasts "the feed changed" to any number of subscriptions.
// It carries no payload: a woken subscriber re-reads the feed itself, so a
// burst of notifications between two waits collapses into a single re-read.
//
// The version starts at 1 so the initial state counts as an observable
// change: a fresh subscription's first Next returns immediately instead of
// waiting for the next append.
type Signal struct {
	mu      sync.Mutex
	version uint64
	changed chan struct{}
}

// NewSignal creates a signal at version 1 with no subscribers.
func NewSignal() *Signal {
	return &Signal{
		version: 1,
		changed: make(chan struct{}),
	}
}

// Notify advances the version and wakes every subscription currently blocked
// in Next. It never fails and never blocks on subscribers.
func (s *Signal) Notify() {
	s.mu.Lock()
	s.version++
	close(s.changed)
	s.changed = make(chan struct{})
	s.mu.Unlock()
}

// Version returns the current version.
func (s *Signal) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe registers a new subscription. The subscription has observed no
// version yet, so its first Next resolves against the current state.
//
// The signal keeps no reference to the subscription: dropping it leaks
// nothing, and Close exists to unblock a Next running on another goroutine.
func (s *Signal) Subscribe() *Subscription {
	return &Subscription{
		signal: s,
		closed: make(chan struct{}),
	}
}

// Subscription is one reader's view of a Signal. Next must not be called
// concurrently with itself; Close may be called from any goroutine.
type Subscription struct {
	signal    *Signal
	seen      uint64
	closeOnce sync.Once
	closed    chan struct{}
}

// Next blocks until the signal's version advances past the last version this
// subscription observed, then returns the new version. A single Notify wakes
// every blocked subscription; notifications that arrived while the caller was
// not waiting coalesce into one return carrying the latest version.
//
// Next returns ctx.Err() on context cancellation and ErrSubscriptionClosed
// after Close.
func (sub *Subscription) Next(ctx context.Context) (uint64, error) {
	for {
		select {
		case <-sub.closed:
			return 0, ErrSubscriptionClosed
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		sub.signal.mu.Lock()
		if v := sub.signal.version; v > sub.seen {
			sub.seen = v
			sub.signal.mu.Unlock()
			return v, nil
		}
		wake := sub.signal.changed
		sub.signal.mu.Unlock()

		select {
		case <-wake:
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-sub.closed:
			return 0, ErrSubscriptionClosed
		}
	}
}

// Close releases the subscription. A Next blocked on another goroutine
// returns ErrSubscriptionClosed promptly. Close is idempotent.
func (sub *Subscription) Close() {
	sub.closeOnce.Do(func() {
		close(sub.closed)
	})
}
