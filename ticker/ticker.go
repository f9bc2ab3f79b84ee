// Package ticker provides a minimal periodic-callback registry in the style
// of game-engine core tickers, plus an awaiter that suspends a coroutine for
// a duration of ticker time.
package ticker

import (
	"context"
	"sync"
	"time"
)

// Handle identifies a registered callback so it can be removed later.
type Handle uint64

// Callback is invoked on every tick with the time elapsed since the previous
// tick. Returning false deregisters the callback.
type Callback func(dt time.Duration) bool

// Ticker dispatches registered callbacks once per tick. Ticks are pumped
// either manually with Tick or from a real-time loop with Run; the two must
// not be mixed on the same Ticker.
type Ticker struct {
	mu        sync.Mutex
	lastID    Handle
	callbacks map[Handle]Callback
}

func New() *Ticker {
	return &Ticker{callbacks: make(map[Handle]Callback)}
}

// Add registers fn to be invoked on every subsequent tick.
func (t *Ticker) Add(fn Callback) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastID++
	t.callbacks[t.lastID] = fn
	return t.lastID
}

// Remove deregisters the callback identified by h. Removing a handle that is
// no longer registered has no effect.
func (t *Ticker) Remove(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.callbacks, h)
}

// Count returns the number of currently registered callbacks.
func (t *Ticker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.callbacks)
}

// Tick invokes every callback that was registered when Tick was called.
// Callbacks run without the registry lock held, so they may add or remove
// registrations; additions are observed on the following tick.
func (t *Ticker) Tick(dt time.Duration) {
	t.mu.Lock()
	handles := make([]Handle, 0, len(t.callbacks))
	for h := range t.callbacks {
		handles = append(handles, h)
	}
	t.mu.Unlock()

	for _, h := range handles {
		t.mu.Lock()
		fn, ok := t.callbacks[h]
		t.mu.Unlock()
		if !ok {
			continue
		}
		if !fn(dt) {
			t.Remove(h)
		}
	}
}

// Run pumps Tick at the given interval until ctx is canceled, reporting the
// measured elapsed time between ticks. It returns the context's error.
func (t *Ticker) Run(ctx context.Context, interval time.Duration) error {
	tk := time.NewTicker(interval)
	defer tk.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tk.C:
			t.Tick(now.Sub(last))
			last = now
		}
	}
}
