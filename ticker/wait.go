package ticker

import (
	"time"

	"github.com/suspendpoint/coro"
)

// WaitAwaiter suspends a coroutine until a duration of ticker time has
// elapsed. Each suspension registers exactly one callback; when the
// accumulated tick time crosses the threshold the callback deregisters
// itself and invokes the resume token exactly once.
type WaitAwaiter struct {
	ticker    *Ticker
	remaining time.Duration
}

var _ coro.Awaiter = (*WaitAwaiter)(nil)

// WaitFor returns an awaiter that keeps a coroutine suspended for d of t's
// tick time. A non-positive d is ready immediately and skips suspension.
func WaitFor(t *Ticker, d time.Duration) *WaitAwaiter {
	return &WaitAwaiter{ticker: t, remaining: d}
}

func (w *WaitAwaiter) Ready() bool { return w.remaining <= 0 }

func (w *WaitAwaiter) Suspend(resume coro.ResumeFunc) {
	w.ticker.Add(func(dt time.Duration) bool {
		w.remaining -= dt
		if w.remaining > 0 {
			return true
		}
		resume()
		return false
	})
}

func (w *WaitAwaiter) Resume() {}
