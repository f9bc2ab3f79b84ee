package coro

import (
	"runtime"
)

// Context is the coroutine body's view of its own execution state. The entry
// point receives it as its sole argument and uses it to yield values and to
// await suspension strategies.
type Context[R, S any] struct {
	recv    R
	send    S
	next    chan struct{}
	pending Awaiter
	stop    bool
	done    bool
	fault   any
}

// Yield publishes v into the coroutine's single slot and suspends execution
// until the coroutine is resumed. A new yield overwrites any prior unread
// value. The value passed to Send before the resume, if any, becomes the
// return value of Yield.
func (c *Context[R, S]) Yield(v R) S {
	if c.stop {
		panic("coroutine: cannot yield from a coroutine that has been stopped")
	}
	var zero S
	c.send = zero
	c.recv = v
	c.park()
	return c.send
}

// Await evaluates the awaiter protocol at a suspension point: when a reports
// ready the suspension is skipped entirely, otherwise the coroutine parks and
// a's Suspend hook receives the resume token. In both cases a.Resume runs
// before control returns to the body.
func (c *Context[R, S]) Await(a Awaiter) {
	if c.stop {
		panic("coroutine: cannot await from a coroutine that has been stopped")
	}
	if !a.Ready() {
		c.pending = a
		c.park()
	}
	a.Resume()
}

func (c *Context[R, S]) resumeToken() ResumeFunc {
	co := Coroutine[R, S]{ctx: c}
	return func() bool { return co.Next() }
}

// park transfers control back to the resumer and blocks until the coroutine
// is resumed. When the coroutine was stopped while suspended the goroutine
// unwinds instead of returning to the body.
func (c *Context[R, S]) park() {
	c.next <- struct{}{}
	<-c.next
	if c.stop {
		runtime.Goexit()
	}
}
