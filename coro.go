package coro

// Coroutine instances expose APIs allowing the program to drive the execution
// of coroutines.
//
// The type parameter R represents the type of values that the program can
// receive from the coroutine (what it yields), and the type parameter S is
// what the program can send back to a coroutine yield point.
type Coroutine[R, S any] struct{ ctx *Context[R, S] }

// Recv returns the last value that the coroutine has yielded. The method must
// be called only after a call to Next has returned true, or the return value
// is undefined. Calling the method multiple times after a call to Next returns
// the same value each time.
func (c Coroutine[R, S]) Recv() R { return c.ctx.recv }

// Send sets the value that will be seen by the coroutine after it resumes from
// a yield point. Calling the method multiple times before a call to Next does
// not result in sending multiple values, only the last value sent will be seen
// by the coroutine.
func (c Coroutine[R, S]) Send(v S) { c.ctx.send = v }

// Stop interrupts the coroutine. On the next call to Next, the coroutine will
// not return from its suspension point; instead, it unwinds its call stack,
// calling each defer statement in the inverse order that they were declared.
//
// Stop is idempotent, calling it multiple times or after completion of the
// coroutine has no effect.
//
// This method is just an interrupt mechanism, the program does not have to
// call it to release the coroutine resources after completion.
func (c Coroutine[R, S]) Stop() { c.ctx.stop = true }

// Done returns true if the coroutine completed, either because it was stopped
// or because its function returned.
func (c Coroutine[R, S]) Done() bool { return c.ctx.done }

// Err returns the value recovered from a panic that escaped the coroutine
// body, or nil. Faults are contained at the coroutine boundary: they complete
// the coroutine instead of propagating to the resumer.
func (c Coroutine[R, S]) Err() any { return c.ctx.fault }

// Next executes the coroutine until its next suspension point, or until
// completion. The method returns true if the coroutine suspended, after which
// the program may call Recv to obtain the value that the coroutine yielded,
// and Send to set the value that will be returned from the yield point.
//
// When the suspension point is governed by an awaiter, its Suspend hook runs
// before Next returns, on the resumer's goroutine, with the coroutine already
// parked. Whatever resume token was handed out there continues the coroutine
// exactly like a call to Next.
func (c Coroutine[R, S]) Next() bool {
	if c.ctx.done {
		return false
	}
	c.ctx.next <- struct{}{}
	_, ok := <-c.ctx.next
	if ok && c.ctx.pending != nil {
		a := c.ctx.pending
		c.ctx.pending = nil
		a.Suspend(c.ctx.resumeToken())
	}
	return ok
}

// New creates a new coroutine which executes f as entry point. The coroutine
// starts suspended: no code of f runs until the first call to Next.
func New[R, S any](f func(*Context[R, S])) Coroutine[R, S] {
	c := &Context[R, S]{
		next: make(chan struct{}),
	}

	go func() {
		defer func() {
			c.done = true
			if v := recover(); v != nil {
				c.fault = v
			}
			close(c.next)
		}()

		<-c.next

		if !c.stop {
			f(c)
		}
	}()

	return Coroutine[R, S]{ctx: c}
}

// NewStarted creates a new coroutine and immediately executes f up to its
// first suspension point, or to completion if f never suspends. This is the
// run-immediately start policy: by the time NewStarted returns, every side
// effect of f preceding its first suspension has already happened.
func NewStarted[R, S any](f func(*Context[R, S])) Coroutine[R, S] {
	c := New(f)
	c.Next()
	return c
}

// Run executes a coroutine to completion, calling f for each value that the
// coroutine yields, and sending back each value that f returns.
func Run[R, S any](c Coroutine[R, S], f func(R) S) {
	// The coroutine is run to completion, but f might panic in which case we
	// don't want to leave it in an uncompleted state and interrupt it instead.
	defer func() {
		if !c.Done() {
			c.Stop()
			c.Next()
		}
	}()

	for c.Next() {
		r := c.Recv()
		s := f(r)
		c.Send(s)
	}
}
