package coro

// ResumeFunc is the opaque resume token handed to an awaiter when its
// coroutine suspends. Invoking it continues the coroutine exactly like a call
// to Next on the handle, and it reports whether the coroutine reached another
// suspension point. Collaborators must call it at most once per suspension
// and never concurrently with another in-flight resume of the same coroutine.
type ResumeFunc func() bool

// Awaiter governs a single suspension point of a coroutine. Implementations
// are interchangeable suspension strategies sharing this contract; Context.Await
// evaluates the three operations in order.
type Awaiter interface {
	// Ready reports whether the awaited result is already available. When
	// it returns true the suspension is skipped entirely and control falls
	// through without yielding to the resumer.
	Ready() bool

	// Suspend runs once the coroutine is parked, on the resumer's
	// goroutine, before the resuming Next call returns. It receives the
	// token that external code, such as a timer, may later invoke to
	// continue the coroutine from anywhere in the program.
	Suspend(resume ResumeFunc)

	// Resume runs on the coroutine's goroutine right after it is woken,
	// before control returns to the body. It also runs when Ready skipped
	// the suspension.
	Resume()
}
