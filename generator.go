package coro

import (
	"golang.org/x/exp/constraints"
)

// Generator is a single-slot value producer backed by a suspended coroutine.
// It retains at most one yielded value at a time; producer and consumer are
// strictly lock-step, one value per call to Next.
type Generator[T any] struct {
	coro Coroutine[T, struct{}]
}

// NewGenerator creates a generator executing f as entry point. The generator
// starts suspended: no code of f runs until the first call to Next. Each call
// to yield inside f publishes one value and suspends f until the next Next.
func NewGenerator[T any](f func(yield func(T))) *Generator[T] {
	g := &Generator[T]{}
	g.coro = New(func(c *Context[T, struct{}]) {
		f(func(v T) { c.Yield(v) })
	})
	return g
}

// Next resumes the generator until it yields its next value, or until
// completion. It returns true if a value is available to Recv. A body that
// returns without ever yielding makes the very first call return false.
func (g *Generator[T]) Next() bool { return g.coro.Next() }

// Recv moves the last yielded value out of the generator's slot. It must be
// called only after a call to Next has returned true; a second Recv without
// an intervening Next observes the zero value.
func (g *Generator[T]) Recv() T {
	v := g.coro.ctx.recv
	var zero T
	g.coro.ctx.recv = zero
	return v
}

// Stop releases the wrapped coroutine. Stopping a generator that was never
// advanced runs no body code; stopping one whose body already completed is a
// no-op. The generator must not be used after Stop.
func (g *Generator[T]) Stop() {
	g.coro.Stop()
	g.coro.Next()
}

// Range returns a generator producing from, from+step, ... up to but not
// including to. A non-positive step or an empty interval produces no values.
func Range[T constraints.Integer](from, to, step T) *Generator[T] {
	return NewGenerator(func(yield func(T)) {
		if step <= 0 {
			return
		}
		for v := from; v < to; v += step {
			yield(v)
		}
	})
}
