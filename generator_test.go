package coro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/suspendpoint/coro"
)

func fibonacci(amount int) *coro.Generator[int] {
	return coro.NewGenerator(func(yield func(int)) {
		if amount <= 0 {
			return
		}
		n1, n2 := 1, 1
		for i := 1; i <= amount; i++ {
			if i < 3 {
				yield(1)
			} else {
				n1, n2 = n2, n1+n2
				yield(n2)
			}
		}
	})
}

func collect[T any](g *coro.Generator[T]) (out []T) {
	for g.Next() {
		out = append(out, g.Recv())
	}
	return
}

func TestGeneratorSequence(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := coro.NewGenerator(func(yield func(int)) {
		yield(1)
		yield(2)
		yield(3)
	})
	defer g.Stop()

	for want := 1; want <= 3; want++ {
		require.True(t, g.Next())
		assert.Equal(t, want, g.Recv())
	}
	assert.False(t, g.Next(), "the advance after the last yield reports completion")
	assert.False(t, g.Next())
}

func TestFibonacci(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("N=10", func(t *testing.T) {
		g := fibonacci(10)
		defer g.Stop()
		assert.Equal(t, []int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}, collect(g))
	})

	for _, n := range []int{0, -5} {
		g := fibonacci(n)
		assert.False(t, g.Next(), "a non-positive count produces no values")
		g.Stop()
	}
}

func TestGeneratorStopWithoutAdvance(t *testing.T) {
	defer goleak.VerifyNone(t)

	ran := false
	g := coro.NewGenerator(func(yield func(int)) {
		ran = true
		yield(1)
	})

	g.Stop()
	assert.False(t, ran, "destroying an unadvanced generator must not run body code")
}

func TestGeneratorStopMidway(t *testing.T) {
	defer goleak.VerifyNone(t)

	cleaned := false
	g := coro.NewGenerator(func(yield func(int)) {
		defer func() { cleaned = true }()
		for i := 0; i < 5; i++ {
			yield(i)
		}
	})

	require.True(t, g.Next())
	require.True(t, g.Next())
	g.Stop()
	assert.True(t, cleaned, "Stop unwinds the body's deferred statements")
}

func TestRecvMovesValue(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := coro.NewGenerator(func(yield func(string)) {
		yield("value")
	})
	defer g.Stop()

	require.True(t, g.Next())
	assert.Equal(t, "value", g.Recv())
	assert.Zero(t, g.Recv(), "a second Recv without an intervening Next observes the moved-from slot")
}

// TestLockstep checks the round-trip property: the number of true advances
// equals the number of yields, for fall-through and early-return bodies alike.
func TestLockstep(t *testing.T) {
	defer goleak.VerifyNone(t)

	bodies := map[string]struct {
		f      func(yield func(int))
		yields int
	}{
		"empty":  {func(yield func(int)) {}, 0},
		"single": {func(yield func(int)) { yield(7) }, 1},
		"loop": {func(yield func(int)) {
			for i := 0; i < 4; i++ {
				yield(i)
			}
		}, 4},
		"early return": {func(yield func(int)) {
			for i := 1; ; i++ {
				if i > 2 {
					return
				}
				yield(i)
			}
		}, 2},
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			g := coro.NewGenerator(body.f)
			defer g.Stop()

			advances := 0
			for g.Next() {
				advances++
			}
			assert.Equal(t, body.yields, advances)
		})
	}
}

func TestRange(t *testing.T) {
	defer goleak.VerifyNone(t)

	assert.Equal(t, []int{0, 3, 6, 9}, collect(coro.Range(0, 10, 3)))
	assert.Nil(t, collect(coro.Range(5, 5, 1)), "an empty interval produces no values")
	assert.Nil(t, collect(coro.Range(0, 3, 0)), "a non-positive step produces no values")
}
