package gen

import "errors"

// ErrCompleted is the panic value raised when a generator is resumed after
// it reported completion.
var ErrCompleted = errors.New("gen: generator resumed after completion")

// Gen is a heap-allocated generator. It exclusively owns the suspended body
// and shares a single exchange slot with the body's Co handle. The zero
// value is not usable; generators are created with New.
//
// The type parameter Y is the type of values the body yields, R is the type
// of values the caller sends back in at each resumption, and T is the
// body's final return type.
type Gen[Y, R, T any] struct {
	airlock *airlock[Y, R]
	coro    *coro
	ret     T
}

// New creates a generator executing body. The body receives a Co handle
// whose Yield method is its only way to suspend; it does not start running
// until the first resumption.
func New[Y, R, T any](body func(co Co[Y, R]) T) *Gen[Y, R, T] {
	g := &Gen[Y, R, T]{airlock: new(airlock[Y, R])}
	// The closure runs no earlier than the first resume, by which time
	// both fields it captures through g are set.
	g.coro = newCoro(func() {
		g.ret = body(Co[Y, R]{airlock: g.airlock, coro: g.coro})
	})
	return g
}

// ResumeWith advances the generator by exactly one step: the body runs from
// its current suspension point (or its beginning) until its next Yield or
// its completion. The argument becomes the return value of the Yield call
// the body is currently suspended in; on the first resumption of a body
// that does not yield immediately, it is discarded.
//
// ResumeWith panics with ErrCompleted if the generator already completed,
// and re-panics with a *PanicError if the body panics.
func (g *Gen[Y, R, T]) ResumeWith(r R) State[Y, T] {
	if g.coro.done {
		if g.coro.perr != nil {
			panic(g.coro.perr)
		}
		panic(ErrCompleted)
	}
	g.airlock.putResume(r)
	if g.coro.resume() {
		return State[Y, T]{value: g.airlock.takeYield()}
	}
	// A body that finished without yielding leaves the hand-in value
	// unconsumed; drop it so the slot is empty between steps.
	g.airlock.clear()
	return State[Y, T]{ret: g.ret, done: true}
}

// Resume is ResumeWith with the zero resume value, for generators whose
// resume type carries no information.
func (g *Gen[Y, R, T]) Resume() State[Y, T] {
	var zero R
	return g.ResumeWith(zero)
}

// Done reports whether the generator completed, either because its body
// returned, panicked, or was stopped.
func (g *Gen[Y, R, T]) Done() bool {
	return g.coro.done
}

// Stop interrupts the generator. The body does not return from its current
// yield point; its stack unwinds, calling each deferred function in the
// inverse order it was declared, and the generator becomes done. A
// generator that was never resumed is stopped before its body ever runs.
//
// Stop is idempotent; calling it after completion has no effect.
func (g *Gen[Y, R, T]) Stop() {
	g.coro.stop()
	g.airlock.clear()
}

// Run drives g to completion, calling f for each value the generator
// yields and sending back each value that f returns. It returns the body's
// final return value. If f panics, the generator is stopped before the
// panic propagates so that it is not left suspended mid-step.
func Run[Y, R, T any](g *Gen[Y, R, T], f func(Y) R) T {
	defer func() {
		if !g.Done() {
			g.Stop()
		}
	}()

	s := g.Resume()
	for {
		v, ok := s.Yielded()
		if !ok {
			ret, _ := s.Returned()
			return ret
		}
		s = g.ResumeWith(f(v))
	}
}
