//go:build linkname

package gen

import (
	_ "unsafe"
)

// The linkname build switches the substrate to the runtime's native
// coroutines, the mechanism behind iter.Pull. Each step is a direct stack
// switch with no scheduler round-trip, but it reaches into runtime private
// functions, so it is opt-in.

type coroutine struct{}

//go:linkname newcoro runtime.newcoro
func newcoro(func(*coroutine)) *coroutine

//go:linkname coroswitch runtime.coroswitch
func coroswitch(*coroutine)

// coroStop is panicked inside the computation to unwind its stack when the
// coro is stopped.
var coroStop struct{}

// coro runs a function as a pollable computation on a runtime coroutine.
// The semantics match the channel-based build: the function starts on the
// first resume, pauses only inside pause, and never runs concurrently with
// its resumer.
type coro struct {
	c        *coroutine
	perr     *PanicError
	stopping bool
	done     bool
}

func newCoro(f func()) *coro {
	c := &coro{}
	c.c = newcoro(func(*coroutine) {
		defer func() {
			c.done = true
			if v := recover(); v != nil && v != coroStop {
				c.perr = newPanicError(v)
			}
		}()

		if !c.stopping {
			f()
		}
	})
	return c
}

func (c *coro) resume() bool {
	coroswitch(c.c)
	if c.perr != nil {
		panic(c.perr)
	}
	return !c.done
}

func (c *coro) pause() {
	coroswitch(c.c)
	if c.stopping {
		panic(coroStop)
	}
}

func (c *coro) stop() {
	if c.done {
		return
	}
	c.stopping = true
	coroswitch(c.c)
	if c.perr != nil {
		panic(c.perr)
	}
}
