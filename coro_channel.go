//go:build !linkname

package gen

import "runtime"

// coro runs a function as a pollable computation on its own goroutine. The
// caller and the goroutine alternate over an unbuffered channel in a strict
// ping-pong: at most one side is runnable at any instant, and the function's
// stack stays in place across suspensions, so its locals survive each pause
// untouched.
type coro struct {
	turn     chan struct{}
	perr     *PanicError
	stopping bool
	done     bool
}

// newCoro creates a coro executing f. The function does not start running
// until the first call to resume.
func newCoro(f func()) *coro {
	c := &coro{turn: make(chan struct{})}

	go func() {
		defer func() {
			c.done = true
			if v := recover(); v != nil {
				c.perr = newPanicError(v)
			}
			close(c.turn)
		}()

		<-c.turn
		if !c.stopping {
			f()
		}
	}()

	return c
}

// resume advances the computation until its next pause or its completion,
// reporting whether it paused. A panic raised by the computation is
// re-raised here, on the resuming side.
func (c *coro) resume() bool {
	c.turn <- struct{}{}
	_, ok := <-c.turn
	if c.perr != nil {
		panic(c.perr)
	}
	return ok
}

// pause returns control to the caller of resume and blocks until the next
// resume. It must be called from inside the computation.
func (c *coro) pause() {
	c.turn <- struct{}{}
	<-c.turn
	if c.stopping {
		runtime.Goexit()
	}
}

// stop interrupts the computation: its stack unwinds from the current pause
// point, running deferred calls in the usual order, and the coro becomes
// done. Stopping a coro that was never resumed prevents the function from
// starting at all. stop is idempotent.
func (c *coro) stop() {
	if c.done {
		return
	}
	c.stopping = true
	c.turn <- struct{}{}
	<-c.turn
	if c.perr != nil {
		panic(c.perr)
	}
}
