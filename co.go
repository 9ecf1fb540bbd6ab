package gen

// Co is the suspension handle given to a generator body. It may be copied
// freely into nested calls, but a body must never have more than one Yield
// call in flight at a time; the generator panics if it does.
type Co[Y, R any] struct {
	airlock *airlock[Y, R]
	coro    *coro
}

// Yield hands v out to the caller of the generator and suspends the body
// until the generator is resumed. It returns the value passed to that next
// resumption. Yield is the only point at which a body can suspend.
func (co Co[Y, R]) Yield(v Y) R {
	co.airlock.putYield(v)
	co.coro.pause()
	return co.airlock.takeResume()
}
