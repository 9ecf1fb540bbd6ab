package gen

import "fmt"

// direction tags the value pending in an airlock.
type direction int8

const (
	dirEmpty direction = iota
	dirResume
	dirYield
)

func (d direction) String() string {
	switch d {
	case dirEmpty:
		return "empty"
	case dirResume:
		return "resume"
	case dirYield:
		return "yield"
	default:
		return fmt.Sprintf("direction(%d)", int8(d))
	}
}

// airlock is the single slot through which the driver and the body exchange
// values, holding at most one pending value tagged by the direction it
// travels. Access alternates strictly between the two sides of a generator,
// so the slot needs no locking; the tag checks fail fast when the
// yield/resume pairing is broken, because silently dropping a pending value
// would corrupt every subsequent step.
type airlock[Y, R any] struct {
	dir direction
	y   Y
	r   R
}

// putResume stores the value handed in by the driver. The slot must be
// empty: a pending value here means a step completed without consuming it,
// which the driver never allows.
func (a *airlock[Y, R]) putResume(r R) {
	if a.dir != dirEmpty {
		panic("gen: airlock: resume value written over a pending " + a.dir.String() + " value")
	}
	a.dir = dirResume
	a.r = r
}

// putYield stores the value handed out by the body. A pending resume value
// is forfeited: it is addressed to the body, and the body yielding without
// reading it is how a not-yet-started body ignores the first hand-in value.
// A pending yield value means the body suspended twice without the driver
// reading the first value.
func (a *airlock[Y, R]) putYield(y Y) {
	if a.dir == dirYield {
		panic("gen: airlock: yield value written over a pending yield value")
	}
	var zero R
	a.dir = dirYield
	a.y = y
	a.r = zero
}

func (a *airlock[Y, R]) takeResume() R {
	if a.dir != dirResume {
		panic("gen: airlock: no resume value pending (slot is " + a.dir.String() + ")")
	}
	r := a.r
	a.clear()
	return r
}

func (a *airlock[Y, R]) takeYield() Y {
	if a.dir != dirYield {
		panic("gen: airlock: no yield value pending (slot is " + a.dir.String() + ")")
	}
	y := a.y
	a.clear()
	return y
}

// clear resets the slot to empty, dropping whatever is pending.
func (a *airlock[Y, R]) clear() {
	var zeroY Y
	var zeroR R
	a.dir = dirEmpty
	a.y = zeroY
	a.r = zeroR
}
