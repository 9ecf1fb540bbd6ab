package gen

import "fmt"

// State is the outcome of a single resumption step: either the generator
// paused at a yield point and produced a value, or its body ran to
// completion and produced a final return value.
type State[Y, T any] struct {
	value Y
	ret   T
	done  bool
}

// Yielded returns the yielded value when the step paused at a yield point.
func (s State[Y, T]) Yielded() (Y, bool) {
	return s.value, !s.done
}

// Returned returns the body's return value when the step ran to completion.
func (s State[Y, T]) Returned() (T, bool) {
	return s.ret, s.done
}

// Done reports whether the step completed the generator.
func (s State[Y, T]) Done() bool {
	return s.done
}

func (s State[Y, T]) String() string {
	if s.done {
		return fmt.Sprintf("Completed(%v)", s.ret)
	}
	return fmt.Sprintf("Yielded(%v)", s.value)
}
