package gen

import (
	"fmt"
	"runtime/debug"
)

// PanicError wraps a panic raised by a generator body. The resumption that
// drove the failing step re-panics with a *PanicError, preserving the
// original panic value and the body's stack trace at the panic site. Every
// later resumption of the same generator re-panics the same error.
type PanicError struct {
	value any
	stack []byte
}

// newPanicError must be called on the panicking goroutine, while the stack
// of the panic site is still live.
func newPanicError(v any) *PanicError {
	return &PanicError{value: v, stack: debug.Stack()}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("gen: generator body panicked: %v", p.value)
}

// Value returns the original panic value.
func (p *PanicError) Value() any {
	return p.value
}

// Unwrap returns the panic value when it is itself an error, nil otherwise.
func (p *PanicError) Unwrap() error {
	err, _ := p.value.(error)
	return err
}

// Stack returns the body's stack trace captured at the panic site.
func (p *PanicError) Stack() []byte {
	return p.stack
}
