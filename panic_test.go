package gen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPanicPropagatesToResumer(t *testing.T) {
	cause := errors.New("body failure")
	g := New(func(co Co[int, struct{}]) int {
		co.Yield(1)
		panic(cause)
	})
	g.Resume()

	require.PanicsWithError(t, "gen: generator body panicked: body failure", func() {
		g.Resume()
	})
	require.True(t, g.Done())
}

func TestPanicErrorUnwraps(t *testing.T) {
	cause := errors.New("root cause")
	g := New(func(co Co[int, struct{}]) int {
		panic(cause)
	})

	defer func() {
		err, ok := recover().(*PanicError)
		require.True(t, ok, "panic value is not a *PanicError")
		require.ErrorIs(t, err, cause)
		require.Equal(t, cause, err.Value())
	}()
	g.Resume()
}

func TestPanicErrorNonErrorValue(t *testing.T) {
	g := New(func(co Co[int, struct{}]) int {
		panic("boom")
	})

	defer func() {
		err, ok := recover().(*PanicError)
		require.True(t, ok, "panic value is not a *PanicError")
		require.Nil(t, err.Unwrap())
		require.Equal(t, "boom", err.Value())
		require.Contains(t, err.Error(), "boom")
	}()
	g.Resume()
}

func TestPanicErrorCapturesBodyStack(t *testing.T) {
	g := New(func(co Co[int, struct{}]) int {
		explode()
		return 0
	})

	defer func() {
		err, ok := recover().(*PanicError)
		require.True(t, ok, "panic value is not a *PanicError")
		require.True(t, strings.Contains(string(err.Stack()), "explode"),
			"stack does not contain the panic site:\n%s", err.Stack())
	}()
	g.Resume()
}

func explode() {
	panic("exploded")
}

func TestPanicRepeatsOnLaterResumes(t *testing.T) {
	g := New(func(co Co[int, struct{}]) int {
		panic("once")
	})

	first := func() (v any) {
		defer func() { v = recover() }()
		g.Resume()
		return nil
	}()
	second := func() (v any) {
		defer func() { v = recover() }()
		g.Resume()
		return nil
	}()

	require.NotNil(t, first)
	require.Same(t, first, second)
}
