package gen

import "testing"

func TestCoroAlternation(t *testing.T) {
	var c *coro
	step := 0
	c = newCoro(func() {
		if step != 1 {
			t.Errorf("body ran at step %d, want 1", step)
		}
		c.pause()
		if step != 2 {
			t.Errorf("body resumed at step %d, want 2", step)
		}
	})

	step = 1
	if !c.resume() {
		t.Fatal("first resume: coro did not pause")
	}
	step = 2
	if c.resume() {
		t.Fatal("second resume: coro did not finish")
	}
	if !c.done {
		t.Error("coro not done after finishing")
	}
}

func TestCoroLazyStart(t *testing.T) {
	ran := false
	c := newCoro(func() { ran = true })
	if ran {
		t.Fatal("function ran before the first resume")
	}
	c.resume()
	if !ran {
		t.Fatal("function did not run on the first resume")
	}
}

func TestCoroStopUnwinds(t *testing.T) {
	deferred := false
	var c *coro
	c = newCoro(func() {
		defer func() { deferred = true }()
		c.pause()
		t.Error("body ran past its pause point after stop")
	})

	if !c.resume() {
		t.Fatal("coro did not pause")
	}
	c.stop()
	if !deferred {
		t.Error("deferred calls did not run on stop")
	}
	if !c.done {
		t.Error("coro not done after stop")
	}
	c.stop() // idempotent
}
