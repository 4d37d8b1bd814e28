package shape

import "sync"

// A Thunk is a deferred computation evaluated at most once.  The first
// call to Force runs the computation and memoizes its result; later
// calls, including concurrent first-force races, observe the same value
// or error without running it again.
type Thunk struct {
	once sync.Once
	fn   func() (any, error)
	val  any
	err  error
}

// Delay wraps fn as an unforced Thunk.  Each Thunk memoizes
// independently: two thunks built from the same fn run it once each.
func Delay(fn func() (any, error)) *Thunk {
	return &Thunk{fn: fn}
}

func (t *Thunk) Force() (any, error) {
	t.once.Do(func() {
		t.val, t.err = t.fn()
		t.fn = nil
	})
	return t.val, t.err
}
