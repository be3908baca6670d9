// Package settle runs independent calls concurrently and waits for every one
// of them to finish, keeping each call's value or failure separately.
package settle

import (
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

// Result is the outcome of one settled call. Err is set when the call
// returned an error or panicked.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok reports whether the call succeeded.
func (r *Result[T]) Ok() bool {
	return r.Err == nil
}

// Or returns the value of a successful call and def otherwise.
func (r *Result[T]) Or(def T) T {
	if r.Err != nil {
		return def
	}
	return r.Value
}

// Group settles a set of calls. The zero value is ready to use.
type Group struct {
	wg conc.WaitGroup
}

// Go starts fn on g and returns its Result. The Result must not be read
// before g.Wait returns.
func Go[T any](g *Group, fn func() (T, error)) *Result[T] {
	res := &Result[T]{}
	g.wg.Go(func() {
		var pc panics.Catcher
		pc.Try(func() {
			res.Value, res.Err = fn()
		})
		if rec := pc.Recovered(); rec != nil {
			var zero T
			res.Value = zero
			res.Err = rec.AsError()
		}
	})
	return res
}

// Wait blocks until every call started on g has finished, whatever its outcome.
func (g *Group) Wait() {
	g.wg.Wait()
}
