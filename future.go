package riptide

import (
	"context"
	"sync"
)

// Supplier produces a Future on demand. Plugins are Supplier-to-Supplier
// decorators: calling a Supplier is what actually triggers work (a
// transport round trip, a cache lookup, whatever the wrapped function
// does), so composition stays lazy until the outermost Supplier is
// invoked.
type Supplier[T any] func(ctx context.Context) *Future[T]

// Future is a single-resolution asynchronous value. It is the core's
// stand-in for the external request factory's completion mechanism: a
// RequestFactory returns a *Future[*Response], plugins transform it, and
// Send attaches a continuation that produces the caller's *Future[T].
//
// A Future resolves exactly once, with either a value or an error, never
// both. Resolution is safe to call from any goroutine.
type Future[T any] struct {
	done   chan struct{}
	once   sync.Once
	value  T
	err    error
	cancel func()
}

// NewFuture creates an unresolved Future together with the resolve
// function used to complete it. cancel, if non-nil, is invoked by
// Future.Cancel and should tell the underlying work to stop; it is the
// cooperative cancellation hook described in the concurrency model.
func NewFuture[T any](cancel func()) (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{}), cancel: cancel}
	resolve := func(v T, err error) {
		f.once.Do(func() {
			f.value = v
			f.err = err
			close(f.done)
		})
	}
	return f, resolve
}

// Resolved returns a Future that is already complete with v.
func Resolved[T any](v T) *Future[T] {
	f, resolve := NewFuture[T](nil)
	resolve(v, nil)
	return f
}

// Failed returns a Future that is already complete with err.
func Failed[T any](err error) *Future[T] {
	var zero T
	f, resolve := NewFuture[T](nil)
	resolve(zero, err)
	return f
}

// Wait blocks until the Future resolves or ctx is done, whichever comes
// first. A ctx cancellation does not resolve the Future itself -- it only
// unblocks the caller; use Cancel to also signal the underlying work.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel propagates cancellation to whatever produced this Future, if it
// cooperates (registered a cancel func via NewFuture). Plugins that do not
// own the Future must forward Cancel to their inner Supplier's Future so
// cancellation reaches the transport, per the concurrency model.
func (f *Future[T]) Cancel() {
	if f.cancel != nil {
		f.cancel()
	}
}

// Then attaches a continuation that runs once f resolves successfully,
// flattening the continuation's own Future into the result -- this is how
// a Route that itself returns a Future composes with the pipeline without
// callback inversion.
func Then[T, U any](f *Future[T], fn func(context.Context, T) *Future[U]) *Future[U] {
	out, resolve := NewFuture[U](f.Cancel)
	go func() {
		v, err := f.Wait(context.Background())
		if err != nil {
			var zero U
			resolve(zero, err)
			return
		}
		next := fn(context.Background(), v)
		nv, nerr := next.Wait(context.Background())
		resolve(nv, nerr)
	}()
	return out
}

// Catch attaches a handler that runs only when f resolves with an error,
// producing a new Future. If fn returns the same error it was given
// (reference-identical after any unwrap it chooses to do), the Future's
// failure is effectively unchanged -- the plugin is then a no-op, which is
// how TemporaryExceptionPlugin's idempotence is expressed.
func Catch[T any](f *Future[T], fn func(context.Context, error) (T, error)) *Future[T] {
	out, resolve := NewFuture[T](f.Cancel)
	go func() {
		v, err := f.Wait(context.Background())
		if err == nil {
			resolve(v, nil)
			return
		}
		resolve(fn(context.Background(), err))
	}()
	return out
}
