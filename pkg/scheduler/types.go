package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrFutureNotDone is returned by Future.Get when the work has not finished yet.
var ErrFutureNotDone = errors.New("future not done")

type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

// Future is the handle of a submitted work. It is completed exactly once.
type Future[T any] struct {
	done   chan struct{}
	once   sync.Once
	result Result[T]
	cancel context.CancelFunc
}

func newFuture[T any](cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// complete stores the result and reports whether this call was the one that completed the future.
func (f *Future[T]) complete(r Result[T]) bool {
	completed := false
	f.once.Do(func() {
		f.result = r
		close(f.done)
		completed = true
		if f.cancel != nil {
			f.cancel()
		}
	})
	return completed
}

// Done returns a channel closed when the work has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get returns the result without blocking.
func (f *Future[T]) Get() (Result[T], error) {
	select {
	case <-f.done:
		return f.result, nil
	default:
		return Result[T]{}, ErrFutureNotDone
	}
}

// Wait blocks until the work has finished or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (Result[T], error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return Result[T]{}, ctx.Err()
	}
}

// Stop cancels the context handed to the work function.
func (f *Future[T]) Stop() {
	if f.cancel != nil {
		f.cancel()
	}
}

// call runs w and turns a panic into an error result.
func call[T any](ctx context.Context, w Work[T]) (r Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Result[T]{Err: fmt.Errorf("worker panicked: %v", rec)}
		}
	}()

	v, err := w(ctx)
	return Result[T]{Data: v, Err: err}
}
