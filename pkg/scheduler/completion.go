package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
)

// CompletionQueue submits work to a Scheduler and hands back the futures in
// the order their work finished.
type CompletionQueue[T any] struct {
	scheduler   *Scheduler
	mu          sync.Mutex
	ready       queue[*Future[T]]
	signal      chan struct{}
	outstanding atomic.Int64
}

func NewCompletionQueue[T any](s *Scheduler) *CompletionQueue[T] {
	return &CompletionQueue[T]{
		scheduler: s,
		signal:    make(chan struct{}, 1),
	}
}

// Submit hands w to the scheduler and returns its future without blocking on
// the work. The future becomes available to Take once the work has finished,
// whatever the outcome.
func (q *CompletionQueue[T]) Submit(w Work[T]) *Future[T] {
	q.outstanding.Add(1)
	return submit(q.scheduler, w, nil, q.push)
}

// SubmitWithData is Submit for a work whose future must carry data even when
// the work never returns: a work rejected by a closing scheduler completes
// with data and context.Canceled.
func (q *CompletionQueue[T]) SubmitWithData(w Work[T], data T) *Future[T] {
	q.outstanding.Add(1)
	return submit(q.scheduler, w, &data, q.push)
}

// Take blocks until a finished future is available and removes it from the queue.
func (q *CompletionQueue[T]) Take(ctx context.Context) (*Future[T], error) {
	for {
		if f, ok := q.Poll(); ok {
			return f, nil
		}

		select {
		case <-q.signal:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Poll removes and returns a finished future if one is available.
func (q *CompletionQueue[T]) Poll() (*Future[T], bool) {
	q.mu.Lock()
	if q.ready.Len() == 0 {
		q.mu.Unlock()
		return nil, false
	}
	f := q.ready.Pop()
	more := q.ready.Len() > 0
	q.mu.Unlock()

	q.outstanding.Add(-1)
	if more {
		// another taker may be parked on the signal we consumed
		q.notify()
	}
	return f, true
}

// Outstanding is the number of futures submitted and not yet taken.
func (q *CompletionQueue[T]) Outstanding() int {
	return int(q.outstanding.Load())
}

func (q *CompletionQueue[T]) push(f *Future[T]) {
	q.mu.Lock()
	q.ready.Push(f)
	q.mu.Unlock()
	q.notify()
}

func (q *CompletionQueue[T]) notify() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}
