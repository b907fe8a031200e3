package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultIdleTimeout is how long an idle worker is kept before being reclaimed.
	DefaultIdleTimeout = 60 * time.Second

	minReapInterval = time.Millisecond
)

type queue[T any] []T

func (wq *queue[T]) Len() int { return len(*wq) }

func (wq *queue[T]) Pop() T {
	old := *wq
	x := old[0]
	var zero T
	old[0] = zero
	*wq = old[1:]
	return x
}

// PopBack removes the most recently pushed element.
func (wq *queue[T]) PopBack() T {
	old := *wq
	n := len(old) - 1
	x := old[n]
	var zero T
	old[n] = zero
	*wq = old[:n]
	return x
}

func (wq *queue[T]) Peek() T {
	return (*wq)[0]
}

func (wq *queue[T]) Push(t T) {
	*wq = append(*wq, t)
}

type workRequest struct {
	ctx  context.Context
	run  func(ctx context.Context)
	fail func(err error)
}

type worker struct {
	id        int
	requests  chan workRequest
	idleSince time.Time
}

func (w *worker) loop(done chan<- *worker, wg *sync.WaitGroup) {
	defer wg.Done()

	for r := range w.requests {
		w.work(r)
		done <- w
	}
}

func (w *worker) work(r workRequest) {
	defer func() {
		if rec := recover(); rec != nil {
			r.fail(fmt.Errorf("worker panicked: %v", rec))
		}
	}()

	r.run(r.ctx)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithMaxWorkers bounds the number of live workers. Zero or less means unbounded.
func WithMaxWorkers(n int) Option {
	return func(s *Scheduler) {
		s.maxWorkers = n
	}
}

// WithIdleTimeout sets how long an idle worker lives before being reclaimed.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.idleTimeout = d
		}
	}
}

// Stats is a snapshot of the pool.
type Stats struct {
	Live   int
	Busy   int
	Idle   int
	Queued int
}

type Scheduler struct {
	idle        *queue[*worker]
	workQueue   *queue[workRequest]
	close       chan any
	closed      chan any
	done        chan *worker
	work        chan workRequest
	mainCtx     context.Context
	mainCancel  context.CancelFunc
	maxWorkers  int
	idleTimeout time.Duration
	nextID      int
	live        atomic.Int64
	busy        atomic.Int64
	queued      atomic.Int64
	wg          sync.WaitGroup
	once        sync.Once
}

// NewScheduler creates an elastic pool. Workers are spawned on demand and
// reclaimed after staying idle for the idle timeout.
func NewScheduler(opts ...Option) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		idle:        &queue[*worker]{},
		workQueue:   &queue[workRequest]{},
		close:       make(chan any),
		closed:      make(chan any),
		done:        make(chan *worker),
		work:        make(chan workRequest),
		mainCtx:     ctx,
		mainCancel:  cancel,
		idleTimeout: DefaultIdleTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

// AddWork submits w to the pool and returns its future immediately.
func (s *Scheduler) AddWork(w Work[any]) *Future[any] {
	return submit(s, w, nil, nil)
}

// submit hands w to the pool. A work that fails without returning, because the
// pool is closing or its worker panicked, completes with rejected as its Data.
func submit[T any](s *Scheduler, w Work[T], rejected *T, onDone func(*Future[T])) *Future[T] {
	ctx, cancel := context.WithCancel(s.mainCtx)
	f := newFuture[T](cancel)

	finish := func(r Result[T]) {
		if f.complete(r) && onDone != nil {
			onDone(f)
		}
	}

	r := workRequest{
		ctx: ctx,
		run: func(ctx context.Context) {
			finish(call(ctx, w))
		},
		fail: func(err error) {
			r := Result[T]{Err: err}
			if rejected != nil {
				r.Data = *rejected
			}
			finish(r)
		},
	}

	select {
	case <-s.mainCtx.Done():
		// we're closing here so send a result with an error
		r.fail(context.Canceled)
	case s.work <- r:
	}

	return f
}

// Stats returns a snapshot of the pool counters.
func (s *Scheduler) Stats() Stats {
	live := int(s.live.Load())
	busy := int(s.busy.Load())
	return Stats{
		Live:   live,
		Busy:   busy,
		Idle:   live - busy,
		Queued: int(s.queued.Load()),
	}
}

func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.mainCancel()
		s.close <- struct{}{}
		<-s.closed
	})
}

func (s *Scheduler) run() {
	defer close(s.closed)

	reaper := time.NewTicker(s.reapInterval())
	defer reaper.Stop()

	for {
		select {
		case r := <-s.work:
			s.workQueue.Push(r)
			s.queued.Add(1)
			s.dispatch()
		case w := <-s.done:
			s.busy.Add(-1)
			w.idleSince = time.Now()
			s.idle.Push(w)
			s.dispatch()
		case now := <-reaper.C:
			s.reap(now)
		case <-s.close:
			s.shutdown()
			return
		}
	}
}

// dispatch drains the workQueue as much as possible, reusing the most
// recently idled worker first and spawning a new one when none is idle.
func (s *Scheduler) dispatch() {
	for s.workQueue.Len() > 0 {
		var w *worker
		switch {
		case s.idle.Len() > 0:
			w = s.idle.PopBack()
		case s.maxWorkers <= 0 || int(s.live.Load()) < s.maxWorkers:
			w = s.spawn()
		default:
			return
		}

		r := s.workQueue.Pop()
		s.queued.Add(-1)
		s.busy.Add(1)
		w.requests <- r
	}
}

func (s *Scheduler) spawn() *worker {
	s.nextID++
	w := &worker{
		id:       s.nextID,
		requests: make(chan workRequest, 1),
	}
	s.live.Add(1)
	s.wg.Add(1)
	go w.loop(s.done, &s.wg)

	zap.S().Named("scheduler").Debugw("worker spawned", "worker", w.id, "live", s.live.Load())
	return w
}

// reap stops the workers idle for longer than the idle timeout.
// The oldest idle workers sit at the front of the idle queue.
func (s *Scheduler) reap(now time.Time) {
	for s.idle.Len() > 0 && now.Sub(s.idle.Peek().idleSince) >= s.idleTimeout {
		w := s.idle.Pop()
		close(w.requests)
		s.live.Add(-1)
		zap.S().Named("scheduler").Debugw("idle worker reclaimed", "worker", w.id, "live", s.live.Load())
	}
}

func (s *Scheduler) reapInterval() time.Duration {
	interval := s.idleTimeout / 2
	if interval < minReapInterval {
		interval = minReapInterval
	}
	return interval
}

func (s *Scheduler) shutdown() {
	for s.workQueue.Len() > 0 {
		r := s.workQueue.Pop()
		s.queued.Add(-1)
		r.fail(context.Canceled)
	}

	for s.busy.Load() > 0 {
		w := <-s.done
		s.busy.Add(-1)
		s.idle.Push(w)
	}

	for s.idle.Len() > 0 {
		close(s.idle.Pop().requests)
		s.live.Add(-1)
	}

	s.wg.Wait()
}
