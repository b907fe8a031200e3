// Package scheduler implements an elastic worker pool for executing async work
// with futures, and a completion queue handing futures back in finish order.
//
// Work is submitted via AddWork (or CompletionQueue.Submit) and returns a
// Future immediately. Workers are spawned on demand and reclaimed once they
// have been idle for longer than the idle timeout.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           Scheduler                                 │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 1   │      │   Worker 2   │ ...  │   Worker N   │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                        ┌──────┴──────┐     spawn when none idle     │
//	│                        │  dispatch() │ ──► reap when idle too long  │
//	│                        └──────┬──────┘                              │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                      Work Queue                         │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                        AddWork(fn) / Submit(fn)                     │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Elastic Pool
//
// dispatch() pairs pending work with workers:
//   - an idle worker is reused when available (most recently idled first)
//   - otherwise a new worker is spawned, unless WithMaxWorkers bounds the pool
//     and the bound is reached, in which case the work waits in the queue
//
// A reaper ticking at half the idle timeout stops workers that have been idle
// for at least the idle timeout, so the pool shrinks back to zero once the
// load subsides. With the default options the pool is unbounded and workers
// live for 60s of inactivity.
//
// Worker Lifecycle:
//
//	            spawn()
//	              │
//	              ▼
//	┌───────────┐     dispatch()      ┌───────────┐
//	│   Idle    │ ──────────────────► │  Working  │
//	│ (in pool) │                     │           │
//	└───────────┘                     └─────┬─────┘
//	   ▲     │        done channel          │
//	   │     └──────────────────────────────┘
//	   │ reap(): idle >= idle timeout
//	   ▼
//	 stopped
//
// # Event Loop (run method)
//
//	for {
//	    select {
//	    case w := <-s.work:       // New work submitted
//	        s.workQueue.Push(w)
//	        s.dispatch()
//	    case w := <-s.done:       // Worker completed
//	        s.idle.Push(w)
//	        s.dispatch()
//	    case now := <-reaper.C:   // Reclaim idle workers
//	        s.reap(now)
//	    case <-s.close:           // Shutdown requested
//	        s.shutdown()
//	        return
//	    }
//	}
//
// # Completion Queue
//
// CompletionQueue wraps a Scheduler. Every submitted work gets a Future; the
// Future is appended to the ready queue at the moment its work finishes, so
// Take returns futures in finish order rather than submission order:
//
//	q := scheduler.NewCompletionQueue[string](sched)
//	for _, w := range works {
//	    q.Submit(w)
//	}
//	for range works {
//	    f, err := q.Take(ctx)   // blocks until some work has finished
//	    if err != nil {
//	        return err
//	    }
//	    r, _ := f.Get()         // never blocks: f is already done
//	    ...
//	}
//
// Take only ever returns completed futures and returns each future exactly
// once. Calling Take with nothing outstanding blocks until ctx is done.
//
// # Panic Recovery
//
// Work functions that panic complete their future with an error:
//
//	Result{Err: fmt.Errorf("worker panicked: %v", rec)}
//
// The worker returns to the pool and the scheduler keeps running.
//
// # Graceful Shutdown
//
// Close() cancels the main context, fails queued work that has not started
// with context.Canceled, waits for in-flight work and stops every worker.
// Work submitted after Close completes immediately with context.Canceled.
// Close() is idempotent.
package scheduler
